package store

import (
	"slices"
	"sync"
)

// Collection is a replace-on-reload snapshot of one remote collection.
//
// Every load takes a token with Begin and hands it back to Commit. Only the
// most recently issued token may commit, so a slow response can never
// overwrite the result of a load started after it.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	issued uint64
	loaded bool
}

// NewCollection creates an empty collection.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{}
}

// Begin issues a new load token, invalidating every earlier one.
func (c *Collection[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issued++
	return c.issued
}

// Current reports whether token is still the latest issued one.
func (c *Collection[T]) Current(token uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return token == c.issued
}

// Commit replaces the snapshot with items if token is still current.
// It reports whether the snapshot was replaced.
func (c *Collection[T]) Commit(token uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.issued {
		return false
	}
	c.items = slices.Clone(items)
	c.loaded = true
	return true
}

// Snapshot returns a copy of the items in the order they were fetched.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.items)
}

// Len returns the number of items held.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Empty reports whether the collection currently holds no items.
func (c *Collection[T]) Empty() bool {
	return c.Len() == 0
}

// Loaded reports whether a load has ever committed.
func (c *Collection[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.loaded
}

// Last returns a copy of the last n items, or all of them when fewer are held.
func (c *Collection[T]) Last(n int) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if n >= len(c.items) {
		return slices.Clone(c.items)
	}
	return slices.Clone(c.items[len(c.items)-n:])
}

// Find returns the first item matching match.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
