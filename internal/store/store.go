package store

import "crud-dashboard/internal/domain"

// Store owns the three in-memory collections. Each resource manager writes
// only its own collection; the stats aggregator and the message renderer
// read the others.
type Store struct {
	Users    *Collection[domain.User]
	Tasks    *Collection[domain.Task]
	Messages *Collection[domain.Message]
}

// New creates a store with empty collections.
func New() *Store {
	return &Store{
		Users:    NewCollection[domain.User](),
		Tasks:    NewCollection[domain.Task](),
		Messages: NewCollection[domain.Message](),
	}
}

// UserByID resolves a user from the users snapshot.
func (s *Store) UserByID(id int64) (domain.User, bool) {
	return s.Users.Find(func(u domain.User) bool { return u.ID == id })
}
