package dashboard

import (
	"context"
	"errors"
	"fmt"
)

// Tab identifies a dashboard tab.
type Tab string

const (
	TabUsers    Tab = "users-tab"
	TabTasks    Tab = "tasks-tab"
	TabMessages Tab = "messages-tab"
	TabStats    Tab = "stats-tab"
)

// ErrUnknownTab is returned when activating a tab that does not exist.
var ErrUnknownTab = errors.New("unknown tab")

// Tabs loads a resource the first time its tab is shown.
type Tabs struct {
	d *Dashboard
}

// Activate handles tab becoming visible. Resource tabs load only while their
// collection is empty; the stats tab only recomputes.
func (t *Tabs) Activate(ctx context.Context, tab Tab) error {
	st := t.d.env.store

	switch tab {
	case TabUsers:
		if st.Users.Empty() {
			return t.d.Users.Load(ctx)
		}
	case TabTasks:
		if st.Tasks.Empty() {
			return t.d.Tasks.Load(ctx)
		}
	case TabMessages:
		if st.Messages.Empty() {
			return t.d.Messages.Load(ctx)
		}
	case TabStats:
		t.d.Stats.Recompute()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	return nil
}
