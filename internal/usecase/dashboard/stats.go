package dashboard

import (
	"sort"
	"strconv"

	"crud-dashboard/internal/store"
	"crud-dashboard/internal/ui"
)

const (
	// activityPerKind is how many of the last items of each collection
	// enter the activity feed.
	activityPerKind = 3
	// activityLimit caps the merged feed.
	activityLimit = 5
)

// Stats derives counts and the recent activity feed from the in-memory
// collections. It never calls the remote API.
type Stats struct {
	store   *store.Store
	surface Surface
}

// Recompute refreshes the totals and the activity feed.
func (s *Stats) Recompute() {
	s.surface.SetText(ui.RegionTotalUsers, strconv.Itoa(s.store.Users.Len()))
	s.surface.SetText(ui.RegionTotalTasks, strconv.Itoa(s.store.Tasks.Len()))
	s.surface.SetText(ui.RegionTotalMessages, strconv.Itoa(s.store.Messages.Len()))
	s.surface.SetHTML(ui.RegionRecentActivity, ui.RenderActivity(s.Activity()))
}

// Activity merges the last items of every collection, newest first.
func (s *Stats) Activity() []ui.Activity {
	var items []ui.Activity

	for _, u := range s.store.Users.Last(activityPerKind) {
		items = append(items, ui.Activity{
			Kind: "user",
			Icon: "fas fa-user-plus text-primary",
			Text: "New user: " + u.Name,
			At:   u.CreatedAt,
		})
	}
	for _, t := range s.store.Tasks.Last(activityPerKind) {
		items = append(items, ui.Activity{
			Kind: "task",
			Icon: "fas fa-tasks text-success",
			Text: "New task: " + t.Title,
			At:   t.CreatedAt,
		})
	}
	for _, m := range s.store.Messages.Last(activityPerKind) {
		author := "unknown user"
		if u, ok := s.store.UserByID(m.UserID); ok {
			author = u.Name
		}
		items = append(items, ui.Activity{
			Kind: "message",
			Icon: "fas fa-comment text-info",
			Text: "Message from " + author,
			At:   m.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].At.After(items[j].At.Time)
	})
	if len(items) > activityLimit {
		items = items[:activityLimit]
	}
	return items
}
