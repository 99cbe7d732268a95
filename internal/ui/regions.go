package ui

import (
	"html/template"
	"slices"
	"sync"
)

// Region ids of the dashboard page. They double as DOM element ids.
const (
	RegionNotification     = "notification"
	RegionConnectionStatus = "connectionStatus"
	RegionPreview          = "preview"

	RegionUsersList    = "usersList"
	RegionUsersLoading = "usersLoading"
	RegionUsersCount   = "usersCount"
	RegionUserOptions  = "messageUserId"

	RegionTasksList    = "tasksList"
	RegionTasksLoading = "tasksLoading"
	RegionTasksCount   = "tasksCount"

	RegionMessagesList    = "messagesList"
	RegionMessagesLoading = "messagesLoading"
	RegionMessagesCount   = "messagesCount"
	RegionMessageCounter  = "messageCounter"

	RegionTotalUsers     = "totalUsers"
	RegionTotalTasks     = "totalTasks"
	RegionTotalMessages  = "totalMessages"
	RegionRecentActivity = "recentActivity"
)

// Form ids of the dashboard page.
const (
	FormUser    = "userForm"
	FormTask    = "taskForm"
	FormMessage = "messageForm"
)

// Snapshot is a point-in-time copy of every region.
type Snapshot struct {
	Markup  map[string]template.HTML
	Loading map[string]bool
}

// HTML returns the markup of region id.
func (s Snapshot) HTML(id string) template.HTML {
	return s.Markup[id]
}

// IsLoading reports whether loading indicator id is shown.
func (s Snapshot) IsLoading(id string) bool {
	return s.Loading[id]
}

// Regions is the in-process rendering surface: named regions holding markup,
// loading indicators, and pending form resets. Safe for concurrent use.
type Regions struct {
	mu      sync.RWMutex
	markup  map[string]template.HTML
	loading map[string]bool
	resets  []string
}

// NewRegions creates a surface with every region initialised to its idle
// content.
func NewRegions() *Regions {
	r := &Regions{
		markup:  make(map[string]template.HTML),
		loading: make(map[string]bool),
	}

	for _, id := range []string{RegionNotification, RegionPreview,
		RegionUsersList, RegionTasksList, RegionMessagesList} {
		r.markup[id] = ""
	}
	for _, id := range []string{RegionUsersCount, RegionTasksCount, RegionMessagesCount,
		RegionTotalUsers, RegionTotalTasks, RegionTotalMessages, RegionMessageCounter} {
		r.markup[id] = "0"
	}
	for _, id := range []string{RegionUsersLoading, RegionTasksLoading, RegionMessagesLoading} {
		r.loading[id] = false
	}
	r.markup[RegionUserOptions] = RenderUserOptions(nil)
	r.markup[RegionRecentActivity] = RenderActivity(nil)
	r.markup[RegionConnectionStatus] = RenderConnection(ConnectionUnknown)

	return r
}

// SetHTML replaces the markup of region id.
func (r *Regions) SetHTML(id string, markup template.HTML) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.markup[id] = markup
}

// SetText replaces the content of region id with escaped text.
func (r *Regions) SetText(id, text string) {
	r.SetHTML(id, template.HTML(template.HTMLEscapeString(text)))
}

// SetLoading shows or hides loading indicator id.
func (r *Regions) SetLoading(id string, on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loading[id] = on
}

// ResetForm queues a reset of form id for the next response.
func (r *Regions) ResetForm(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !slices.Contains(r.resets, id) {
		r.resets = append(r.resets, id)
	}
}

// DrainResets returns and clears the queued form resets.
func (r *Regions) DrainResets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	resets := r.resets
	r.resets = nil
	return resets
}

// HTML returns the markup of region id.
func (r *Regions) HTML(id string) template.HTML {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.markup[id]
}

// Loading reports whether loading indicator id is shown.
func (r *Regions) Loading(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.loading[id]
}

// Has reports whether id names a known region or loading indicator.
func (r *Regions) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.markup[id]; ok {
		return true
	}
	_, ok := r.loading[id]
	return ok
}

// Snapshot copies every region.
func (r *Regions) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := Snapshot{
		Markup:  make(map[string]template.HTML, len(r.markup)),
		Loading: make(map[string]bool, len(r.loading)),
	}
	for k, v := range r.markup {
		s.Markup[k] = v
	}
	for k, v := range r.loading {
		s.Loading[k] = v
	}
	return s
}
