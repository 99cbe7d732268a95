package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"crud-dashboard/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("ui").Funcs(template.FuncMap{
	"formatDate": FormatDate,
	"initials":   Initials,
	"truncate":   Truncate,
}).ParseFS(templateFS, "templates/*.html"))

// dateLayout is the display format of creation timestamps.
const dateLayout = "Jan 2, 2006 15:04"

// FormatDate renders a creation timestamp for display.
func FormatDate(ts domain.Timestamp) string {
	if ts.IsZero() {
		return "unknown date"
	}
	return ts.Format(dateLayout)
}

// Initials returns the upper-cased first letter of up to the first two words
// of name.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, part := range strings.Split(name, " ") {
		r, _ := utf8.DecodeRuneInString(part)
		if r == utf8.RuneError {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		n++
		if n == 2 {
			break
		}
	}
	return b.String()
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// emptyState is the placeholder shown in place of an empty list.
type emptyState struct {
	Icon  string
	Title string
	Text  string
}

var (
	emptyUsers    = emptyState{Icon: "fa-users", Title: "No users", Text: "Start by creating your first user"}
	emptyTasks    = emptyState{Icon: "fa-tasks", Title: "No tasks", Text: "Create your first task to get started"}
	emptyMessages = emptyState{Icon: "fa-comments", Title: "No messages", Text: "Send your first message"}
	emptyActivity = emptyState{Icon: "fa-clock", Title: "No recent activity", Text: "Activity will show up here"}
)

// taskStatusView is how a task status is displayed.
type taskStatusView struct {
	Icon  string
	Text  string
	Class string
}

var taskStatuses = map[domain.TaskStatus]taskStatusView{
	domain.TaskPending:    {Icon: "📋", Text: "Pending", Class: "pending"},
	domain.TaskInProgress: {Icon: "⚡", Text: "In progress", Class: "in-progress"},
	domain.TaskCompleted:  {Icon: "✅", Text: "Completed", Class: "completed"},
}

func statusView(s domain.TaskStatus) taskStatusView {
	if v, ok := taskStatuses[s]; ok {
		return v
	}
	return taskStatusView{Icon: "❓", Text: string(s), Class: "pending"}
}

type taskRow struct {
	domain.Task
	Status taskStatusView
}

type messageRow struct {
	domain.Message
	AuthorName     string
	AuthorUsername string
	Avatar         string
}

// Activity is one entry of the recent activity feed.
type Activity struct {
	Kind string // user, task or message
	Icon string
	Text string
	At   domain.Timestamp
}

// Banner is the notification currently displayed.
type Banner struct {
	ID         uint64
	Message    string
	AlertClass string
	Icon       string
	TTLMillis  int
}

// bannerRefreshGrace delays the browser's refetch past the server-side expiry
// so the refetch never returns the banner that scheduled it.
const bannerRefreshGrace = 250

// RefreshMillis is when the browser should refetch the notification region.
func (b Banner) RefreshMillis() int {
	return b.TTLMillis + bannerRefreshGrace
}

// ConnectionState is the content of the connectivity indicator.
type ConnectionState struct {
	Text  string
	Class string
}

var (
	ConnectionUnknown   = ConnectionState{Text: "Not tested", Class: "bg-secondary"}
	ConnectionTesting   = ConnectionState{Text: "Testing...", Class: "bg-warning"}
	ConnectionConnected = ConnectionState{Text: "Connected", Class: "bg-success"}
	ConnectionError     = ConnectionState{Text: "Error", Class: "bg-danger"}
)

// Preview is the read-only view shown by the edit placeholders.
type Preview struct {
	Title string
	Body  string
}

func mustRender(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		panic(fmt.Sprintf("ui: render %s: %v", name, err))
	}
	return template.HTML(buf.String())
}

// RenderUsers renders the users list, or its empty state.
func RenderUsers(users []domain.User) template.HTML {
	if len(users) == 0 {
		return mustRender("empty_state", emptyUsers)
	}
	return mustRender("users", users)
}

// RenderTasks renders the tasks list, or its empty state.
func RenderTasks(tasks []domain.Task) template.HTML {
	if len(tasks) == 0 {
		return mustRender("empty_state", emptyTasks)
	}

	rows := make([]taskRow, len(tasks))
	for i, t := range tasks {
		rows[i] = taskRow{Task: t, Status: statusView(t.Status)}
	}
	return mustRender("tasks", rows)
}

// SortMessages returns a copy of messages ordered by creation time, newest
// first. Messages with equal timestamps keep their relative order.
func SortMessages(messages []domain.Message) []domain.Message {
	sorted := slices.Clone(messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})
	return sorted
}

// RenderMessages renders the messages newest first, resolving authors with
// author. Unknown authors degrade to a placeholder.
func RenderMessages(messages []domain.Message, author func(id int64) (domain.User, bool)) template.HTML {
	if len(messages) == 0 {
		return mustRender("empty_state", emptyMessages)
	}

	sorted := SortMessages(messages)
	rows := make([]messageRow, len(sorted))
	for i, m := range sorted {
		row := messageRow{
			Message:        m,
			AuthorName:     fmt.Sprintf("User #%d", m.UserID),
			AuthorUsername: "unknown",
			Avatar:         "?",
		}
		if u, ok := author(m.UserID); ok {
			row.AuthorName = u.Name
			row.AuthorUsername = u.Username
			row.Avatar = Initials(u.Name)
		}
		rows[i] = row
	}
	return mustRender("messages", rows)
}

// RenderUserOptions renders the author picker of the message form.
func RenderUserOptions(users []domain.User) template.HTML {
	return mustRender("user_options", users)
}

// RenderLoadError renders the inline error state shown instead of a list.
func RenderLoadError(message string) template.HTML {
	return mustRender("load_error", message)
}

// RenderActivity renders the recent activity feed, or its empty state.
func RenderActivity(items []Activity) template.HTML {
	if len(items) == 0 {
		return mustRender("empty_state", emptyActivity)
	}
	return mustRender("activity", items)
}

// RenderBanner renders a dismissible notification banner.
func RenderBanner(b Banner) template.HTML {
	return mustRender("banner", b)
}

// RenderConnection renders the connectivity indicator.
func RenderConnection(s ConnectionState) template.HTML {
	return mustRender("connection", s)
}

// RenderPreview renders a read-only record preview.
func RenderPreview(p Preview) template.HTML {
	return mustRender("preview", p)
}

type oobRegion struct {
	ID      string
	Markup  template.HTML
	Loading bool
}

type oobView struct {
	Regions  []oobRegion
	Loadings []oobRegion
}

func oobViewOf(s Snapshot) oobView {
	var v oobView
	for id, markup := range s.Markup {
		v.Regions = append(v.Regions, oobRegion{ID: id, Markup: markup})
	}
	for id, on := range s.Loading {
		v.Loadings = append(v.Loadings, oobRegion{ID: id, Loading: on})
	}
	sort.Slice(v.Regions, func(i, j int) bool { return v.Regions[i].ID < v.Regions[j].ID })
	sort.Slice(v.Loadings, func(i, j int) bool { return v.Loadings[i].ID < v.Loadings[j].ID })
	return v
}

// WriteOOB writes every region of s as an htmx out-of-band fragment.
func WriteOOB(w io.Writer, s Snapshot) error {
	return templates.ExecuteTemplate(w, "oob", oobViewOf(s))
}

// WritePage writes the full dashboard page with the regions of s.
func WritePage(w io.Writer, s Snapshot) error {
	return templates.ExecuteTemplate(w, "page", s)
}
