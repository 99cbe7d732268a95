package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"crud-dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(s string) domain.Timestamp {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return domain.Timestamp{Time: t}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "unknown date", FormatDate(domain.Timestamp{}))
	assert.Equal(t, "May 1, 2024 08:30", FormatDate(at("2024-05-01T08:30:00Z")))
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two words", "ana dupont", "AD"},
		{"three words", "Jean Paul Sartre", "JP"},
		{"single word", "cher", "C"},
		{"extra spaces", "  ana   dupont ", "AD"},
		{"empty", "", ""},
		{"unicode", "élodie ñu", "ÉÑ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 50))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "héé...", Truncate("héééé", 3))
}

func TestRenderUsers(t *testing.T) {
	t.Run("empty state", func(t *testing.T) {
		html := string(RenderUsers(nil))
		assert.Contains(t, html, "No users")
		assert.Contains(t, html, "Start by creating your first user")
	})

	t.Run("rows", func(t *testing.T) {
		age := 31
		html := string(RenderUsers([]domain.User{
			{ID: 1, Name: "Ana Dupont", Username: "anad", Email: "ana@example.com", Age: &age, City: "Lyon", CreatedAt: at("2024-05-01T08:00:00Z")},
			{ID: 2, Name: "<b>Bob</b>", Username: "bob", Email: "bob@example.com"},
		}))

		assert.Contains(t, html, "AD")
		assert.Contains(t, html, "@anad")
		assert.Contains(t, html, "31 years")
		assert.Contains(t, html, "Lyon")
		assert.Contains(t, html, `hx-get="/ui/users/1/edit"`)
		assert.Contains(t, html, `hx-delete="/ui/users/2?confirm=true"`)
		assert.Contains(t, html, "unknown date")
		assert.Contains(t, html, "&lt;b&gt;Bob&lt;/b&gt;")
		assert.NotContains(t, html, "<b>Bob</b>")
	})
}

func TestRenderTasks(t *testing.T) {
	t.Run("empty state", func(t *testing.T) {
		assert.Contains(t, string(RenderTasks(nil)), "No tasks")
	})

	t.Run("known and unknown status", func(t *testing.T) {
		html := string(RenderTasks([]domain.Task{
			{ID: 7, Title: "Ship it", Status: domain.TaskInProgress},
			{ID: 8, Title: "Odd", Status: "blocked"},
			{ID: 9},
		}))

		assert.Contains(t, html, "In progress")
		assert.Contains(t, html, "task-item in-progress")
		assert.Contains(t, html, "❓ blocked")
		assert.Contains(t, html, "Untitled task")
		assert.Contains(t, html, `hx-delete="/ui/tasks/7?confirm=true"`)
	})
}

func TestSortMessages(t *testing.T) {
	messages := []domain.Message{
		{ID: 1, CreatedAt: at("2024-05-01T08:00:00Z")},
		{ID: 2, CreatedAt: at("2024-05-03T08:00:00Z")},
		{ID: 3, CreatedAt: at("2024-05-02T08:00:00Z")},
		{ID: 4, CreatedAt: at("2024-05-02T08:00:00Z")},
	}

	sorted := SortMessages(messages)

	ids := make([]int64, len(sorted))
	for i, m := range sorted {
		ids[i] = m.ID
	}
	assert.Equal(t, []int64{2, 3, 4, 1}, ids)
	assert.Equal(t, int64(1), messages[0].ID, "input order must be untouched")
}

func TestRenderMessages(t *testing.T) {
	users := map[int64]domain.User{1: {ID: 1, Name: "Ana Dupont", Username: "anad"}}
	author := func(id int64) (domain.User, bool) {
		u, ok := users[id]
		return u, ok
	}

	t.Run("empty state", func(t *testing.T) {
		assert.Contains(t, string(RenderMessages(nil, author)), "No messages")
	})

	t.Run("newest first with dangling author", func(t *testing.T) {
		html := string(RenderMessages([]domain.Message{
			{ID: 1, Content: "older", UserID: 1, CreatedAt: at("2024-05-01T08:00:00Z")},
			{ID: 2, Content: "newer", UserID: 99, CreatedAt: at("2024-05-02T08:00:00Z")},
		}, author))

		assert.Less(t, strings.Index(html, "newer"), strings.Index(html, "older"))
		assert.Contains(t, html, "User #99")
		assert.Contains(t, html, "@unknown")
		assert.Contains(t, html, "@anad")
		assert.Contains(t, html, "/ui/messages/2?userId=99")
	})
}

func TestRenderUserOptions(t *testing.T) {
	html := string(RenderUserOptions([]domain.User{{ID: 4, Name: "Ana", Username: "anad"}}))
	assert.Contains(t, html, "Choose a user...")
	assert.Contains(t, html, `<option value="4">Ana (@anad)</option>`)
}

func TestRenderActivity(t *testing.T) {
	assert.Contains(t, string(RenderActivity(nil)), "No recent activity")

	html := string(RenderActivity([]Activity{
		{Kind: "task", Icon: "fas fa-tasks text-success", Text: "New task: Ship it", At: at("2024-05-01T08:00:00Z")},
	}))
	assert.Contains(t, html, "New task: Ship it")
	assert.Contains(t, html, "activity-task")
}

func TestRenderLoadError(t *testing.T) {
	html := string(RenderLoadError("db down"))
	assert.Contains(t, html, "Loading failed")
	assert.Contains(t, html, "db down")
}

func TestRenderBanner(t *testing.T) {
	html := string(RenderBanner(Banner{ID: 3, Message: "User created successfully!", AlertClass: "alert-success", Icon: "check-circle", TTLMillis: 5000}))
	assert.Contains(t, html, "alert-success")
	assert.Contains(t, html, "fa-check-circle")
	assert.Contains(t, html, "load delay:5250ms")
	assert.Contains(t, html, "User created successfully!")
}

func TestWriteOOB(t *testing.T) {
	r := NewRegions()
	r.SetText(RegionUsersCount, "2")
	r.SetLoading(RegionUsersLoading, true)

	var buf bytes.Buffer
	require.NoError(t, WriteOOB(&buf, r.Snapshot()))
	out := buf.String()

	assert.Contains(t, out, `<div id="usersCount" hx-swap-oob="innerHTML">2</div>`)
	assert.Contains(t, out, `id="usersLoading" class="loading show" hx-swap-oob="outerHTML"`)
	assert.Contains(t, out, `id="tasksLoading" class="loading" hx-swap-oob="outerHTML"`)
	assert.Less(t, strings.Index(out, `id="messageCounter"`), strings.Index(out, `id="usersCount"`))
}

func TestWritePage(t *testing.T) {
	r := NewRegions()
	r.SetHTML(RegionUsersList, RenderUsers(nil))

	var buf bytes.Buffer
	require.NoError(t, WritePage(&buf, r.Snapshot()))
	out := buf.String()

	assert.Contains(t, out, `hx-post="/ui/init"`)
	assert.Contains(t, out, `id="userForm"`)
	assert.Contains(t, out, `id="messageForm"`)
	assert.Contains(t, out, "No users")
	assert.Contains(t, out, "Not tested")
	assert.Contains(t, out, `hx-get="/ui/tabs/stats-tab"`)

	for _, id := range []string{"usersLoading", "tasksLoading", "messagesLoading"} {
		assert.Contains(t, out, `hx-post="/ui/`+strings.TrimSuffix(id, "Loading")+`/reload" hx-swap="none" hx-indicator="#`+id+`"`)
	}
	assert.Contains(t, out, ".loading.htmx-request")
}
