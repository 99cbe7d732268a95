package dashboard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"crud-dashboard/internal/adapter/api"
	"crud-dashboard/internal/store"
	"crud-dashboard/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type apiCall struct {
	Method string
	Path   string
	Body   string
}

// setupAPI starts a fake remote API answering with handler and returns a
// dashboard talking to it through the real client.
func setupAPI(t *testing.T, handler http.HandlerFunc) (*Dashboard, *ui.Regions, func() []apiCall) {
	var (
		mu    sync.Mutex
		calls []apiCall
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, apiCall{Method: r.Method, Path: r.URL.Path, Body: string(body)})
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	log := zaptest.NewLogger(t)
	regions := ui.NewRegions()
	d := New(api.NewClient(srv.URL, log), store.New(), regions, &recordingNotifier{}, log)

	return d, regions, func() []apiCall {
		mu.Lock()
		defer mu.Unlock()
		return append([]apiCall(nil), calls...)
	}
}

func TestIntegration_LoadFailureShowsServerMessage(t *testing.T) {
	d, regions, _ := setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"message":"db down"}`)
	})

	require.Error(t, d.Users.Load(context.Background()))

	assert.Contains(t, string(regions.HTML(ui.RegionUsersList)), "db down")
}

func TestIntegration_SendMessage(t *testing.T) {
	d, _, calls := setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/users":
			_, _ = io.WriteString(w, `[{"id":1,"name":"Ana Dupont","username":"anad"}]`)
		case r.Method == http.MethodPost && r.URL.Path == "/messages":
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":10,"content":"Bonjour","userId":1}`)
		case r.Method == http.MethodGet && r.URL.Path == "/messages":
			_, _ = io.WriteString(w, `[{"id":10,"content":"Bonjour","userId":1}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	require.NoError(t, d.Users.Load(context.Background()))
	require.NoError(t, d.Messages.Submit(context.Background(), MessageForm{Content: "Bonjour", UserID: 1}))

	got := calls()
	require.Len(t, got, 3)
	assert.Equal(t, http.MethodPost, got[1].Method)
	assert.Equal(t, "/messages", got[1].Path)
	assert.JSONEq(t, `{"content":"Bonjour","userId":1}`, got[1].Body)
	assert.Equal(t, http.MethodGet, got[2].Method)
	assert.Equal(t, "/messages", got[2].Path)
}

func TestIntegration_EmptyCollection(t *testing.T) {
	d, regions, _ := setupAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[]`)
	})

	require.NoError(t, d.Tasks.Load(context.Background()))

	assert.Contains(t, string(regions.HTML(ui.RegionTasksList)), "No tasks")
	assert.Equal(t, "0", string(regions.HTML(ui.RegionTasksCount)))
}
