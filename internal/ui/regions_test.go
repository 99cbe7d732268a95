package ui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegions_Defaults(t *testing.T) {
	r := NewRegions()

	for _, id := range []string{RegionUsersCount, RegionTotalTasks, RegionMessageCounter} {
		assert.Equal(t, "0", string(r.HTML(id)), id)
	}
	assert.True(t, r.Has(RegionUsersList))
	assert.True(t, r.Has(RegionUsersLoading))
	assert.False(t, r.Has("nope"))
	assert.Contains(t, string(r.HTML(RegionRecentActivity)), "No recent activity")
	assert.Contains(t, string(r.HTML(RegionConnectionStatus)), "Not tested")
}

func TestRegions_SetTextEscapes(t *testing.T) {
	r := NewRegions()
	r.SetText(RegionPreview, "<script>")
	assert.Equal(t, "&lt;script&gt;", string(r.HTML(RegionPreview)))
}

func TestRegions_ResetForms(t *testing.T) {
	r := NewRegions()
	r.ResetForm(FormUser)
	r.ResetForm(FormMessage)
	r.ResetForm(FormUser)

	assert.Equal(t, []string{FormUser, FormMessage}, r.DrainResets())
	assert.Empty(t, r.DrainResets())
}

func TestRegions_SnapshotIsACopy(t *testing.T) {
	r := NewRegions()
	s := r.Snapshot()

	r.SetText(RegionUsersCount, "5")
	r.SetLoading(RegionTasksLoading, true)

	assert.Equal(t, "0", string(s.HTML(RegionUsersCount)))
	assert.False(t, s.IsLoading(RegionTasksLoading))
	assert.True(t, r.Loading(RegionTasksLoading))
}

func TestRegions_ConcurrentAccess(t *testing.T) {
	r := NewRegions()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.SetText(RegionUsersCount, "1")
			r.SetLoading(RegionUsersLoading, true)
			_ = r.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, "1", string(r.HTML(RegionUsersCount)))
}
