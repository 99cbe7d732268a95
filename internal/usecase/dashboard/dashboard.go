package dashboard

import (
	"context"

	"crud-dashboard/internal/store"
	"crud-dashboard/pkg/logger"

	"go.uber.org/zap"
)

// Dashboard wires the resource managers, the stats aggregator, the tab
// controller and the connectivity check around one store and one surface.
type Dashboard struct {
	Users      *Users
	Tasks      *Tasks
	Messages   *Messages
	Stats      *Stats
	Tabs       *Tabs
	Connection *Connection

	env *env
}

// New creates a Dashboard.
func New(api Gateway, st *store.Store, surface Surface, notifier Notifier, log *zap.Logger) *Dashboard {
	stats := &Stats{store: st, surface: surface}
	e := &env{
		store:    st,
		surface:  surface,
		notifier: notifier,
		stats:    stats,
		validate: newValidator(),
		log:      log,
	}

	d := &Dashboard{
		Messages:   &Messages{env: e, api: api},
		Tasks:      &Tasks{env: e, api: api},
		Stats:      stats,
		Connection: &Connection{env: e, api: api},
		env:        e,
	}
	d.Users = &Users{env: e, api: api, messages: d.Messages}
	d.Tabs = &Tabs{d: d}
	return d
}

// Init runs the connectivity check, then loads users. The other resources
// load when their tab is first shown.
func (d *Dashboard) Init(ctx context.Context) error {
	logger.WithContext(ctx, d.env.log).Info("initializing dashboard")

	// the probe only informs the operator
	_ = d.Connection.Test(ctx)

	return d.Users.Load(ctx)
}
