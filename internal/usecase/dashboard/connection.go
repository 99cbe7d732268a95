package dashboard

import (
	"context"

	"crud-dashboard/internal/notify"
	"crud-dashboard/internal/ui"
	pkgerrors "crud-dashboard/pkg/errors"
	"crud-dashboard/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Connection probes the remote API. Its outcome is informational and gates
// nothing.
type Connection struct {
	env   *env
	api   UserGateway
	group singleflight.Group
}

// Test reads the users resource and reports the outcome in the status
// indicator and a notification. Concurrent calls share one probe.
func (c *Connection) Test(ctx context.Context) error {
	_, err, shared := c.group.Do("probe", func() (any, error) {
		return nil, c.probe(ctx)
	})
	if shared {
		logger.WithContext(ctx, c.env.log).Debug("connection probe shared")
	}
	return err
}

func (c *Connection) probe(ctx context.Context) error {
	log := logger.WithContext(ctx, c.env.log)
	c.env.surface.SetHTML(ui.RegionConnectionStatus, ui.RenderConnection(ui.ConnectionTesting))

	if _, err := c.api.ListUsers(ctx); err != nil {
		log.Warn("connection test failed", zap.Error(err))
		c.env.surface.SetHTML(ui.RegionConnectionStatus, ui.RenderConnection(ui.ConnectionError))
		c.env.notifier.Notify("Connection error: "+pkgerrors.Message(err), notify.Error)
		return err
	}

	log.Info("connection test succeeded")
	c.env.surface.SetHTML(ui.RegionConnectionStatus, ui.RenderConnection(ui.ConnectionConnected))
	c.env.notifier.Notify("Connected to API successfully", notify.Success)
	return nil
}
