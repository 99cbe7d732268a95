package infrastructure

import (
	"time"

	"crud-dashboard/internal/adapter/api"
	"crud-dashboard/internal/config"

	"go.uber.org/zap"
)

// NewAPIClient creates the client of the remote REST API.
func NewAPIClient(cfg *config.Config, l *zap.Logger) *api.Client {
	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second

	l.Info("remote API configured",
		zap.String("base_url", cfg.API.BaseURL),
		zap.Duration("timeout", timeout),
	)

	return api.NewClient(cfg.API.BaseURL, l.Named("api"), api.WithTimeout(timeout))
}
