package di

import (
	"fmt"
	"time"

	"crud-dashboard/cmd/api/infrastructure"
	"crud-dashboard/internal/adapter/api"
	ginhandler "crud-dashboard/internal/adapter/gin/handler"
	"crud-dashboard/internal/config"
	"crud-dashboard/internal/notify"
	"crud-dashboard/internal/store"
	"crud-dashboard/internal/ui"
	"crud-dashboard/internal/usecase/dashboard"
	redisclient "crud-dashboard/pkg/redis"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	RedisClient *redisclient.Client // nil when rate limiting is disabled
	APIClient   *api.Client
	Store       *store.Store
	Regions     *ui.Regions
	Notifier    *notify.Notifier
	Dashboard   *dashboard.Dashboard
	GinHandler  *ginhandler.DashboardHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize Redis client
	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	apiClient := infrastructure.NewAPIClient(cfg, l)

	// Initialize rendering surface and notifications
	st := store.New()
	regions := ui.NewRegions()
	notifier := notify.New(regions, l.Named("notify"),
		notify.WithTTL(time.Duration(cfg.Notification.TTLMillis)*time.Millisecond),
	)

	// Initialize use case
	dash := dashboard.New(apiClient, st, regions, notifier, l.Named("dashboard"))

	// Initialize Gin handler
	ginHandler := ginhandler.NewDashboardHandler(dash, regions, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		RedisClient: rdb,
		APIClient:   apiClient,
		Store:       st,
		Regions:     regions,
		Notifier:    notifier,
		Dashboard:   dash,
		GinHandler:  ginHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}
	return nil
}
