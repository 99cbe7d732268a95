package server

import (
	"net/http"
	"time"

	ginhandler "crud-dashboard/internal/adapter/gin/handler"
	"crud-dashboard/internal/adapter/gin/middleware"
	ginrouter "crud-dashboard/internal/adapter/gin/router"
	"crud-dashboard/internal/config"
	redisclient "crud-dashboard/pkg/redis"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SetupGinServer creates and configures the dashboard HTTP server
func SetupGinServer(
	cfg *config.Config,
	handler *ginhandler.DashboardHandler,
	redisClient *redisclient.Client,
	addr string,
	l *zap.Logger,
) *http.Server {
	var rdb *redis.Client
	if redisClient != nil {
		rdb = redisClient.Client
	}

	rateLimit := middleware.RateLimitConfig{
		Enabled:           cfg.RateLimit.Enabled,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstCapacity:     cfg.RateLimit.BurstCapacity,
	}

	// Setup Gin router with all middleware and routes
	router := ginrouter.SetupRouter(handler, rateLimit, rdb, l)

	l.Info("dashboard server configured",
		zap.String("address", addr),
		zap.Bool("rate_limit", rateLimit.Enabled),
	)

	// No WriteTimeout: an action waits for the remote API, which has no
	// timeout unless API_TIMEOUT_SECONDS is set.
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
