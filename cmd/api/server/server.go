package server

import (
	"errors"
	"fmt"
	"net/http"

	ginhandler "crud-dashboard/internal/adapter/gin/handler"
	"crud-dashboard/internal/config"
	redisclient "crud-dashboard/pkg/redis"

	"go.uber.org/zap"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	Gin    *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, l *zap.Logger, handler *ginhandler.DashboardHandler, redisClient *redisclient.Client) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		Gin:    SetupGinServer(cfg, handler, redisClient, httpAddress(cfg), l),
	}
}

// Start serves the dashboard until the server is shut down
func (s *Server) Start() error {
	s.Logger.Info("dashboard running", zap.String("address", s.Gin.Addr))

	if err := s.Gin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve dashboard: %w", err)
	}
	return nil
}

// httpAddress returns the HTTP server address
func httpAddress(cfg *config.Config) string {
	return ":" + cfg.App.HTTPPort
}
