package router

import (
	"net/http"

	"crud-dashboard/internal/adapter/gin/handler"
	"crud-dashboard/internal/adapter/gin/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and middleware.
// redisClient may be nil, in which case dashboard actions are not rate limited.
func SetupRouter(
	h *handler.DashboardHandler,
	rateLimit middleware.RateLimitConfig,
	redisClient *redis.Client,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "crud-dashboard",
		})
	})

	router.GET("/", h.Page)

	ui := router.Group("/ui")
	ui.Use(middleware.RateLimiter(redisClient, rateLimit, log))
	{
		ui.POST("/init", h.Init)
		ui.POST("/connection", h.TestConnection)
		ui.GET("/tabs/:tab", h.ActivateTab)
		ui.GET("/regions/:region", h.Region)

		users := ui.Group("/users")
		{
			users.POST("", h.CreateUser)
			users.POST("/reload", h.ReloadUsers)
			users.GET("/:id/edit", h.EditUser)
			users.DELETE("/:id", h.DeleteUser)
		}

		tasks := ui.Group("/tasks")
		{
			tasks.POST("", h.CreateTask)
			tasks.POST("/reload", h.ReloadTasks)
			tasks.GET("/:id/edit", h.EditTask)
			tasks.DELETE("/:id", h.DeleteTask)
		}

		messages := ui.Group("/messages")
		{
			messages.POST("", h.CreateMessage)
			messages.POST("/reload", h.ReloadMessages)
			messages.GET("/:id/edit", h.EditMessage)
			messages.DELETE("/:id", h.DeleteMessage)
		}
	}

	return router
}
