package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crud-dashboard/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, mr
}

func setupRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.POST("/ui/users/reload", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func post(r http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/ui/users/reload", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_WithinLimit(t *testing.T) {
	client, _ := setupTestRedis(t)
	r := setupRouter(RateLimiter(client, RateLimitConfig{Enabled: true, RequestsPerSecond: 10, BurstCapacity: 10}, zaptest.NewLogger(t)))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1234").Code)
	}
}

func TestRateLimiter_ExceedLimit(t *testing.T) {
	client, _ := setupTestRedis(t)
	r := setupRouter(RateLimiter(client, RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, BurstCapacity: 3}, zaptest.NewLogger(t)))

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, post(r, "10.0.0.1:1234").Code)
	}

	w := post(r, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")

	// another client has its own bucket
	assert.Equal(t, http.StatusOK, post(r, "10.0.0.2:1234").Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	client, mr := setupTestRedis(t)
	r := setupRouter(RateLimiter(client, RateLimitConfig{Enabled: false, RequestsPerSecond: 0.001, BurstCapacity: 1}, zaptest.NewLogger(t)))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1234").Code)
	}
	assert.Empty(t, mr.Keys())
}

func TestRateLimiter_FailOpen(t *testing.T) {
	client, mr := setupTestRedis(t)
	mr.Close()

	r := setupRouter(RateLimiter(client, RateLimitConfig{Enabled: true, RequestsPerSecond: 1, BurstCapacity: 1}, zaptest.NewLogger(t)))

	assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1234").Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = logger.GetRequestID(c.Request.Context())
	})

	t.Run("reuses client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(logger.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(logger.RequestIDHeader))
	})

	t.Run("generates one", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(logger.RequestIDHeader))
	})
}

func TestLoggerAndRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(log), Recovery(log))
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	panics := logs.FilterMessage("panic recovered").All()
	require.Len(t, panics, 1)
	assert.NotEmpty(t, panics[0].ContextMap()["request_id"])

	access := logs.FilterMessage("HTTP request").All()
	require.Len(t, access, 1)
	assert.Equal(t, zapcore.ErrorLevel, access[0].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), access[0].ContextMap()["status"])
}
