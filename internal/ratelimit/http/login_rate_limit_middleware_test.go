package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/memoriz2/greensupia-sub000/internal/metrics"
)

func setupLoginRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	router := gin.New()
	router.Use(LoginRateLimitMiddleware(ctx, rps, burst, metrics.NewNoOpRateLimitMetrics(), newTestLogger()))
	router.POST("/v1/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func postLogin(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	router.ServeHTTP(w, req)
	return w
}

func TestLoginRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	router := setupLoginRouter(t, 10.0, 20)

	for range 5 {
		assert.Equal(t, http.StatusOK, postLogin(router, "").Code)
	}
}

func TestLoginRateLimitMiddleware_BlocksRequestsExceedingBurst(t *testing.T) {
	router := setupLoginRouter(t, 0.5, 2)

	for range 2 {
		assert.Equal(t, http.StatusOK, postLogin(router, "").Code)
	}

	w := postLogin(router, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRetryAfter))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	assert.Contains(t, w.Body.String(), "Too many login attempts from this IP")
}

func TestLoginRateLimitMiddleware_IndependentLimitsPerIP(t *testing.T) {
	router := setupLoginRouter(t, 1.0, 1)

	assert.Equal(t, http.StatusOK, postLogin(router, "192.168.1.100:12345").Code)
	assert.Equal(t, http.StatusTooManyRequests, postLogin(router, "192.168.1.100:12345").Code)
	assert.Equal(t, http.StatusOK, postLogin(router, "192.168.1.200:12345").Code)
}

func TestLoginRateLimitMiddleware_RefillsOverTime(t *testing.T) {
	router := setupLoginRouter(t, 20.0, 1)

	assert.Equal(t, http.StatusOK, postLogin(router, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, postLogin(router, "").Code)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, http.StatusOK, postLogin(router, "").Code)
}

func TestLoginLimiterStore_EvictIdle(t *testing.T) {
	store := &loginLimiterStore{rps: 1, burst: 1}

	store.getLimiter("10.0.0.1")
	store.getLimiter("10.0.0.2")

	store.evictIdle(time.Now().Add(-time.Hour))
	assert.Equal(t, 2, countEntries(store))

	store.evictIdle(time.Now().Add(time.Second))
	assert.Equal(t, 0, countEntries(store))
}

func TestLoginLimiterStore_SameLimiterPerIP(t *testing.T) {
	store := &loginLimiterStore{rps: 1, burst: 1}

	assert.Same(t, store.getLimiter("10.0.0.1"), store.getLimiter("10.0.0.1"))
	assert.NotSame(t, store.getLimiter("10.0.0.1"), store.getLimiter("10.0.0.2"))
}

func countEntries(store *loginLimiterStore) int {
	n := 0
	store.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
