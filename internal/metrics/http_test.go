package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsRouter(t *testing.T) (*gin.Engine, *Provider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("greensupia_test", WithRuntimeMetrics(false))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, provider.Shutdown(context.Background())) })

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "greensupia_test"))
	router.GET("/v1/admin/rate-limits/:ip", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ip": c.Param("ip")})
	})
	router.POST("/v1/crypto/decrypt", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "decryption_failed"})
	})
	return router, provider
}

func serve(router *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	t.Run("LabelsUseRoutePattern", func(t *testing.T) {
		router, provider := newMetricsRouter(t)

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/admin/rate-limits/10.0.0.1"))
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/admin/rate-limits/10.0.0.2"))

		body := scrape(t, provider)
		assert.Contains(t, body, "greensupia_test_http_requests_total")
		assert.Contains(t, body, "greensupia_test_http_request_duration_seconds")
		assert.Contains(t, body, `path="/v1/admin/rate-limits/:ip"`)
		assert.NotContains(t, body, "10.0.0.1")
	})

	t.Run("RecordsStatusClass", func(t *testing.T) {
		router, provider := newMetricsRouter(t)

		assert.Equal(t, http.StatusUnprocessableEntity, serve(router, http.MethodPost, "/v1/crypto/decrypt"))

		body := scrape(t, provider)
		assert.Contains(t, body, `status_code="422"`)
		assert.Contains(t, body, `status_class="4xx"`)
	})

	t.Run("UnmatchedRoutesShareOneLabel", func(t *testing.T) {
		router, provider := newMetricsRouter(t)

		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/wp-admin/setup.php"))

		body := scrape(t, provider)
		assert.Contains(t, body, `path="unmatched"`)
		assert.NotContains(t, body, "wp-admin")
	})
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/v1/admin/rate-limits/:ip", routeLabel("/v1/admin/rate-limits/:ip"))
	assert.Equal(t, unmatchedRoute, routeLabel(""))
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{http.StatusOK, "2xx"},
		{http.StatusCreated, "2xx"},
		{http.StatusTooManyRequests, "4xx"},
		{http.StatusServiceUnavailable, "5xx"},
		{0, "unknown"},
		{700, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, statusClass(tt.status))
	}
}
