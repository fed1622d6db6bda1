// Package http provides the rate limiting middleware and admin handlers.
package http

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/memoriz2/greensupia-sub000/internal/httputil"
	"github.com/memoriz2/greensupia-sub000/internal/metrics"
	"github.com/memoriz2/greensupia-sub000/internal/ratelimit/domain"
	"github.com/memoriz2/greensupia-sub000/internal/ratelimit/service"
)

// Rate limit response headers.
const (
	HeaderLimit      = "X-RateLimit-Limit"
	HeaderRemaining  = "X-RateLimit-Remaining"
	HeaderReset      = "X-RateLimit-Reset"
	HeaderRetryAfter = "Retry-After"
)

// RateLimitMiddleware enforces the fixed-window per-IP limit.
//
// Uses c.ClientIP(), which honors the engine's trusted proxy configuration for
// X-Forwarded-For and X-Real-IP.
//
// Returns:
//   - 429 Too Many Requests: IP blocked (includes Retry-After and X-RateLimit-* headers)
//   - Continues: Request counted and allowed (X-RateLimit-* headers set)
func RateLimitMiddleware(
	limiter service.RateLimiter,
	rateLimitMetrics metrics.RateLimitMetrics,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		allowed, status := limiter.Check(clientIP)
		setRateLimitHeaders(c, status)

		if allowed {
			c.Next()
			return
		}

		retryAfter := retryAfterSeconds(status.RetryAfter)
		rateLimitMetrics.RecordDenied(c.Request.Context(), "api")

		logger.Debug("rate limit exceeded",
			slog.String("client_ip", clientIP),
			slog.Int("retry_after", retryAfter))

		c.Header(HeaderRetryAfter, strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorResponse{
			Error:   "rate_limit_exceeded",
			Message: "Too many requests. Please retry after the specified delay.",
		})
	}
}

// setRateLimitHeaders writes the X-RateLimit-* headers. The reset header is the unix
// time at which the client may send again.
func setRateLimitHeaders(c *gin.Context, status domain.Status) {
	reset := status.ResetTime
	if status.Blocked {
		reset = status.BlockExpiry
	}

	c.Header(HeaderLimit, strconv.Itoa(status.Limit))
	c.Header(HeaderRemaining, strconv.Itoa(status.Remaining))
	c.Header(HeaderReset, strconv.FormatInt(reset.Unix(), 10))
}

// retryAfterSeconds rounds wait up to whole seconds, at least one.
func retryAfterSeconds(wait time.Duration) int {
	seconds := int(math.Ceil(wait.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}
