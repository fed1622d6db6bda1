package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/memoriz2/greensupia-sub000/internal/httputil"
	"github.com/memoriz2/greensupia-sub000/internal/metrics"
)

// loginLimiterStore holds per-IP token buckets with automatic cleanup.
type loginLimiterStore struct {
	limiters sync.Map // map[string]*loginLimiterEntry (IP -> limiter)
	rps      float64
	burst    int
}

// loginLimiterEntry holds a token bucket and last access time for cleanup.
type loginLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// LoginRateLimitMiddleware enforces a per-IP token bucket on the admin login endpoint.
//
// Applied to the unauthenticated login route on top of RateLimitMiddleware. Each IP gets
// an independent bucket; stale buckets are evicted until ctx is done.
//
// Configuration:
//   - rps: Login attempts per second allowed per IP address
//   - burst: Maximum burst capacity for temporary spikes
//
// Returns:
//   - 429 Too Many Requests: Rate limit exceeded (includes Retry-After header)
//   - Continues: Request allowed within rate limit
func LoginRateLimitMiddleware(
	ctx context.Context,
	rps float64,
	burst int,
	rateLimitMetrics metrics.RateLimitMetrics,
	logger *slog.Logger,
) gin.HandlerFunc {
	store := &loginLimiterStore{
		rps:   rps,
		burst: burst,
	}

	// Start cleanup goroutine for stale limiters (every 5 minutes)
	go store.cleanupStale(ctx, 5*time.Minute, time.Hour)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		limiter := store.getLimiter(clientIP)

		if !limiter.Allow() {
			// Calculate retry-after delay
			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds())
			reservation.Cancel()
			if retryAfter < 1 {
				retryAfter = 1
			}

			rateLimitMetrics.RecordDenied(c.Request.Context(), "login")
			logger.Debug("login rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))

			c.Header(HeaderRetryAfter, strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorResponse{
				Error:   "rate_limit_exceeded",
				Message: "Too many login attempts from this IP. Please retry after the specified delay.",
			})
			return
		}

		c.Next()
	}
}

// getLimiter retrieves or creates a token bucket for an IP address.
func (s *loginLimiterStore) getLimiter(ip string) *rate.Limiter {
	if val, ok := s.limiters.Load(ip); ok {
		entry := val.(*loginLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now()
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &loginLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: time.Now(),
	}

	// LoadOrStore keeps concurrent first requests on the same bucket
	actual, _ := s.limiters.LoadOrStore(ip, entry)
	return actual.(*loginLimiterEntry).limiter
}

// cleanupStale removes buckets not accessed within maxIdle.
// Runs periodically to prevent unbounded memory growth from IP address churn.
func (s *loginLimiterStore) cleanupStale(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictIdle(time.Now().Add(-maxIdle))
		}
	}
}

// evictIdle deletes every bucket last accessed before threshold.
func (s *loginLimiterStore) evictIdle(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*loginLimiterEntry)
		entry.mu.Lock()
		shouldDelete := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if shouldDelete {
			s.limiters.Delete(key)
		}
		return true
	})
}
