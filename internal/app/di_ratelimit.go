package app

import (
	"fmt"
	"sync"

	"github.com/memoriz2/greensupia-sub000/internal/metrics"
	rateLimitHTTP "github.com/memoriz2/greensupia-sub000/internal/ratelimit/http"
	rateLimitService "github.com/memoriz2/greensupia-sub000/internal/ratelimit/service"
)

// rateLimitComponents groups the lazily built rate limiting dependencies.
type rateLimitComponents struct {
	rateLimiter      rateLimitService.RateLimiter
	rateLimitMetrics metrics.RateLimitMetrics

	rateLimiterInit      sync.Once
	rateLimitMetricsInit sync.Once
}

// RateLimiter returns the process-wide window rate limiter. Its eviction loop runs
// until Shutdown.
func (c *Container) RateLimiter() rateLimitService.RateLimiter {
	c.rateLimiterInit.Do(func() {
		c.rateLimiter = rateLimitService.NewRateLimiter(
			rateLimitService.WithLimit(c.config.RateLimitMaxRequests),
			rateLimitService.WithWindow(c.config.RateLimitWindow),
			rateLimitService.WithBlockDuration(c.config.RateLimitBlockDuration),
			rateLimitService.WithCleanupInterval(c.config.RateLimitCleanupInterval),
			rateLimitService.WithLogger(c.Logger()),
		)
		go c.rateLimiter.Run(c.runCtx)
	})
	return c.rateLimiter
}

// RateLimitMetrics returns the limiter metrics. The gauges read the limiter on every scrape.
func (c *Container) RateLimitMetrics() (metrics.RateLimitMetrics, error) {
	c.rateLimitMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.setResult("rateLimitMetrics", err)
			return
		}
		if provider == nil {
			c.rateLimitMetrics = metrics.NewNoOpRateLimitMetrics()
			return
		}

		limiter := c.RateLimiter()
		rlm, err := metrics.NewRateLimitMetrics(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
			func() (tracked, blocked, active int) {
				stats := limiter.GetStats()
				return stats.TotalIPs, stats.BlockedIPs, stats.ActiveIPs
			},
		)
		if err != nil {
			c.setResult("rateLimitMetrics", fmt.Errorf("failed to create rate limit metrics: %w", err))
			return
		}
		c.rateLimitMetrics = rlm
	})
	if err := c.initError("rateLimitMetrics"); err != nil {
		return nil, err
	}
	return c.rateLimitMetrics, nil
}

// RateLimitHandler creates the HTTP handler for the /v1/admin/rate-limits routes.
func (c *Container) RateLimitHandler() *rateLimitHTTP.AdminHandler {
	return rateLimitHTTP.NewAdminHandler(c.RateLimiter(), c.Logger())
}
