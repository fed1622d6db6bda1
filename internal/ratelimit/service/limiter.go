// Package service implements the in-process fixed-window rate limiter.
//
// Each IP gets a counting window. Exceeding the window's limit blocks the IP for a
// fixed duration, during which every request is denied without being counted. State
// lives in a single mutex-guarded map, so limits apply per process: replicas behind a
// load balancer each count independently.
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/memoriz2/greensupia-sub000/internal/ratelimit/domain"
)

// RateLimiter decides whether requests from an IP may proceed.
// Implementations never fail; unknown or empty IPs are treated as fresh clients.
type RateLimiter interface {
	// IsAllowed counts a request from ip against the default limit and window.
	IsAllowed(ip string) bool

	// IsAllowedWithLimit counts a request from ip against limit and window.
	// Non-positive values fall back to the defaults.
	IsAllowedWithLimit(ip string, limit int, window time.Duration) bool

	// Check counts a request from ip against the default limit and window and
	// returns the decision with the status it left behind, atomically.
	Check(ip string) (bool, domain.Status)

	// GetStatus returns the state of ip without counting a request. Remaining is
	// computed against the limit the IP's current window was counted with.
	GetStatus(ip string) domain.Status

	// Unblock clears the block and count of ip. Reports whether ip was tracked.
	Unblock(ip string) bool

	// Cleanup evicts idle records and returns how many were removed.
	Cleanup() int

	// GetStats summarizes the tracked IPs.
	GetStats() domain.Stats

	// Limit returns the default request limit per window.
	Limit() int

	// Run evicts idle records periodically until ctx is done.
	Run(ctx context.Context)
}

// Option configures a rateLimiter.
type Option func(*rateLimiter)

// WithLimit sets the default number of requests allowed per window.
func WithLimit(limit int) Option {
	return func(l *rateLimiter) {
		if limit > 0 {
			l.limit = limit
		}
	}
}

// WithWindow sets the default counting window.
func WithWindow(window time.Duration) Option {
	return func(l *rateLimiter) {
		if window > 0 {
			l.window = window
		}
	}
}

// WithBlockDuration sets how long an IP stays blocked after exceeding its limit.
func WithBlockDuration(block time.Duration) Option {
	return func(l *rateLimiter) {
		if block > 0 {
			l.blockDuration = block
		}
	}
}

// WithCleanupInterval sets the period of the eviction loop started by Run.
func WithCleanupInterval(interval time.Duration) Option {
	return func(l *rateLimiter) {
		if interval > 0 {
			l.cleanupInterval = interval
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(l *rateLimiter) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLogger sets the logger used by the eviction loop.
func WithLogger(logger *slog.Logger) Option {
	return func(l *rateLimiter) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// rateLimiter implements RateLimiter with a fixed window per IP and temporary blocking.
type rateLimiter struct {
	mu      sync.Mutex
	records map[string]*domain.Record

	limit           int
	window          time.Duration
	blockDuration   time.Duration
	cleanupInterval time.Duration

	now    func() time.Time
	logger *slog.Logger
}

// NewRateLimiter creates a RateLimiter with the package defaults overridden by opts.
func NewRateLimiter(opts ...Option) RateLimiter {
	l := &rateLimiter{
		records:         make(map[string]*domain.Record),
		limit:           domain.DefaultLimit,
		window:          domain.DefaultWindow,
		blockDuration:   domain.DefaultBlockDuration,
		cleanupInterval: domain.DefaultCleanupInterval,
		now:             time.Now,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IsAllowed counts a request from ip against the default limit and window.
func (l *rateLimiter) IsAllowed(ip string) bool {
	return l.IsAllowedWithLimit(ip, l.limit, l.window)
}

// IsAllowedWithLimit counts a request from ip against limit and window.
func (l *rateLimiter) IsAllowedWithLimit(ip string, limit int, window time.Duration) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.allowLocked(ip, limit, window, now)
}

// Check counts a request from ip against the default limit and returns the decision
// together with the status it produced, both taken under the same lock.
func (l *rateLimiter) Check(ip string) (bool, domain.Status) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	allowed := l.allowLocked(ip, l.limit, l.window, now)
	return allowed, l.statusLocked(ip, now)
}

// GetStatus returns what the next request from ip would observe.
// Unseen IPs get an optimistic status with the full default budget.
func (l *rateLimiter) GetStatus(ip string) domain.Status {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.statusLocked(ip, now)
}

// allowLocked runs the limiter state machine for one request:
//
//   - a blocked IP is denied until its block expires, without counting the request;
//   - an expired block is cleared and the count restarts in the same call;
//   - no record or an elapsed window starts a new window with a count of one;
//   - reaching limit blocks the IP for the block duration and denies the request;
//   - otherwise the count is incremented and the request allowed.
//
// The caller must hold l.mu.
func (l *rateLimiter) allowLocked(ip string, limit int, window time.Duration, now time.Time) bool {
	if limit <= 0 {
		limit = l.limit
	}
	if window <= 0 {
		window = l.window
	}

	record, ok := l.records[ip]
	if ok && record.Blocked {
		if now.Before(record.BlockExpiry) {
			return false
		}
		record.Blocked = false
		record.BlockExpiry = time.Time{}
		record.Count = 0
	}

	if !ok || now.After(record.ResetTime) {
		l.records[ip] = &domain.Record{
			Count:     1,
			ResetTime: now.Add(window),
			Limit:     limit,
		}
		return true
	}

	record.Limit = limit
	if record.Count >= limit {
		record.Blocked = true
		record.BlockExpiry = now.Add(l.blockDuration)
		return false
	}

	record.Count++
	return true
}

// statusLocked projects the record of ip against the limit its window was last
// counted with. The caller must hold l.mu.
func (l *rateLimiter) statusLocked(ip string, now time.Time) domain.Status {
	record, ok := l.records[ip]
	if !ok || (now.After(record.ResetTime) && !record.IsBlocked(now)) {
		return domain.Status{
			Allowed:   true,
			Remaining: l.limit,
			ResetTime: now.Add(l.window),
			Limit:     l.limit,
		}
	}

	limit := record.Limit
	if limit <= 0 {
		limit = l.limit
	}

	if record.IsBlocked(now) {
		return domain.Status{
			Allowed:     false,
			Remaining:   0,
			ResetTime:   record.ResetTime,
			Blocked:     true,
			BlockExpiry: record.BlockExpiry,
			Limit:       limit,
			RetryAfter:  record.BlockExpiry.Sub(now),
		}
	}

	count := record.Count
	if record.Blocked {
		// expired block, the next request restarts the count
		count = 0
	}

	status := domain.Status{
		Allowed:   count < limit,
		Remaining: max(limit-count, 0),
		ResetTime: record.ResetTime,
		Limit:     limit,
	}
	if !status.Allowed {
		status.RetryAfter = record.ResetTime.Sub(now)
	}
	return status
}

// Unblock clears the block and count of ip.
func (l *rateLimiter) Unblock(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.records[ip]
	if !ok {
		return false
	}

	record.Blocked = false
	record.BlockExpiry = time.Time{}
	record.Count = 0
	return true
}

// Cleanup removes records whose window ended more than one block duration ago.
// Such a record can no longer be blocked, since a block never outlives
// ResetTime plus the block duration.
func (l *rateLimiter) Cleanup() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for ip, record := range l.records {
		if now.After(record.ResetTime.Add(l.blockDuration)) {
			delete(l.records, ip)
			removed++
		}
	}
	return removed
}

// GetStats counts tracked, currently blocked and in-window IPs.
func (l *rateLimiter) GetStats() domain.Stats {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	stats := domain.Stats{TotalIPs: len(l.records)}
	for _, record := range l.records {
		if record.IsBlocked(now) {
			stats.BlockedIPs++
		}
		if !now.After(record.ResetTime) {
			stats.ActiveIPs++
		}
	}
	return stats
}

// Limit returns the default request limit per window.
func (l *rateLimiter) Limit() int {
	return l.limit
}

// Run calls Cleanup every cleanup interval until ctx is done.
func (l *rateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(l.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := l.Cleanup(); removed > 0 {
				l.logger.Debug("rate limiter cleanup", slog.Int("removed", removed))
			}
		}
	}
}
