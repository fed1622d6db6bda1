// Package domain defines the state tracked by the request rate limiter.
package domain

import "time"

// Default limiter parameters.
const (
	DefaultLimit           = 100
	DefaultWindow          = time.Minute
	DefaultBlockDuration   = 5 * time.Minute
	DefaultCleanupInterval = 10 * time.Minute
)

// Record is the per-IP counting state. Limit is the request limit the current
// window is counted against. Records are owned by the limiter and never handed
// out; callers see Status and Stats snapshots instead.
type Record struct {
	Count       int
	ResetTime   time.Time
	Blocked     bool
	BlockExpiry time.Time
	Limit       int
}

// IsBlocked reports whether the record is blocked at now.
func (r *Record) IsBlocked(now time.Time) bool {
	return r.Blocked && now.Before(r.BlockExpiry)
}

// Status is a read-only view of an IP's limiter state. RetryAfter is the wait a
// denied client faces, measured on the limiter's clock.
type Status struct {
	Allowed     bool          `json:"allowed"`
	Remaining   int           `json:"remaining"`
	ResetTime   time.Time     `json:"reset_time"`
	Blocked     bool          `json:"blocked"`
	BlockExpiry time.Time     `json:"block_expiry,omitzero"`
	Limit       int           `json:"limit"`
	RetryAfter  time.Duration `json:"-"`
}

// Stats summarizes the limiter table.
type Stats struct {
	TotalIPs   int `json:"total_ips"`
	BlockedIPs int `json:"blocked_ips"`
	ActiveIPs  int `json:"active_ips"`
}
