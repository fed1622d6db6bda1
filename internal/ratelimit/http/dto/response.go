// Package dto provides data transfer objects for the rate limit admin endpoints.
package dto

import (
	"time"

	"github.com/memoriz2/greensupia-sub000/internal/ratelimit/domain"
)

// StatusResponse represents the limiter state of one IP in API responses.
type StatusResponse struct {
	IP          string     `json:"ip"`
	Allowed     bool       `json:"allowed"`
	Remaining   int        `json:"remaining"`
	ResetTime   time.Time  `json:"reset_time"`
	Blocked     bool       `json:"blocked"`
	BlockExpiry *time.Time `json:"block_expiry,omitempty"`
}

// MapStatusToResponse converts a domain status to an API response.
func MapStatusToResponse(ip string, status domain.Status) StatusResponse {
	response := StatusResponse{
		IP:        ip,
		Allowed:   status.Allowed,
		Remaining: status.Remaining,
		ResetTime: status.ResetTime,
		Blocked:   status.Blocked,
	}
	if status.Blocked {
		expiry := status.BlockExpiry
		response.BlockExpiry = &expiry
	}
	return response
}

// StatsResponse represents limiter table statistics in API responses.
type StatsResponse struct {
	TotalIPs   int `json:"total_ips"`
	BlockedIPs int `json:"blocked_ips"`
	ActiveIPs  int `json:"active_ips"`
	Limit      int `json:"limit"`
}

// MapStatsToResponse converts domain stats to an API response.
func MapStatsToResponse(stats domain.Stats, limit int) StatsResponse {
	return StatsResponse{
		TotalIPs:   stats.TotalIPs,
		BlockedIPs: stats.BlockedIPs,
		ActiveIPs:  stats.ActiveIPs,
		Limit:      limit,
	}
}

// CleanupResponse reports how many idle records a cleanup removed.
type CleanupResponse struct {
	Removed int `json:"removed"`
}
