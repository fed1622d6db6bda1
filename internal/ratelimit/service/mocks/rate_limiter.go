// Package mocks provides mock implementations of the rate limiter for testing.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/memoriz2/greensupia-sub000/internal/ratelimit/domain"
)

// MockRateLimiter is a mock implementation of RateLimiter.
type MockRateLimiter struct {
	mock.Mock
}

// IsAllowed mocks the IsAllowed method of RateLimiter.
func (m *MockRateLimiter) IsAllowed(ip string) bool {
	args := m.Called(ip)
	return args.Bool(0)
}

// IsAllowedWithLimit mocks the IsAllowedWithLimit method of RateLimiter.
func (m *MockRateLimiter) IsAllowedWithLimit(ip string, limit int, window time.Duration) bool {
	args := m.Called(ip, limit, window)
	return args.Bool(0)
}

// Check mocks the Check method of RateLimiter.
func (m *MockRateLimiter) Check(ip string) (bool, domain.Status) {
	args := m.Called(ip)
	return args.Bool(0), args.Get(1).(domain.Status)
}

// GetStatus mocks the GetStatus method of RateLimiter.
func (m *MockRateLimiter) GetStatus(ip string) domain.Status {
	args := m.Called(ip)
	return args.Get(0).(domain.Status)
}

// Unblock mocks the Unblock method of RateLimiter.
func (m *MockRateLimiter) Unblock(ip string) bool {
	args := m.Called(ip)
	return args.Bool(0)
}

// Cleanup mocks the Cleanup method of RateLimiter.
func (m *MockRateLimiter) Cleanup() int {
	args := m.Called()
	return args.Int(0)
}

// GetStats mocks the GetStats method of RateLimiter.
func (m *MockRateLimiter) GetStats() domain.Stats {
	args := m.Called()
	return args.Get(0).(domain.Stats)
}

// Limit mocks the Limit method of RateLimiter.
func (m *MockRateLimiter) Limit() int {
	args := m.Called()
	return args.Int(0)
}

// Run mocks the Run method of RateLimiter.
func (m *MockRateLimiter) Run(ctx context.Context) {
	m.Called(ctx)
}
