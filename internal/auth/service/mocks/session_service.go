// Package mocks provides testify mocks for the auth services.
package mocks

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
)

// MockSessionService is a mock implementation of service.SessionService.
type MockSessionService struct {
	mock.Mock
}

// Issue mocks SessionService.Issue.
func (m *MockSessionService) Issue(adminID uuid.UUID) (*authDomain.Session, error) {
	args := m.Called(adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Session), args.Error(1)
}

// Parse mocks SessionService.Parse.
func (m *MockSessionService) Parse(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// Expiration mocks SessionService.Expiration.
func (m *MockSessionService) Expiration() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}
