// Package mocks provides testify mocks for the auth use cases and repositories.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
)

// MockAdminUseCase is a mock implementation of usecase.AdminUseCase.
type MockAdminUseCase struct {
	mock.Mock
}

// Create mocks AdminUseCase.Create.
func (m *MockAdminUseCase) Create(ctx context.Context, username, password string) (*authDomain.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Admin), args.Error(1)
}

// Login mocks AdminUseCase.Login.
func (m *MockAdminUseCase) Login(ctx context.Context, username, password string) (*authDomain.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Session), args.Error(1)
}

// Authenticate mocks AdminUseCase.Authenticate.
func (m *MockAdminUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Admin, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Admin), args.Error(1)
}

// MockAdminRepository is a mock implementation of usecase.AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

// Create mocks AdminRepository.Create.
func (m *MockAdminRepository) Create(ctx context.Context, admin *authDomain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

// GetByID mocks AdminRepository.GetByID.
func (m *MockAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*authDomain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Admin), args.Error(1)
}

// GetByUsername mocks AdminRepository.GetByUsername.
func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*authDomain.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Admin), args.Error(1)
}

// UpdatePasswordHash mocks AdminRepository.UpdatePasswordHash.
func (m *MockAdminRepository) UpdatePasswordHash(
	ctx context.Context,
	id uuid.UUID,
	passwordHash string,
	updatedAt time.Time,
) error {
	args := m.Called(ctx, id, passwordHash, updatedAt)
	return args.Error(0)
}

// UpdateLastLogin mocks AdminRepository.UpdateLastLogin.
func (m *MockAdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockTxManager is a mock implementation of database.TxManager that runs fn inline.
type MockTxManager struct {
	mock.Mock
}

// WithTx mocks TxManager.WithTx. A non-nil configured error is returned without calling fn.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}
