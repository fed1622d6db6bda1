// Package mocks provides mock implementations of the crypto use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCryptoUseCase is a mock implementation of CryptoUseCase.
type MockCryptoUseCase struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of CryptoUseCase.
func (m *MockCryptoUseCase) Encrypt(ctx context.Context, plaintext, password string) (string, error) {
	args := m.Called(ctx, plaintext, password)
	return args.String(0), args.Error(1)
}

// Decrypt mocks the Decrypt method of CryptoUseCase.
func (m *MockCryptoUseCase) Decrypt(ctx context.Context, payload, password string) (string, error) {
	args := m.Called(ctx, payload, password)
	return args.String(0), args.Error(1)
}

// HashPassword mocks the HashPassword method of CryptoUseCase.
func (m *MockCryptoUseCase) HashPassword(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

// VerifyPassword mocks the VerifyPassword method of CryptoUseCase.
func (m *MockCryptoUseCase) VerifyPassword(ctx context.Context, password, hashed string) (bool, error) {
	args := m.Called(ctx, password, hashed)
	return args.Bool(0), args.Error(1)
}

// GenerateRandomString mocks the GenerateRandomString method of CryptoUseCase.
func (m *MockCryptoUseCase) GenerateRandomString(ctx context.Context, length int) (string, error) {
	args := m.Called(ctx, length)
	return args.String(0), args.Error(1)
}

// SealInquiry mocks the SealInquiry method of CryptoUseCase.
func (m *MockCryptoUseCase) SealInquiry(ctx context.Context, plaintext string) (string, error) {
	args := m.Called(ctx, plaintext)
	return args.String(0), args.Error(1)
}

// OpenInquiry mocks the OpenInquiry method of CryptoUseCase.
func (m *MockCryptoUseCase) OpenInquiry(ctx context.Context, payload string) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}
