// Package mocks provides mock implementations of the crypto services for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
)

// MockEncryptionService is a mock implementation of EncryptionService.
type MockEncryptionService struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of EncryptionService.
func (m *MockEncryptionService) Encrypt(plaintext, password string) (string, error) {
	args := m.Called(plaintext, password)
	return args.String(0), args.Error(1)
}

// Decrypt mocks the Decrypt method of EncryptionService.
func (m *MockEncryptionService) Decrypt(payload, password string) (string, error) {
	args := m.Called(payload, password)
	return args.String(0), args.Error(1)
}

// HashPassword mocks the HashPassword method of EncryptionService.
func (m *MockEncryptionService) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// VerifyPassword mocks the VerifyPassword method of EncryptionService.
func (m *MockEncryptionService) VerifyPassword(password, hashed string) bool {
	args := m.Called(password, hashed)
	return args.Bool(0)
}

// GenerateRandomString mocks the GenerateRandomString method of EncryptionService.
func (m *MockEncryptionService) GenerateRandomString(length int) (string, error) {
	args := m.Called(length)
	return args.String(0), args.Error(1)
}

// MockPasswordHasher is a mock implementation of PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// Hash mocks the Hash method of PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// Verify mocks the Verify method of PasswordHasher.
func (m *MockPasswordHasher) Verify(password, hashed string) bool {
	args := m.Called(password, hashed)
	return args.Bool(0)
}

// NeedsRehash mocks the NeedsRehash method of PasswordHasher.
func (m *MockPasswordHasher) NeedsRehash(hashed string) bool {
	args := m.Called(hashed)
	return args.Bool(0)
}

// Algorithm mocks the Algorithm method of PasswordHasher.
func (m *MockPasswordHasher) Algorithm() cryptoDomain.HashAlgorithm {
	args := m.Called()
	return args.Get(0).(cryptoDomain.HashAlgorithm)
}

// MockKMSService is a mock implementation of KMSService.
type MockKMSService struct {
	mock.Mock
}

// OpenKeeper mocks the OpenKeeper method of KMSService.
func (m *MockKMSService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	args := m.Called(ctx, keyURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(cryptoDomain.KMSKeeper), args.Error(1)
}

// Seal mocks the Seal method of KMSService.
func (m *MockKMSService) Seal(ctx context.Context, keyURI, plaintext string) (string, error) {
	args := m.Called(ctx, keyURI, plaintext)
	return args.String(0), args.Error(1)
}

// Unseal mocks the Unseal method of KMSService.
func (m *MockKMSService) Unseal(ctx context.Context, keyURI, sealed string) (string, error) {
	args := m.Called(ctx, keyURI, sealed)
	return args.String(0), args.Error(1)
}
