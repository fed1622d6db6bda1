// Package usecase defines the business logic interfaces for cryptographic operations.
package usecase

import "context"

// CryptoUseCase exposes the encryption service to request handlers and CLI commands.
//
// Every key derivation runs under a shared concurrency limit. Callers that cannot
// acquire a slot before ctx is done receive the context error.
type CryptoUseCase interface {
	// Encrypt seals plaintext with password.
	Encrypt(ctx context.Context, plaintext, password string) (string, error)

	// Decrypt opens a payload sealed with password. Any cryptographic failure is
	// reported as domain.ErrDecryptionFailed.
	Decrypt(ctx context.Context, payload, password string) (string, error)

	// HashPassword produces a "salt:hash" PBKDF2 hash.
	HashPassword(ctx context.Context, password string) (string, error)

	// VerifyPassword reports whether password matches hashed. The error is non-nil only
	// when ctx ends before verification could run.
	VerifyPassword(ctx context.Context, password, hashed string) (bool, error)

	// GenerateRandomString returns length random bytes hex-encoded.
	GenerateRandomString(ctx context.Context, length int) (string, error)

	// SealInquiry encrypts inquiry content with the application passphrase.
	SealInquiry(ctx context.Context, plaintext string) (string, error)

	// OpenInquiry decrypts inquiry content sealed with the application passphrase.
	OpenInquiry(ctx context.Context, payload string) (string, error)
}
