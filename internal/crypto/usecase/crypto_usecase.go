package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/semaphore"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
	cryptoService "github.com/memoriz2/greensupia-sub000/internal/crypto/service"
)

// cryptoUseCase implements CryptoUseCase on top of cryptoService.EncryptionService.
type cryptoUseCase struct {
	encryption cryptoService.EncryptionService
	sem        *semaphore.Weighted
	passphrase string
	logger     *slog.Logger
}

// NewCryptoUseCase creates a CryptoUseCase that runs at most maxConcurrent key derivations
// at a time. A non-positive maxConcurrent is treated as 1. passphrase is the application
// passphrase used by SealInquiry and OpenInquiry and may be empty.
func NewCryptoUseCase(
	encryption cryptoService.EncryptionService,
	maxConcurrent int,
	passphrase string,
	logger *slog.Logger,
) CryptoUseCase {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &cryptoUseCase{
		encryption: encryption,
		sem:        semaphore.NewWeighted(int64(maxConcurrent)),
		passphrase: passphrase,
		logger:     logger,
	}
}

// withSlot runs fn while holding a key derivation slot.
func (c *cryptoUseCase) withSlot(ctx context.Context, fn func()) error {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.sem.Release(1)

	fn()
	return nil
}

// Encrypt seals plaintext with password.
func (c *cryptoUseCase) Encrypt(ctx context.Context, plaintext, password string) (string, error) {
	var (
		payload string
		encErr  error
	)
	if err := c.withSlot(ctx, func() {
		payload, encErr = c.encryption.Encrypt(plaintext, password)
	}); err != nil {
		return "", err
	}
	if encErr != nil {
		c.logger.Error("encryption failed", slog.Any("error", encErr))
		return "", encErr
	}
	return payload, nil
}

// Decrypt opens payload with password.
func (c *cryptoUseCase) Decrypt(ctx context.Context, payload, password string) (string, error) {
	var (
		plaintext string
		decErr    error
	)
	if err := c.withSlot(ctx, func() {
		plaintext, decErr = c.encryption.Decrypt(payload, password)
	}); err != nil {
		return "", err
	}
	if decErr != nil {
		c.logger.Warn("decryption rejected", slog.Any("error", decErr))
		return "", decErr
	}
	return plaintext, nil
}

// HashPassword produces a "salt:hash" PBKDF2 hash.
func (c *cryptoUseCase) HashPassword(ctx context.Context, password string) (string, error) {
	var (
		hashed  string
		hashErr error
	)
	if err := c.withSlot(ctx, func() {
		hashed, hashErr = c.encryption.HashPassword(password)
	}); err != nil {
		return "", err
	}
	if hashErr != nil {
		c.logger.Error("password hashing failed", slog.Any("error", hashErr))
		return "", hashErr
	}
	return hashed, nil
}

// VerifyPassword reports whether password matches hashed.
func (c *cryptoUseCase) VerifyPassword(ctx context.Context, password, hashed string) (bool, error) {
	var valid bool
	if err := c.withSlot(ctx, func() {
		valid = c.encryption.VerifyPassword(password, hashed)
	}); err != nil {
		return false, err
	}
	return valid, nil
}

// GenerateRandomString returns length random bytes hex-encoded. It does not take a slot.
func (c *cryptoUseCase) GenerateRandomString(ctx context.Context, length int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.encryption.GenerateRandomString(length)
}

// SealInquiry encrypts inquiry content with the application passphrase.
func (c *cryptoUseCase) SealInquiry(ctx context.Context, plaintext string) (string, error) {
	if c.passphrase == "" {
		return "", cryptoDomain.ErrPassphraseUnavailable
	}
	return c.Encrypt(ctx, plaintext, c.passphrase)
}

// OpenInquiry decrypts inquiry content sealed with the application passphrase.
func (c *cryptoUseCase) OpenInquiry(ctx context.Context, payload string) (string, error) {
	if c.passphrase == "" {
		return "", cryptoDomain.ErrPassphraseUnavailable
	}
	return c.Decrypt(ctx, payload, c.passphrase)
}
