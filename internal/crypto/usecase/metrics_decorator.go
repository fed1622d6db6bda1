package usecase

import (
	"context"
	"time"

	"github.com/memoriz2/greensupia-sub000/internal/metrics"
)

// cryptoUseCaseWithMetrics decorates CryptoUseCase with metrics instrumentation.
type cryptoUseCaseWithMetrics struct {
	next    CryptoUseCase
	metrics metrics.BusinessMetrics
}

// NewCryptoUseCaseWithMetrics wraps a CryptoUseCase with metrics recording.
func NewCryptoUseCaseWithMetrics(useCase CryptoUseCase, m metrics.BusinessMetrics) CryptoUseCase {
	return &cryptoUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *cryptoUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFor(err)
	c.metrics.RecordOperation(ctx, "crypto", operation, status)
	c.metrics.RecordDuration(ctx, "crypto", operation, time.Since(start), status)
}

// Encrypt records metrics for encryption operations.
func (c *cryptoUseCaseWithMetrics) Encrypt(ctx context.Context, plaintext, password string) (string, error) {
	start := time.Now()
	payload, err := c.next.Encrypt(ctx, plaintext, password)
	c.record(ctx, "encrypt", start, err)
	return payload, err
}

// Decrypt records metrics for decryption operations.
func (c *cryptoUseCaseWithMetrics) Decrypt(ctx context.Context, payload, password string) (string, error) {
	start := time.Now()
	plaintext, err := c.next.Decrypt(ctx, payload, password)
	c.record(ctx, "decrypt", start, err)
	return plaintext, err
}

// HashPassword records metrics for password hashing operations.
func (c *cryptoUseCaseWithMetrics) HashPassword(ctx context.Context, password string) (string, error) {
	start := time.Now()
	hashed, err := c.next.HashPassword(ctx, password)
	c.record(ctx, "password_hash", start, err)
	return hashed, err
}

// VerifyPassword records metrics for password verification. A mismatch is recorded as "invalid".
func (c *cryptoUseCaseWithMetrics) VerifyPassword(
	ctx context.Context,
	password, hashed string,
) (bool, error) {
	start := time.Now()
	valid, err := c.next.VerifyPassword(ctx, password, hashed)

	status := metrics.StatusFor(err)
	if err == nil && !valid {
		status = metrics.StatusInvalid
	}

	c.metrics.RecordOperation(ctx, "crypto", "password_verify", status)
	c.metrics.RecordDuration(ctx, "crypto", "password_verify", time.Since(start), status)

	return valid, err
}

// GenerateRandomString records metrics for random token generation.
func (c *cryptoUseCaseWithMetrics) GenerateRandomString(ctx context.Context, length int) (string, error) {
	start := time.Now()
	value, err := c.next.GenerateRandomString(ctx, length)
	c.record(ctx, "random_generate", start, err)
	return value, err
}

// SealInquiry records metrics for inquiry sealing.
func (c *cryptoUseCaseWithMetrics) SealInquiry(ctx context.Context, plaintext string) (string, error) {
	start := time.Now()
	payload, err := c.next.SealInquiry(ctx, plaintext)
	c.record(ctx, "inquiry_seal", start, err)
	return payload, err
}

// OpenInquiry records metrics for inquiry opening.
func (c *cryptoUseCaseWithMetrics) OpenInquiry(ctx context.Context, payload string) (string, error) {
	start := time.Now()
	plaintext, err := c.next.OpenInquiry(ctx, payload)
	c.record(ctx, "inquiry_open", start, err)
	return plaintext, err
}
