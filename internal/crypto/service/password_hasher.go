package service

import (
	"github.com/allisson/go-pwdhash"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
	apperrors "github.com/memoriz2/greensupia-sub000/internal/errors"
)

// passwordHasher hashes admin credentials with either PBKDF2 "salt:hash" strings or
// Argon2id PHC strings. Verification detects the format of the stored hash, so both
// can coexist while accounts migrate.
type passwordHasher struct {
	algorithm  cryptoDomain.HashAlgorithm
	encryption EncryptionService
	argon2     *pwdhash.PasswordHasher
}

// NewPasswordHasher creates a PasswordHasher for the given algorithm.
// The Argon2id hasher uses the Moderate policy.
func NewPasswordHasher(
	algorithm cryptoDomain.HashAlgorithm,
	encryption EncryptionService,
) (PasswordHasher, error) {
	if _, err := cryptoDomain.ParseHashAlgorithm(string(algorithm)); err != nil {
		return nil, err
	}

	argon2, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create argon2id hasher")
	}

	return &passwordHasher{
		algorithm:  algorithm,
		encryption: encryption,
		argon2:     argon2,
	}, nil
}

// Hash hashes password with the configured algorithm.
func (p *passwordHasher) Hash(password string) (string, error) {
	if p.algorithm == cryptoDomain.Argon2id {
		hashed, err := p.argon2.Hash([]byte(password))
		if err != nil {
			return "", apperrors.Wrap(cryptoDomain.ErrHashingFailed, err.Error())
		}
		return hashed, nil
	}
	return p.encryption.HashPassword(password)
}

// Verify reports whether password matches hashed regardless of which algorithm produced it.
func (p *passwordHasher) Verify(password, hashed string) bool {
	if cryptoDomain.IsPHCHash(hashed) {
		ok, err := p.argon2.Verify([]byte(password), hashed)
		if err != nil {
			return false
		}
		return ok
	}
	return p.encryption.VerifyPassword(password, hashed)
}

// NeedsRehash reports whether hashed was produced by a different algorithm than the configured one.
func (p *passwordHasher) NeedsRehash(hashed string) bool {
	if cryptoDomain.IsPHCHash(hashed) {
		return p.algorithm != cryptoDomain.Argon2id
	}
	return p.algorithm != cryptoDomain.PBKDF2
}

// Algorithm returns the configured algorithm.
func (p *passwordHasher) Algorithm() cryptoDomain.HashAlgorithm {
	return p.algorithm
}
