// Package service provides the cryptographic primitives of the portal: password based
// AES-256-GCM encryption, salted password hashing and KMS sealing of configuration secrets.
package service

import (
	"context"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data
// with the authentication tag kept apart from the ciphertext.
type AEAD interface {
	// Encrypt encrypts plaintext with AAD and returns ciphertext, the random IV and the tag.
	Encrypt(plaintext, aad []byte) (ciphertext, iv, tag []byte, err error)

	// Decrypt verifies the tag and decrypts ciphertext using the provided IV and AAD.
	Decrypt(ciphertext, iv, tag, aad []byte) ([]byte, error)
}

// EncryptionService protects sensitive text fields and credentials.
//
// Encrypt and Decrypt return errors on malformed input or on any cryptographic failure;
// callers must map every Decrypt error to a generic "decryption failed" response.
// VerifyPassword never fails loudly: every failure mode is reported as false.
type EncryptionService interface {
	// Encrypt seals plaintext under a key derived from password and returns the
	// "salt:iv:tag:ciphertext" payload.
	Encrypt(plaintext, password string) (string, error)

	// Decrypt opens a payload produced by Encrypt.
	Decrypt(payload, password string) (string, error)

	// HashPassword returns a "salt:hash" PBKDF2 hash of password.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches hashed, in constant time.
	VerifyPassword(password, hashed string) bool

	// GenerateRandomString returns length random bytes, hex-encoded.
	// A non-positive length selects DefaultRandomStringLength.
	GenerateRandomString(length int) (string, error)
}

// PasswordHasher hashes admin credentials with the configured algorithm and verifies
// hashes of any supported algorithm.
type PasswordHasher interface {
	// Hash hashes password with the configured algorithm.
	Hash(password string) (string, error)

	// Verify reports whether password matches hashed. Never returns an error.
	Verify(password, hashed string) bool

	// NeedsRehash reports whether hashed was produced by a different algorithm
	// than the configured one.
	NeedsRehash(hashed string) bool

	// Algorithm returns the configured algorithm.
	Algorithm() cryptoDomain.HashAlgorithm
}

// KMSService opens KMS keepers and unseals configuration secrets.
type KMSService interface {
	// OpenKeeper opens a keeper for keyURI.
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)

	// Seal encrypts plaintext with the keeper at keyURI and returns base64 ciphertext.
	Seal(ctx context.Context, keyURI, plaintext string) (string, error)

	// Unseal reverses Seal.
	Unseal(ctx context.Context, keyURI, sealed string) (string, error)
}
