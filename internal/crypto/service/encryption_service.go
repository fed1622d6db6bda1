package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
)

// encryptionService implements EncryptionService with PBKDF2 key derivation and AES-256-GCM.
type encryptionService struct {
	random io.Reader
}

// NewEncryptionService creates an EncryptionService backed by crypto/rand.
func NewEncryptionService() EncryptionService {
	return &encryptionService{random: rand.Reader}
}

// Encrypt derives a fresh key from password and a random 64-byte salt, then seals
// plaintext with AES-256-GCM bound to cryptoDomain.AssociatedData.
//
// Two calls with identical inputs produce different payloads.
func (e *encryptionService) Encrypt(plaintext, password string) (string, error) {
	if password == "" {
		return "", cryptoDomain.ErrEmptyPassword
	}

	salt := make([]byte, cryptoDomain.SaltSize)
	if _, err := io.ReadFull(e.random, salt); err != nil {
		return "", fmt.Errorf("%w: failed to generate salt: %v", cryptoDomain.ErrEncryptionFailed, err)
	}

	key := deriveKey(password, salt, cryptoDomain.KeySize)
	defer cryptoDomain.Zero(key)

	aead, err := newAESGCM(key, e.random)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncryptionFailed, err)
	}

	ciphertext, iv, tag, err := aead.Encrypt([]byte(plaintext), []byte(cryptoDomain.AssociatedData))
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncryptionFailed, err)
	}

	payload := cryptoDomain.EncryptedPayload{
		Salt:       salt,
		IV:         iv,
		Tag:        tag,
		Ciphertext: ciphertext,
	}
	return payload.String(), nil
}

// Decrypt parses payload, re-derives the key and opens the ciphertext.
//
// Every failure past parsing is reported as cryptoDomain.ErrDecryptionFailed so that a
// wrong password and a tampered payload are indistinguishable.
func (e *encryptionService) Decrypt(payload, password string) (string, error) {
	parsed, err := cryptoDomain.ParseEncryptedPayload(payload)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	key := deriveKey(password, parsed.Salt, cryptoDomain.KeySize)
	defer cryptoDomain.Zero(key)

	aead, err := newAESGCM(key, e.random)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	plaintext, err := aead.Decrypt(
		parsed.Ciphertext,
		parsed.IV,
		parsed.Tag,
		[]byte(cryptoDomain.AssociatedData),
	)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// HashPassword returns a "salt:hash" string with a random 16-byte salt and a 64-byte
// PBKDF2-HMAC-SHA512 hash.
func (e *encryptionService) HashPassword(password string) (string, error) {
	salt := make([]byte, cryptoDomain.PasswordSaltSize)
	if _, err := io.ReadFull(e.random, salt); err != nil {
		return "", fmt.Errorf("%w: failed to generate salt: %v", cryptoDomain.ErrHashingFailed, err)
	}

	hashed := cryptoDomain.HashedPassword{
		Salt: salt,
		Hash: deriveKey(password, salt, cryptoDomain.PasswordHashSize),
	}
	return hashed.String(), nil
}

// VerifyPassword recomputes the hash with the stored salt and compares in constant time.
// Malformed input yields false.
func (e *encryptionService) VerifyPassword(password, hashed string) bool {
	parsed, err := cryptoDomain.ParseHashedPassword(hashed)
	if err != nil {
		return false
	}
	if len(parsed.Hash) != cryptoDomain.PasswordHashSize {
		return false
	}

	candidate := deriveKey(password, parsed.Salt, cryptoDomain.PasswordHashSize)
	defer cryptoDomain.Zero(candidate)

	return subtle.ConstantTimeCompare(candidate, parsed.Hash) == 1
}

// GenerateRandomString draws length random bytes and returns them hex-encoded,
// so the result is 2*length characters long.
func (e *encryptionService) GenerateRandomString(length int) (string, error) {
	if length <= 0 {
		length = cryptoDomain.DefaultRandomStringLength
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(e.random, buf); err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrRandomFailed, err)
	}
	return hex.EncodeToString(buf), nil
}
