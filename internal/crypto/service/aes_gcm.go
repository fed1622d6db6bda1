package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// Unlike the stdlib default, this cipher uses a 16-byte nonce and returns the
// authentication tag separately from the ciphertext, which is the layout of the
// "salt:iv:tag:ciphertext" payload format.
//
// Security properties:
//   - 256-bit key size
//   - 16-byte nonce (randomly generated per encryption)
//   - 16-byte authentication tag (returned separately)
//   - Authenticated encryption prevents tampering and forgery
//
// Thread safety:
//
//	The cipher instance is stateless and safe for concurrent use from multiple
//	goroutines. Each encryption operation generates a unique nonce independently.
//
// Example usage:
//
//	c, err := NewAESGCM(key)
//	if err != nil {
//	    return err
//	}
//	ciphertext, iv, tag, err := c.Encrypt(plaintext, aad)
//	plaintext, err := c.Decrypt(ciphertext, iv, tag, aad)
type AESGCMCipher struct {
	aead   cipher.AEAD
	random io.Reader
}

// NewAESGCM creates a new AES-256-GCM cipher instance.
//
// The key must be exactly 32 bytes (256 bits) for AES-256. Using a shorter or longer
// key will result in an error.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	return newAESGCM(key, rand.Reader)
}

func newAESGCM(key []byte, random io.Reader) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, errors.New("key must be exactly 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, cryptoDomain.IVSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead, random: random}, nil
}

// Encrypt encrypts plaintext using AES-256-GCM with additional authenticated data.
//
// A unique 16-byte nonce is drawn from the random source for each call. The returned
// ciphertext has the same length as plaintext; the 16-byte tag is returned on its own.
//
// Parameters:
//   - plaintext: The data to encrypt (can be empty)
//   - aad: Additional data to authenticate but not encrypt (can be nil)
//
// Returns:
//   - ciphertext: The encrypted data without the tag
//   - iv: The randomly generated nonce used for this encryption
//   - tag: The authentication tag
//   - err: Any error encountered during nonce generation
func (a *AESGCMCipher) Encrypt(plaintext, aad []byte) (ciphertext, iv, tag []byte, err error) {
	iv = make([]byte, a.aead.NonceSize())
	if _, err := io.ReadFull(a.random, iv); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := a.aead.Seal(nil, iv, plaintext, aad)
	split := len(sealed) - a.aead.Overhead()

	return sealed[:split], iv, sealed[split:], nil
}

// Decrypt verifies the tag and decrypts ciphertext with the provided nonce and AAD.
//
// The same AAD used during encryption must be provided. If the tag does not verify,
// no plaintext is returned.
func (a *AESGCMCipher) Decrypt(ciphertext, iv, tag, aad []byte) ([]byte, error) {
	if len(iv) != a.aead.NonceSize() {
		return nil, errors.New("invalid nonce size")
	}
	if len(tag) != a.aead.Overhead() {
		return nil, errors.New("invalid tag size")
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := a.aead.Open(nil, iv, sealed, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
