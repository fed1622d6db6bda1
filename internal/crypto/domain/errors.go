package domain

import (
	"github.com/memoriz2/greensupia-sub000/internal/errors"
)

// Cryptographic operation errors.
//
// Messages are deliberately generic: callers surface them to end users, and a precise
// reason (bad tag vs. bad key) would turn decryption into an oracle.
var (
	// ErrEmptyPassword indicates an empty password was supplied for encryption.
	ErrEmptyPassword = errors.Wrap(errors.ErrInvalidInput, "password must not be empty")

	// ErrInvalidPayloadFormat indicates the payload is not four hex fields of the expected sizes.
	ErrInvalidPayloadFormat = errors.Wrap(errors.ErrInvalidInput, "invalid encrypted payload format")

	// ErrInvalidHashFormat indicates a hashed password is not "salt:hash" hex.
	ErrInvalidHashFormat = errors.Wrap(errors.ErrInvalidInput, "invalid password hash format")

	// ErrEncryptionFailed indicates a cryptographic step failed while encrypting.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed indicates a wrong password or tampered payload.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrHashingFailed indicates the password hasher failed.
	ErrHashingFailed = errors.New("password hashing failed")

	// ErrRandomFailed indicates the system random source failed.
	ErrRandomFailed = errors.New("random generation failed")

	// ErrUnsupportedHashAlgorithm indicates an unknown password hash algorithm.
	ErrUnsupportedHashAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported hash algorithm")

	// ErrPassphraseUnavailable indicates no application passphrase was configured.
	ErrPassphraseUnavailable = errors.Wrap(errors.ErrUnavailable, "application passphrase is not configured")
)
