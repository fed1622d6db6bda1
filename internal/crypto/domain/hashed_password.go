package domain

import (
	"encoding/hex"
	"strings"
)

// HashedPassword is a salted PBKDF2 password hash stored as "salt:hash" hex.
type HashedPassword struct {
	Salt []byte
	Hash []byte
}

// ParseHashedPassword decodes a "salt:hash" string.
// Both segments must be present, non-empty and valid hex.
func ParseHashedPassword(content string) (HashedPassword, error) {
	salt, hash, found := strings.Cut(content, fieldSeparator)
	if !found || salt == "" || hash == "" || strings.Contains(hash, fieldSeparator) {
		return HashedPassword{}, ErrInvalidHashFormat
	}

	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		return HashedPassword{}, ErrInvalidHashFormat
	}

	hashBytes, err := hex.DecodeString(hash)
	if err != nil {
		return HashedPassword{}, ErrInvalidHashFormat
	}

	return HashedPassword{Salt: saltBytes, Hash: hashBytes}, nil
}

// String serializes the hash as "salt:hash" hex.
func (h HashedPassword) String() string {
	return hex.EncodeToString(h.Salt) + fieldSeparator + hex.EncodeToString(h.Hash)
}

// IsPHCHash reports whether hashed is a PHC-formatted argon2id hash.
func IsPHCHash(hashed string) bool {
	return strings.HasPrefix(hashed, "$"+string(Argon2id)+"$")
}
