package service

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
)

// deriveKey runs PBKDF2-HMAC-SHA512 over password and salt.
// The caller owns the returned slice and should zero it after use.
func deriveKey(password string, salt []byte, keyLen int) []byte {
	return pbkdf2.Key([]byte(password), salt, cryptoDomain.KDFIterations, keyLen, sha512.New)
}
