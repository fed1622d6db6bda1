// Package domain defines the admin account and session models used to protect
// the administrative API.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Admin is an operator account allowed to call the protected API.
// PasswordHash holds either the salt:hash PBKDF2 format or an argon2id PHC string.
type Admin struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAdmin builds an active admin with a fresh UUIDv7 identifier.
func NewAdmin(username, passwordHash string, now time.Time) *Admin {
	return &Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     NormalizeUsername(username),
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NormalizeUsername trims surrounding whitespace and lowercases the username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
