// Package service provides technical services for admin authentication.
package service

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
)

// SessionService issues and validates signed admin session tokens.
type SessionService interface {
	// Issue signs a new session token for the admin. The returned session carries
	// the token and its expiry.
	Issue(adminID uuid.UUID) (*authDomain.Session, error)

	// Parse validates the token signature, issuer and expiry and returns the admin ID.
	// Any failure is reported as ErrInvalidSession.
	Parse(token string) (uuid.UUID, error)

	// Expiration returns the lifetime applied to issued sessions.
	Expiration() time.Duration
}
