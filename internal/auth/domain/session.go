package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is an issued bearer token bound to an admin.
type Session struct {
	Token     string
	AdminID   uuid.UUID
	ExpiresAt time.Time
}
