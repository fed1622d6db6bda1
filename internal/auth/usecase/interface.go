// Package usecase defines business logic for admin accounts and sessions.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
)

// AdminRepository defines persistence operations for admin accounts.
// Implementations must support transaction-aware operations via context propagation.
type AdminRepository interface {
	// Create stores a new admin. Returns ErrAdminAlreadyExists on a duplicate username.
	Create(ctx context.Context, admin *authDomain.Admin) error

	// GetByID retrieves an admin by ID. Returns ErrAdminNotFound if not found.
	GetByID(ctx context.Context, id uuid.UUID) (*authDomain.Admin, error)

	// GetByUsername retrieves an admin by normalized username. Returns ErrAdminNotFound if not found.
	GetByUsername(ctx context.Context, username string) (*authDomain.Admin, error)

	// UpdatePasswordHash replaces the stored credential.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string, updatedAt time.Time) error

	// UpdateLastLogin records the time of a successful login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// AdminUseCase defines admin account management and session handling.
type AdminUseCase interface {
	// Create registers a new active admin with a freshly hashed password.
	// Returns ErrAdminAlreadyExists if the username is taken.
	Create(ctx context.Context, username, password string) (*authDomain.Admin, error)

	// Login verifies credentials and issues a session.
	//
	// Unknown usernames and wrong passwords both return ErrInvalidCredentials so
	// callers cannot enumerate accounts. Stored hashes in a legacy format are
	// upgraded to the configured algorithm on success.
	Login(ctx context.Context, username, password string) (*authDomain.Session, error)

	// Authenticate resolves a session token to an active admin.
	// Returns ErrInvalidSession for bad tokens and ErrAdminInactive for disabled accounts.
	Authenticate(ctx context.Context, token string) (*authDomain.Admin, error)
}
