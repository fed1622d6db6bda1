package domain

import (
	"github.com/memoriz2/greensupia-sub000/internal/errors"
)

// Admin and session errors.
var (
	// ErrAdminNotFound indicates an admin with the specified ID or username was not found.
	ErrAdminNotFound = errors.Wrap(errors.ErrNotFound, "admin not found")

	// ErrAdminAlreadyExists indicates the username is already taken.
	ErrAdminAlreadyExists = errors.Wrap(errors.ErrConflict, "admin already exists")

	// ErrInvalidCredentials is returned for both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrAdminInactive indicates the admin account has been disabled.
	ErrAdminInactive = errors.Wrap(errors.ErrForbidden, "admin is inactive")

	// ErrInvalidSession indicates the bearer token is malformed, expired or forged.
	ErrInvalidSession = errors.Wrap(errors.ErrUnauthorized, "invalid session")
)
