// Package errors holds the sentinel errors that domain packages wrap so handlers can map
// a failure to a status code without knowing which component produced it.
package errors

import (
	"errors"
	"fmt"
)

// Sentinels shared by the crypto, auth and rate limit domains.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrTooManyRequests = errors.New("too many requests")
	// ErrUnavailable marks operations the running configuration cannot serve,
	// such as inquiry sealing without an application passphrase.
	ErrUnavailable = errors.New("unavailable")
)

// New returns a plain error. Domain packages use it for failures that map to 500.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message and keeps it in the chain. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether target is anywhere in err's chain.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
