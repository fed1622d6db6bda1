// Package http provides HTTP handlers and middleware for admin authentication.
package http

import (
	"context"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
)

// adminKey is a context key type for storing the authenticated admin.
type adminKey struct{}

// WithAdmin stores an authenticated admin in the context.
func WithAdmin(ctx context.Context, admin *authDomain.Admin) context.Context {
	return context.WithValue(ctx, adminKey{}, admin)
}

// GetAdmin retrieves the authenticated admin from the context.
// Returns (nil, false) if the authentication middleware has not run.
func GetAdmin(ctx context.Context) (*authDomain.Admin, bool) {
	admin, ok := ctx.Value(adminKey{}).(*authDomain.Admin)
	return admin, ok && admin != nil
}
