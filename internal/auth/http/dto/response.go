package dto

import (
	"time"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
)

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MapSessionToLoginResponse converts a session into the login response.
func MapSessionToLoginResponse(session *authDomain.Session) LoginResponse {
	return LoginResponse{
		Token:     session.Token,
		TokenType: "Bearer",
		ExpiresAt: session.ExpiresAt,
	}
}

// AdminResponse describes an admin without its credential.
type AdminResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// MapAdminToResponse converts a domain admin to its API representation.
func MapAdminToResponse(admin *authDomain.Admin) AdminResponse {
	return AdminResponse{
		ID:          admin.ID.String(),
		Username:    admin.Username,
		IsActive:    admin.IsActive,
		LastLoginAt: admin.LastLoginAt,
		CreatedAt:   admin.CreatedAt,
	}
}
