// Package dto provides data transfer objects for the admin authentication endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/memoriz2/greensupia-sub000/internal/validation"
)

// LoginRequest contains admin credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid. Password strength is not
// checked here so that legacy credentials can still log in.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 64),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 1024),
		),
	)
}
