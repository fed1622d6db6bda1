// Package validation adds the jellydator/validation rules shared by the HTTP DTOs and the CLI.
package validation

import (
	"fmt"
	"net"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
	apperrors "github.com/memoriz2/greensupia-sub000/internal/errors"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._\-]+$`)

// WrapValidationError marks err as ErrInvalidInput so handlers answer 422.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordStrength is a validation.Rule for credential passwords. Length is counted in
// runes; MaxLength of zero means unbounded.
type PasswordStrength struct {
	MinLength      int
	MaxLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireNumber  bool
	RequireSpecial bool
}

// AdminPasswordStrength is applied to passwords of new admin accounts. The upper bound
// keeps a single login from monopolising a KDF slot.
var AdminPasswordStrength = PasswordStrength{
	MinLength:     10,
	MaxLength:     1024,
	RequireUpper:  true,
	RequireLower:  true,
	RequireNumber: true,
}

type characterClass struct {
	required bool
	code     string
	message  string
	matches  func(rune) bool
}

func (p PasswordStrength) classes() []characterClass {
	return []characterClass{
		{p.RequireUpper, "validation_password_uppercase", "an uppercase letter", unicode.IsUpper},
		{p.RequireLower, "validation_password_lowercase", "a lowercase letter", unicode.IsLower},
		{p.RequireNumber, "validation_password_number", "a number", unicode.IsNumber},
		{p.RequireSpecial, "validation_password_special", "a special character", func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		}},
	}
}

// Validate implements validation.Rule.
func (p PasswordStrength) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}

	length := len([]rune(s))
	if length < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			fmt.Sprintf("password must be at least %d characters", p.MinLength),
		)
	}
	if p.MaxLength > 0 && length > p.MaxLength {
		return validation.NewError(
			"validation_password_max_length",
			fmt.Sprintf("password must be at most %d characters", p.MaxLength),
		)
	}

	for _, class := range p.classes() {
		if class.required && !strings.ContainsFunc(s, class.matches) {
			return validation.NewError(class.code, "password must contain at least "+class.message)
		}
	}
	return nil
}

// Username accepts letters, digits, dots, underscores and hyphens.
var Username = validation.NewStringRuleWithError(
	usernamePattern.MatchString,
	validation.NewError(
		"validation_username_format",
		"must contain only letters, digits, dots, underscores or hyphens",
	),
)

// NotBlank rejects strings that are empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// IPAddress accepts IPv4 and IPv6 literals, the keys of the rate limiter table.
var IPAddress = validation.NewStringRuleWithError(
	func(s string) bool {
		return net.ParseIP(s) != nil
	},
	validation.NewError("validation_ip_address", "must be a valid IP address"),
)

// EncryptedPayload accepts "salt:iv:tag:ciphertext" hex payloads with the expected field sizes.
var EncryptedPayload = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := cryptoDomain.ParseEncryptedPayload(s)
		return err == nil
	},
	validation.NewError("validation_encrypted_payload", "must be a salt:iv:tag:ciphertext hex payload"),
)
