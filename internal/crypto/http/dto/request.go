// Package dto provides data transfer objects for the crypto endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/memoriz2/greensupia-sub000/internal/validation"
)

const (
	// MaxPlaintextLength bounds the plaintext accepted by a single request.
	MaxPlaintextLength = 1 << 20

	// MaxPasswordLength bounds passwords so a request cannot stall the KDF on huge input.
	MaxPasswordLength = 1024

	// MaxRandomLength is the largest random byte count a caller may request.
	MaxRandomLength = 1024
)

// EncryptRequest contains plaintext and the password to derive the key from.
// Plaintext may be empty.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Password  string `json:"password"`
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext, validation.Length(0, MaxPlaintextLength)),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, MaxPasswordLength),
		),
	)
}

// DecryptRequest contains a "salt:iv:tag:ciphertext" payload and its password.
type DecryptRequest struct {
	Payload  string `json:"payload"`
	Password string `json:"password"`
}

// Validate checks if the decrypt request is valid.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Payload,
			validation.Required,
			customValidation.EncryptedPayload,
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, MaxPasswordLength),
		),
	)
}

// HashRequest contains the password to hash.
type HashRequest struct {
	Password string `json:"password"`
}

// Validate checks if the hash request is valid.
func (r *HashRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, MaxPasswordLength),
		),
	)
}

// VerifyRequest contains a password and the stored hash to check it against.
type VerifyRequest struct {
	Password string `json:"password"`
	Hash     string `json:"hash"`
}

// Validate checks if the verify request is valid. The hash format is not
// checked here; malformed hashes simply do not verify.
func (r *VerifyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, MaxPasswordLength),
		),
		validation.Field(&r.Hash, validation.Required),
	)
}

// RandomRequest is bound from the query string. Zero means the default length.
type RandomRequest struct {
	Length int `form:"length"`
}

// Validate checks if the random request is valid.
func (r *RandomRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Length, validation.Min(0), validation.Max(MaxRandomLength)),
	)
}

// SealInquiryRequest contains inquiry content to encrypt with the application passphrase.
type SealInquiryRequest struct {
	Plaintext string `json:"plaintext"`
}

// Validate checks if the seal request is valid.
func (r *SealInquiryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			validation.Required,
			validation.Length(1, MaxPlaintextLength),
		),
	)
}

// OpenInquiryRequest contains a payload previously returned by the seal endpoint.
type OpenInquiryRequest struct {
	Payload string `json:"payload"`
}

// Validate checks if the open request is valid.
func (r *OpenInquiryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Payload,
			validation.Required,
			customValidation.EncryptedPayload,
		),
	)
}
