package commands

import (
	"errors"
	"fmt"

	cryptoService "github.com/memoriz2/greensupia-sub000/internal/crypto/service"
)

// ErrPasswordMismatch is returned by RunVerifyPassword so the process exits non-zero.
var ErrPasswordMismatch = errors.New("password does not match hash")

// RunHashPassword prints a "salt:hash" PBKDF2 hash of password.
// The password is read from io when not passed as a flag.
func RunHashPassword(
	encryption cryptoService.EncryptionService,
	io IOTuple,
	password string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	password, err := readValue(io, password, "Password")
	if err != nil {
		return err
	}

	hashed, err := encryption.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return writeResult(io.Writer, format, []string{"hash"}, map[string]any{"hash": hashed})
}

// RunVerifyPassword checks password against hashed and returns ErrPasswordMismatch on mismatch.
func RunVerifyPassword(
	encryption cryptoService.EncryptionService,
	io IOTuple,
	password string,
	hashed string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if hashed == "" {
		return fmt.Errorf("--hash is required")
	}

	password, err := readValue(io, password, "Password")
	if err != nil {
		return err
	}

	valid := encryption.VerifyPassword(password, hashed)
	if err := writeResult(io.Writer, format, []string{"valid"}, map[string]any{"valid": valid}); err != nil {
		return err
	}
	if !valid {
		return ErrPasswordMismatch
	}
	return nil
}

// RunEncrypt prints the "salt:iv:tag:ciphertext" payload of plaintext under password.
// Missing values are read from io, plaintext first.
func RunEncrypt(
	encryption cryptoService.EncryptionService,
	io IOTuple,
	plaintext string,
	password string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	io = buffered(io)
	plaintext, err := readValue(io, plaintext, "Plaintext")
	if err != nil {
		return err
	}
	password, err = readValue(io, password, "Password")
	if err != nil {
		return err
	}

	payload, err := encryption.Encrypt(plaintext, password)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	return writeResult(io.Writer, format, []string{"payload"}, map[string]any{"payload": payload})
}

// RunDecrypt prints the plaintext of payload. Every failure is reported as a
// generic decryption error.
func RunDecrypt(
	encryption cryptoService.EncryptionService,
	io IOTuple,
	payload string,
	password string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	io = buffered(io)
	payload, err := readValue(io, payload, "Payload")
	if err != nil {
		return err
	}
	password, err = readValue(io, password, "Password")
	if err != nil {
		return err
	}

	plaintext, err := encryption.Decrypt(payload, password)
	if err != nil {
		return errors.New("decryption failed")
	}

	return writeResult(io.Writer, format, []string{"plaintext"}, map[string]any{"plaintext": plaintext})
}

// RunGenerateToken prints length random bytes, hex-encoded.
func RunGenerateToken(
	encryption cryptoService.EncryptionService,
	io IOTuple,
	length int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if length < 0 || length > 1024 {
		return fmt.Errorf("invalid length: %d (must be between 0 and 1024)", length)
	}

	token, err := encryption.GenerateRandomString(length)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	return writeResult(io.Writer, format, []string{"token"}, map[string]any{"token": token})
}
