package commands

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/jellydator/validation"

	authUseCase "github.com/memoriz2/greensupia-sub000/internal/auth/usecase"
	customValidation "github.com/memoriz2/greensupia-sub000/internal/validation"
)

// RunCreateAdmin creates an active admin account. The password is read from io when
// not passed as a flag and must satisfy the admin password policy.
//
// Requirements: Database must be migrated and accessible.
func RunCreateAdmin(
	ctx context.Context,
	adminUseCase authUseCase.AdminUseCase,
	logger *slog.Logger,
	io IOTuple,
	username string,
	password string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if err := validation.Validate(username,
		validation.Required,
		customValidation.NotBlank,
		customValidation.Username,
	); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}

	password, err := readValue(io, password, "Password")
	if err != nil {
		return err
	}
	if err := validation.Validate(password, customValidation.AdminPasswordStrength); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	admin, err := adminUseCase.Create(ctx, username, password)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	logger.Info("admin created successfully",
		slog.String("admin_id", admin.ID.String()),
		slog.String("username", admin.Username),
	)

	return writeResult(io.Writer, format, []string{"id", "username"}, map[string]any{
		"id":       admin.ID.String(),
		"username": admin.Username,
	})
}
