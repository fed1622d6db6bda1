package commands

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
	authMocks "github.com/memoriz2/greensupia-sub000/internal/auth/usecase/mocks"
)

func TestRunCreateAdmin(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	t.Run("Success_PasswordFromStdin", func(t *testing.T) {
		adminID := uuid.New()
		useCase := &authMocks.MockAdminUseCase{}
		useCase.On("Create", mock.Anything, "operator", "Sup3rSecret1").
			Return(&authDomain.Admin{ID: adminID, Username: "operator", IsActive: true}, nil).Once()
		stdio, out := newTestIO("Sup3rSecret1\n")

		err := RunCreateAdmin(ctx, useCase, logger, stdio, "operator", "", "json")

		require.NoError(t, err)
		assert.Contains(t, out.String(), adminID.String())
		useCase.AssertExpectations(t)
	})

	t.Run("Error_WeakPassword", func(t *testing.T) {
		useCase := &authMocks.MockAdminUseCase{}
		stdio, _ := newTestIO("")

		err := RunCreateAdmin(ctx, useCase, logger, stdio, "operator", "short", "text")

		assert.ErrorContains(t, err, "invalid password")
		useCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidUsername", func(t *testing.T) {
		stdio, _ := newTestIO("")

		err := RunCreateAdmin(ctx, &authMocks.MockAdminUseCase{}, logger, stdio, "bad name!", "Sup3rSecret1", "text")

		assert.ErrorContains(t, err, "invalid username")
	})

	t.Run("Error_Duplicate", func(t *testing.T) {
		useCase := &authMocks.MockAdminUseCase{}
		useCase.On("Create", mock.Anything, "operator", "Sup3rSecret1").
			Return(nil, authDomain.ErrAdminAlreadyExists).Once()
		stdio, _ := newTestIO("")

		err := RunCreateAdmin(ctx, useCase, logger, stdio, "operator", "Sup3rSecret1", "text")

		assert.ErrorIs(t, err, authDomain.ErrAdminAlreadyExists)
	})
}
