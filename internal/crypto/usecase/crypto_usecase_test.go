package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
	cryptoService "github.com/memoriz2/greensupia-sub000/internal/crypto/service"
	serviceMocks "github.com/memoriz2/greensupia-sub000/internal/crypto/service/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCryptoUseCase_Encrypt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		encryption := &serviceMocks.MockEncryptionService{}
		encryption.On("Encrypt", "plain", "pw").Return("payload", nil).Once()

		uc := NewCryptoUseCase(encryption, 2, "", newTestLogger())
		payload, err := uc.Encrypt(ctx, "plain", "pw")

		require.NoError(t, err)
		assert.Equal(t, "payload", payload)
		encryption.AssertExpectations(t)
	})

	t.Run("Error_EmptyPassword", func(t *testing.T) {
		encryption := &serviceMocks.MockEncryptionService{}
		encryption.On("Encrypt", "plain", "").Return("", cryptoDomain.ErrEmptyPassword).Once()

		uc := NewCryptoUseCase(encryption, 2, "", newTestLogger())
		_, err := uc.Encrypt(ctx, "plain", "")

		assert.ErrorIs(t, err, cryptoDomain.ErrEmptyPassword)
		encryption.AssertExpectations(t)
	})

	t.Run("Error_ContextCanceled", func(t *testing.T) {
		encryption := &serviceMocks.MockEncryptionService{}
		uc := NewCryptoUseCase(encryption, 2, "", newTestLogger())

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := uc.Encrypt(canceled, "plain", "pw")
		assert.ErrorIs(t, err, context.Canceled)
		encryption.AssertNotCalled(t, "Encrypt", mock.Anything, mock.Anything)
	})
}

func TestCryptoUseCase_Decrypt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		encryption := &serviceMocks.MockEncryptionService{}
		encryption.On("Decrypt", "payload", "pw").Return("plain", nil).Once()

		uc := NewCryptoUseCase(encryption, 1, "", newTestLogger())
		plaintext, err := uc.Decrypt(ctx, "payload", "pw")

		require.NoError(t, err)
		assert.Equal(t, "plain", plaintext)
	})

	t.Run("Error_DecryptionFailed", func(t *testing.T) {
		encryption := &serviceMocks.MockEncryptionService{}
		encryption.On("Decrypt", "payload", "wrong").Return("", cryptoDomain.ErrDecryptionFailed).Once()

		uc := NewCryptoUseCase(encryption, 1, "", newTestLogger())
		_, err := uc.Decrypt(ctx, "payload", "wrong")

		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}

func TestCryptoUseCase_HashAndVerify(t *testing.T) {
	ctx := context.Background()
	uc := NewCryptoUseCase(cryptoService.NewEncryptionService(), 2, "", newTestLogger())

	hashed, err := uc.HashPassword(ctx, "admin")
	require.NoError(t, err)

	valid, err := uc.VerifyPassword(ctx, "admin", hashed)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = uc.VerifyPassword(ctx, "other", hashed)
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = uc.VerifyPassword(ctx, "admin", "not-a-valid-hash")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestCryptoUseCase_GenerateRandomString(t *testing.T) {
	uc := NewCryptoUseCase(cryptoService.NewEncryptionService(), 1, "", newTestLogger())

	t.Run("Success", func(t *testing.T) {
		value, err := uc.GenerateRandomString(context.Background(), 4)
		require.NoError(t, err)
		assert.Len(t, value, 8)
	})

	t.Run("Error_ContextCanceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := uc.GenerateRandomString(ctx, 4)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCryptoUseCase_Inquiry(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RoundTrip", func(t *testing.T) {
		uc := NewCryptoUseCase(cryptoService.NewEncryptionService(), 1, "app-passphrase", newTestLogger())

		payload, err := uc.SealInquiry(ctx, "문의 내용")
		require.NoError(t, err)

		plaintext, err := uc.OpenInquiry(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, "문의 내용", plaintext)
	})

	t.Run("Error_PassphraseUnavailable", func(t *testing.T) {
		uc := NewCryptoUseCase(cryptoService.NewEncryptionService(), 1, "", newTestLogger())

		_, err := uc.SealInquiry(ctx, "content")
		assert.ErrorIs(t, err, cryptoDomain.ErrPassphraseUnavailable)

		_, err = uc.OpenInquiry(ctx, "payload")
		assert.ErrorIs(t, err, cryptoDomain.ErrPassphraseUnavailable)
	})
}

func TestCryptoUseCase_ConcurrencyLimit(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	encryption := &serviceMocks.MockEncryptionService{}
	encryption.On("HashPassword", "slow").Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return("salt:hash", nil).Once()

	uc := NewCryptoUseCase(encryption, 1, "", newTestLogger())

	done := make(chan error, 1)
	go func() {
		_, err := uc.HashPassword(context.Background(), "slow")
		done <- err
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := uc.HashPassword(ctx, "queued")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, <-done)
	encryption.AssertExpectations(t)
}

func TestNewCryptoUseCase_NonPositiveLimit(t *testing.T) {
	encryption := &serviceMocks.MockEncryptionService{}
	encryption.On("VerifyPassword", "pw", "hash").Return(true).Once()

	uc := NewCryptoUseCase(encryption, 0, "", newTestLogger())
	valid, err := uc.VerifyPassword(context.Background(), "pw", "hash")

	require.NoError(t, err)
	assert.True(t, valid)
}
