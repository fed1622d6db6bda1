package service

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
)

// failingReader is an io.Reader that always fails.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestEncryptionService_EncryptDecrypt(t *testing.T) {
	svc := NewEncryptionService()

	testCases := []struct {
		name      string
		plaintext string
		password  string
	}{
		{name: "Ascii", plaintext: "hello world", password: "secret"},
		{name: "Empty", plaintext: "", password: "secret"},
		{name: "Unicode", plaintext: "문의 내용입니다 🌱", password: "비밀번호"},
		{name: "Long", plaintext: strings.Repeat("greensupia ", 1000), password: "long-password"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := svc.Encrypt(tc.plaintext, tc.password)
			require.NoError(t, err)
			assert.Len(t, strings.Split(payload, ":"), 4)

			decrypted, err := svc.Decrypt(payload, tc.password)
			require.NoError(t, err)
			assert.Equal(t, tc.plaintext, decrypted)
		})
	}
}

func TestEncryptionService_Encrypt(t *testing.T) {
	svc := NewEncryptionService()

	t.Run("Success_PayloadLayout", func(t *testing.T) {
		payload, err := svc.Encrypt("abc", "pw")
		require.NoError(t, err)

		parts := strings.Split(payload, ":")
		require.Len(t, parts, 4)
		assert.Len(t, parts[0], 128)
		assert.Len(t, parts[1], 32)
		assert.Len(t, parts[2], 32)
		assert.Len(t, parts[3], 6)
	})

	t.Run("Success_FreshSaltAndIV", func(t *testing.T) {
		payload1, err := svc.Encrypt("same", "pw")
		require.NoError(t, err)
		payload2, err := svc.Encrypt("same", "pw")
		require.NoError(t, err)

		assert.NotEqual(t, payload1, payload2)
		parts1 := strings.Split(payload1, ":")
		parts2 := strings.Split(payload2, ":")
		assert.NotEqual(t, parts1[0], parts2[0])
		assert.NotEqual(t, parts1[1], parts2[1])
	})

	t.Run("Error_EmptyPassword", func(t *testing.T) {
		_, err := svc.Encrypt("abc", "")
		assert.ErrorIs(t, err, cryptoDomain.ErrEmptyPassword)
	})

	t.Run("Error_RandomFailure", func(t *testing.T) {
		broken := &encryptionService{random: failingReader{}}
		_, err := broken.Encrypt("abc", "pw")
		assert.ErrorIs(t, err, cryptoDomain.ErrEncryptionFailed)
	})
}

func TestEncryptionService_Decrypt(t *testing.T) {
	svc := NewEncryptionService()
	payload, err := svc.Encrypt("sensitive", "right")
	require.NoError(t, err)

	t.Run("Error_WrongPassword", func(t *testing.T) {
		_, err := svc.Decrypt(payload, "wrong")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("Error_EmptyPassword", func(t *testing.T) {
		_, err := svc.Decrypt(payload, "")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("Error_TamperedCiphertext", func(t *testing.T) {
		parts := strings.Split(payload, ":")
		last := []byte(parts[3])
		if last[0] == '0' {
			last[0] = '1'
		} else {
			last[0] = '0'
		}
		parts[3] = string(last)

		_, err := svc.Decrypt(strings.Join(parts, ":"), "right")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("Error_TamperedTag", func(t *testing.T) {
		parts := strings.Split(payload, ":")
		parts[2] = strings.Repeat("00", 16)

		_, err := svc.Decrypt(strings.Join(parts, ":"), "right")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("Error_MalformedPayload", func(t *testing.T) {
		for _, malformed := range []string{"", "a:b:c", "a:b:c:d:e", "zz:zz:zz:zz"} {
			_, err := svc.Decrypt(malformed, "right")
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidPayloadFormat, "payload %q", malformed)
		}
	})
}

func TestEncryptionService_HashVerifyPassword(t *testing.T) {
	svc := NewEncryptionService()

	t.Run("Success_RoundTrip", func(t *testing.T) {
		hashed, err := svc.HashPassword("admin-password")
		require.NoError(t, err)

		salt, hash, found := strings.Cut(hashed, ":")
		require.True(t, found)
		assert.Len(t, salt, 32)
		assert.Len(t, hash, 128)

		assert.True(t, svc.VerifyPassword("admin-password", hashed))
	})

	t.Run("Success_DifferentSalts", func(t *testing.T) {
		hashed1, err := svc.HashPassword("same")
		require.NoError(t, err)
		hashed2, err := svc.HashPassword("same")
		require.NoError(t, err)
		assert.NotEqual(t, hashed1, hashed2)
	})

	t.Run("Success_WrongPassword", func(t *testing.T) {
		hashed, err := svc.HashPassword("p1")
		require.NoError(t, err)
		assert.False(t, svc.VerifyPassword("p2", hashed))
	})

	t.Run("Success_MalformedHash", func(t *testing.T) {
		for _, hashed := range []string{"", "not-a-valid-hash", ":", "abcd:", ":abcd", "zz:zz", "ab:cd:ef"} {
			assert.NotPanics(t, func() {
				assert.False(t, svc.VerifyPassword("anything", hashed), "hash %q", hashed)
			})
		}
	})

	t.Run("Success_TruncatedHash", func(t *testing.T) {
		hashed, err := svc.HashPassword("p1")
		require.NoError(t, err)
		assert.False(t, svc.VerifyPassword("p1", hashed[:len(hashed)-2]))
	})

	t.Run("Error_RandomFailure", func(t *testing.T) {
		broken := &encryptionService{random: failingReader{}}
		_, err := broken.HashPassword("p1")
		assert.ErrorIs(t, err, cryptoDomain.ErrHashingFailed)
	})
}

func TestEncryptionService_GenerateRandomString(t *testing.T) {
	svc := NewEncryptionService()

	t.Run("Success_DefaultLength", func(t *testing.T) {
		for _, length := range []int{0, -5} {
			value, err := svc.GenerateRandomString(length)
			require.NoError(t, err)
			assert.Len(t, value, 64)
		}
	})

	t.Run("Success_CustomLength", func(t *testing.T) {
		value, err := svc.GenerateRandomString(8)
		require.NoError(t, err)
		assert.Len(t, value, 16)
		assert.Regexp(t, "^[0-9a-f]+$", value)
	})

	t.Run("Success_Unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 100 {
			value, err := svc.GenerateRandomString(16)
			require.NoError(t, err)
			_, dup := seen[value]
			require.False(t, dup)
			seen[value] = struct{}{}
		}
	})

	t.Run("Error_RandomFailure", func(t *testing.T) {
		broken := &encryptionService{random: failingReader{}}
		_, err := broken.GenerateRandomString(8)
		assert.ErrorIs(t, err, cryptoDomain.ErrRandomFailed)
	})
}

func TestEncryptionService_Concurrent(t *testing.T) {
	svc := NewEncryptionService()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			plaintext := strings.Repeat("x", i)
			payload, err := svc.Encrypt(plaintext, "pw")
			if err != nil {
				errs <- err
				return
			}
			decrypted, err := svc.Decrypt(payload, "pw")
			if err != nil {
				errs <- err
				return
			}
			if decrypted != plaintext {
				errs <- errors.New("mismatch")
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
