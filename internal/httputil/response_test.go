package httputil_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
	apperrors "github.com/memoriz2/greensupia-sub000/internal/errors"
	"github.com/memoriz2/greensupia-sub000/internal/httputil"
)

func performError(t *testing.T, err error) (*httptest.ResponseRecorder, httputil.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	httputil.HandleErrorGin(c, err, nil)

	var body httputil.ErrorResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "not found",
			err:            apperrors.Wrap(apperrors.ErrNotFound, "admin"),
			expectedStatus: http.StatusNotFound,
			expectedError:  "not_found",
		},
		{
			name:           "conflict",
			err:            apperrors.ErrConflict,
			expectedStatus: http.StatusConflict,
			expectedError:  "conflict",
		},
		{
			name:           "invalid input",
			err:            cryptoDomain.ErrInvalidPayloadFormat,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "invalid_input",
		},
		{
			name:           "unauthorized",
			err:            apperrors.ErrUnauthorized,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "unauthorized",
		},
		{
			name:           "forbidden",
			err:            apperrors.ErrForbidden,
			expectedStatus: http.StatusForbidden,
			expectedError:  "forbidden",
		},
		{
			name:           "too many requests",
			err:            apperrors.ErrTooManyRequests,
			expectedStatus: http.StatusTooManyRequests,
			expectedError:  "rate_limit_exceeded",
		},
		{
			name:           "passphrase unavailable",
			err:            cryptoDomain.ErrPassphraseUnavailable,
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "service_unavailable",
		},
		{
			name:           "internal error",
			err:            errors.New("database exploded"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := performError(t, tt.err)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedError, body.Error)
		})
	}
}

func TestHandleErrorGin_DecryptionFailedIsGeneric(t *testing.T) {
	err := fmt.Errorf("%w: cipher: message authentication failed", cryptoDomain.ErrDecryptionFailed)

	w, body := performError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "decryption_failed", body.Error)
	assert.Equal(t, "Decryption failed", body.Message)
	assert.NotContains(t, w.Body.String(), "authentication")
}

func TestHandleErrorGin_InternalErrorHidesDetails(t *testing.T) {
	w, body := performError(t, errors.New("pq: password authentication failed for user"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An internal error occurred", body.Message)
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestHandleErrorGin_NilError(t *testing.T) {
	w, _ := performError(t, nil)
	assert.Equal(t, 0, w.Body.Len())
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httputil.HandleBadRequestGin(c, errors.New("invalid JSON"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
	assert.Contains(t, w.Body.String(), "invalid JSON")
}

func TestHandleValidationErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httputil.HandleValidationErrorGin(c, errors.New("password: cannot be blank."), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestHandleErrorGin_LogLevelFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"client error logs warn", apperrors.ErrConflict, "WARN"},
		{"server error logs error", errors.New("connection reset"), "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/v1/crypto/encrypt", nil)
			httputil.HandleErrorGin(c, tt.err, logger)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "request failed", entry["msg"])
		})
	}
}
