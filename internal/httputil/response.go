// Package httputil writes the JSON error envelope shared by every API handler.
package httputil

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/memoriz2/greensupia-sub000/internal/crypto/domain"
	apperrors "github.com/memoriz2/greensupia-sub000/internal/errors"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// errorMapping ties a sentinel to its response. An empty message echoes err.Error().
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// errorMappings is checked in order; the first sentinel found in the chain wins.
// ErrDecryptionFailed comes first because it also wraps ErrInvalidInput.
var errorMappings = []errorMapping{
	// a precise reason would turn decryption into an oracle
	{cryptoDomain.ErrDecryptionFailed, http.StatusUnprocessableEntity, "decryption_failed", "Decryption failed"},
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested resource was not found"},
	{apperrors.ErrConflict, http.StatusConflict, "conflict", "A conflict occurred with existing data"},
	{apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", ""},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "Authentication is required"},
	{
		apperrors.ErrTooManyRequests, http.StatusTooManyRequests,
		"rate_limit_exceeded", "Too many requests. Please retry after the specified delay.",
	},
	{apperrors.ErrForbidden, http.StatusForbidden, "forbidden", "You don't have permission to access this resource"},
	{
		apperrors.ErrUnavailable, http.StatusServiceUnavailable,
		"service_unavailable", "The service is not configured for this operation",
	},
}

var internalError = errorMapping{
	status:  http.StatusInternalServerError,
	code:    "internal_error",
	message: "An internal error occurred",
}

func mapError(err error) (int, ErrorResponse) {
	mapping := internalError
	for _, m := range errorMappings {
		if apperrors.Is(err, m.target) {
			mapping = m
			break
		}
	}

	message := mapping.message
	if message == "" {
		message = err.Error()
	}
	return mapping.status, ErrorResponse{Error: mapping.code, Message: message}
}

// HandleErrorGin maps err to a status code and writes the JSON envelope. The full error is
// logged at warn for client errors and at error for server errors; it never reaches the
// body unless the mapping echoes it.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	status, body := mapError(err)

	if logger != nil {
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(requestContext(c), level, "request failed",
			slog.Int("status_code", status),
			slog.String("error_code", body.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(status, body)
}

// HandleBadRequestGin writes 400 for bodies or parameters that could not be bound.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.WarnContext(requestContext(c), "bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: err.Error()})
}

// HandleValidationErrorGin writes 422 with the validation messages.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.WarnContext(requestContext(c), "validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation_error", Message: err.Error()})
}

func requestContext(c *gin.Context) context.Context {
	if c.Request == nil {
		return context.Background()
	}
	return c.Request.Context()
}
