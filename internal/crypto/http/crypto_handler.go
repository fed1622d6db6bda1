// Package http provides HTTP handlers for password-based encryption, password hashing,
// random tokens and inquiry secrets.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memoriz2/greensupia-sub000/internal/crypto/http/dto"
	cryptoUseCase "github.com/memoriz2/greensupia-sub000/internal/crypto/usecase"
	"github.com/memoriz2/greensupia-sub000/internal/httputil"
	customValidation "github.com/memoriz2/greensupia-sub000/internal/validation"
)

// CryptoHandler handles HTTP requests for the encryption service.
type CryptoHandler struct {
	cryptoUseCase cryptoUseCase.CryptoUseCase
	logger        *slog.Logger
}

// NewCryptoHandler creates a new crypto handler with required dependencies.
func NewCryptoHandler(useCase cryptoUseCase.CryptoUseCase, logger *slog.Logger) *CryptoHandler {
	return &CryptoHandler{
		cryptoUseCase: useCase,
		logger:        logger,
	}
}

// EncryptHandler encrypts plaintext with a caller-supplied password.
// POST /v1/crypto/encrypt
// Returns 200 OK with a "salt:iv:tag:ciphertext" payload.
func (h *CryptoHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	payload, err := h.cryptoUseCase.Encrypt(c.Request.Context(), req.Plaintext, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncryptResponse{Payload: payload})
}

// DecryptHandler decrypts a payload with a caller-supplied password.
// POST /v1/crypto/decrypt
// Wrong passwords and tampered payloads both return 422 "decryption_failed".
func (h *CryptoHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	plaintext, err := h.cryptoUseCase.Decrypt(c.Request.Context(), req.Payload, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DecryptResponse{Plaintext: plaintext})
}

// HashHandler hashes a password in the "salt:hash" PBKDF2 format.
// POST /v1/crypto/hash
func (h *CryptoHandler) HashHandler(c *gin.Context) {
	var req dto.HashRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	hash, err := h.cryptoUseCase.HashPassword(c.Request.Context(), req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.HashResponse{Hash: hash})
}

// VerifyHandler checks a password against a stored hash.
// POST /v1/crypto/verify
// A mismatch or malformed hash is a 200 with valid=false, not an error.
func (h *CryptoHandler) VerifyHandler(c *gin.Context) {
	var req dto.VerifyRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	valid, err := h.cryptoUseCase.VerifyPassword(c.Request.Context(), req.Password, req.Hash)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Valid: valid})
}

// RandomHandler returns a hex-encoded random token.
// GET /v1/crypto/random?length=n - n random bytes, 32 when omitted.
func (h *CryptoHandler) RandomHandler(c *gin.Context) {
	var req dto.RandomRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	value, err := h.cryptoUseCase.GenerateRandomString(c.Request.Context(), req.Length)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.RandomResponse{Value: value})
}

// validatable is implemented by every request DTO.
type validatable interface {
	Validate() error
}

// bindJSON decodes the JSON body into req and validates it. It writes the error
// response itself and reports whether the handler should continue.
func bindJSON(c *gin.Context, req validatable, logger *slog.Logger) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.HandleBadRequestGin(c, err, logger)
		return false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), logger)
		return false
	}
	return true
}
