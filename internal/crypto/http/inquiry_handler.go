package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memoriz2/greensupia-sub000/internal/crypto/http/dto"
	cryptoUseCase "github.com/memoriz2/greensupia-sub000/internal/crypto/usecase"
	"github.com/memoriz2/greensupia-sub000/internal/httputil"
)

// InquiryHandler encrypts and decrypts inquiry secrets with the application passphrase.
// Nothing is stored; callers persist the payload themselves.
type InquiryHandler struct {
	cryptoUseCase cryptoUseCase.CryptoUseCase
	logger        *slog.Logger
}

// NewInquiryHandler creates a new inquiry handler with required dependencies.
func NewInquiryHandler(useCase cryptoUseCase.CryptoUseCase, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{
		cryptoUseCase: useCase,
		logger:        logger,
	}
}

// SealHandler encrypts inquiry content.
// POST /v1/inquiries/seal
// Returns 503 when no application passphrase is configured.
func (h *InquiryHandler) SealHandler(c *gin.Context) {
	var req dto.SealInquiryRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	payload, err := h.cryptoUseCase.SealInquiry(c.Request.Context(), req.Plaintext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncryptResponse{Payload: payload})
}

// OpenHandler decrypts inquiry content sealed by SealHandler.
// POST /v1/inquiries/open
func (h *InquiryHandler) OpenHandler(c *gin.Context) {
	var req dto.OpenInquiryRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	plaintext, err := h.cryptoUseCase.OpenInquiry(c.Request.Context(), req.Payload)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DecryptResponse{Plaintext: plaintext})
}
