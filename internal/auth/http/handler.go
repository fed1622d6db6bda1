package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memoriz2/greensupia-sub000/internal/auth/http/dto"
	authUseCase "github.com/memoriz2/greensupia-sub000/internal/auth/usecase"
	apperrors "github.com/memoriz2/greensupia-sub000/internal/errors"
	"github.com/memoriz2/greensupia-sub000/internal/httputil"
	customValidation "github.com/memoriz2/greensupia-sub000/internal/validation"
)

// AdminHandler handles HTTP requests for admin login and session introspection.
type AdminHandler struct {
	adminUseCase authUseCase.AdminUseCase
	logger       *slog.Logger
}

// NewAdminHandler creates a new admin handler with required dependencies.
func NewAdminHandler(adminUseCase authUseCase.AdminUseCase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// LoginHandler exchanges admin credentials for a session token.
// POST /v1/auth/login - No authentication required.
// Returns 201 Created with the token and its expiration time.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	session, err := h.adminUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapSessionToLoginResponse(session))
}

// MeHandler returns the admin bound to the current session.
// GET /v1/auth/me - Requires AuthenticationMiddleware.
func (h *AdminHandler) MeHandler(c *gin.Context) {
	admin, ok := GetAdmin(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAdminToResponse(admin))
}
