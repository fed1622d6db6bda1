package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	"github.com/memoriz2/greensupia-sub000/internal/httputil"
	"github.com/memoriz2/greensupia-sub000/internal/ratelimit/domain"
	"github.com/memoriz2/greensupia-sub000/internal/ratelimit/http/dto"
	"github.com/memoriz2/greensupia-sub000/internal/ratelimit/service"
	customValidation "github.com/memoriz2/greensupia-sub000/internal/validation"
)

// AdminHandler exposes rate limiter inspection and maintenance to authenticated admins.
type AdminHandler struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewAdminHandler creates a new rate limit admin handler.
func NewAdminHandler(limiter service.RateLimiter, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		limiter: limiter,
		logger:  logger,
	}
}

// StatsHandler returns limiter table statistics.
// GET /v1/admin/rate-limits - Returns 200 OK.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MapStatsToResponse(h.limiter.GetStats(), h.limiter.Limit()))
}

// StatusHandler returns the limiter state of one IP without counting a request.
// GET /v1/admin/rate-limits/:ip - Returns 200 OK.
func (h *AdminHandler) StatusHandler(c *gin.Context) {
	ip, ok := h.parseIP(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.MapStatusToResponse(ip, h.limiter.GetStatus(ip)))
}

// UnblockHandler clears the block and count of one IP.
// DELETE /v1/admin/rate-limits/:ip - Returns 204 No Content, or 404 if the IP is not tracked.
func (h *AdminHandler) UnblockHandler(c *gin.Context) {
	ip, ok := h.parseIP(c)
	if !ok {
		return
	}

	if !h.limiter.Unblock(ip) {
		httputil.HandleErrorGin(c, domain.ErrIPNotTracked, h.logger)
		return
	}

	h.logger.Info("rate limit cleared", slog.String("ip", ip))
	c.Status(http.StatusNoContent)
}

// CleanupHandler evicts idle limiter records immediately.
// POST /v1/admin/rate-limits/cleanup - Returns 200 OK with the number removed.
func (h *AdminHandler) CleanupHandler(c *gin.Context) {
	removed := h.limiter.Cleanup()
	c.JSON(http.StatusOK, dto.CleanupResponse{Removed: removed})
}

// parseIP reads and validates the :ip path parameter, writing a 422 response on failure.
func (h *AdminHandler) parseIP(c *gin.Context) (string, bool) {
	ip := c.Param("ip")

	err := validation.Validate(ip, validation.Required, customValidation.IPAddress)
	if err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return "", false
	}
	return ip, true
}
