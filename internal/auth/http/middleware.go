package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/memoriz2/greensupia-sub000/internal/auth/usecase"
	apperrors "github.com/memoriz2/greensupia-sub000/internal/errors"
	"github.com/memoriz2/greensupia-sub000/internal/httputil"
)

const bearerPrefix = "bearer "

// AuthenticationMiddleware authenticates requests with a session token in the
// Authorization header ("Bearer <token>", scheme is case-insensitive) and stores
// the admin in the request context for GetAdmin.
//
// Missing or malformed headers and invalid sessions yield 401. Inactive admins yield 403.
func AuthenticationMiddleware(adminUseCase authUseCase.AdminUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Debug("authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		admin, err := adminUseCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithAdmin(c.Request.Context(), admin))

		logger.Debug("authentication successful",
			slog.String("admin_id", admin.ID.String()),
			slog.String("username", admin.Username))

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
