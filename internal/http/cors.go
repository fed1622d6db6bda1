package http

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsExposedHeaders lets the admin UI read rate limit state without parsing the body.
var corsExposedHeaders = []string{
	"X-Request-Id",
	"X-RateLimit-Limit",
	"X-RateLimit-Remaining",
	"X-RateLimit-Reset",
	"Retry-After",
}

// createCORSMiddleware returns nil when CORS is disabled or no usable origin remains.
// The API is normally called server-to-server by the portal backend, so CORS stays
// off unless the admin UI talks to it from the browser. Credentials are allowed, so a
// "*" origin is rejected rather than silently widening access.
func createCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins, rejected := parseOrigins(allowOrigins)
	for _, origin := range rejected {
		logger.Warn("ignoring invalid CORS origin", slog.String("origin", origin))
	}
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no valid origins configured, CORS will not be applied")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    corsExposedHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// parseOrigins splits a comma-separated list into scheme://host origins and the entries
// that are not one.
func parseOrigins(raw string) (origins, rejected []string) {
	for _, part := range strings.Split(raw, ",") {
		candidate := strings.TrimSpace(part)
		if candidate == "" {
			continue
		}
		if origin, ok := normalizeOrigin(candidate); ok {
			origins = append(origins, origin)
		} else {
			rejected = append(rejected, candidate)
		}
	}
	return origins, rejected
}

func normalizeOrigin(candidate string) (string, bool) {
	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" || u.User != nil || u.RawQuery != "" || u.Fragment != "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Path != "" && u.Path != "/" {
		return "", false
	}
	return u.Scheme + "://" + strings.ToLower(u.Host), true
}
