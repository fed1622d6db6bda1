package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"

	authHTTP "github.com/memoriz2/greensupia-sub000/internal/auth/http"
	authUseCase "github.com/memoriz2/greensupia-sub000/internal/auth/usecase"
	"github.com/memoriz2/greensupia-sub000/internal/config"
	cryptoHTTP "github.com/memoriz2/greensupia-sub000/internal/crypto/http"
	"github.com/memoriz2/greensupia-sub000/internal/metrics"
	rateLimitHTTP "github.com/memoriz2/greensupia-sub000/internal/ratelimit/http"
	rateLimitService "github.com/memoriz2/greensupia-sub000/internal/ratelimit/service"
)

// readinessTimeout bounds the database ping behind /ready.
const readinessTimeout = 2 * time.Second

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	logger *slog.Logger
	router *gin.Engine
}

// RouterDependencies holds the handlers and services the API routes are built from.
// MeterProvider may be nil, in which case HTTP metrics are not recorded.
type RouterDependencies struct {
	AdminUseCase     authUseCase.AdminUseCase
	AdminHandler     *authHTTP.AdminHandler
	CryptoHandler    *cryptoHTTP.CryptoHandler
	InquiryHandler   *cryptoHTTP.InquiryHandler
	RateLimitHandler *rateLimitHTTP.AdminHandler
	RateLimiter      rateLimitService.RateLimiter
	RateLimitMetrics metrics.RateLimitMetrics
	MeterProvider    metric.MeterProvider
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port),
	}
}

// SetupRouter builds the gin engine with every API route.
//
// ctx bounds background work started by middleware (stale login bucket eviction)
// and should live as long as the server.
func (s *Server) SetupRouter(ctx context.Context, cfg *config.Config, deps RouterDependencies) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && deps.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(deps.MeterProvider, cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(rateLimitHTTP.RateLimitMiddleware(deps.RateLimiter, deps.RateLimitMetrics, s.logger))
	}

	authGroup := v1.Group("/auth")
	{
		loginChain := []gin.HandlerFunc{}
		if cfg.RateLimitLoginEnabled {
			loginChain = append(loginChain, rateLimitHTTP.LoginRateLimitMiddleware(
				ctx,
				cfg.RateLimitLoginRequestsPerSec,
				cfg.RateLimitLoginBurst,
				deps.RateLimitMetrics,
				s.logger,
			))
		}
		loginChain = append(loginChain, deps.AdminHandler.LoginHandler)
		authGroup.POST("/login", loginChain...)
	}

	protected := v1.Group("")
	protected.Use(authHTTP.AuthenticationMiddleware(deps.AdminUseCase, s.logger))

	protected.GET("/auth/me", deps.AdminHandler.MeHandler)

	cryptoGroup := protected.Group("/crypto")
	{
		cryptoGroup.POST("/encrypt", deps.CryptoHandler.EncryptHandler)
		cryptoGroup.POST("/decrypt", deps.CryptoHandler.DecryptHandler)
		cryptoGroup.POST("/hash", deps.CryptoHandler.HashHandler)
		cryptoGroup.POST("/verify", deps.CryptoHandler.VerifyHandler)
		cryptoGroup.GET("/random", deps.CryptoHandler.RandomHandler)
	}

	inquiryGroup := protected.Group("/inquiries")
	{
		inquiryGroup.POST("/seal", deps.InquiryHandler.SealHandler)
		inquiryGroup.POST("/open", deps.InquiryHandler.OpenHandler)
	}

	rateLimitGroup := protected.Group("/admin/rate-limits")
	{
		rateLimitGroup.GET("", deps.RateLimitHandler.StatsHandler)
		rateLimitGroup.POST("/cleanup", deps.RateLimitHandler.CleanupHandler)
		rateLimitGroup.GET("/:ip", deps.RateLimitHandler.StatusHandler)
		rateLimitGroup.DELETE("/:ip", deps.RateLimitHandler.UnblockHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured")
	}
	s.server.Handler = s.router

	s.logger.InfoContext(ctx, "starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database is reachable.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
