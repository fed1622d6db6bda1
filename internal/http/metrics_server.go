package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// MetricsServer exposes the Prometheus scrape endpoint on its own port so the
// API listener never serves operational data.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer creates a MetricsServer. A nil scrape handler leaves only /health mounted.
func NewMetricsServer(host string, port int, logger *slog.Logger, scrape http.Handler) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	if scrape != nil {
		router.GET("/metrics", gin.WrapH(scrape))
	}

	srv := newHTTPServer(host, port)
	srv.Handler = router

	return &MetricsServer{server: srv, logger: logger}
}

// newHTTPServer returns an http.Server with the timeouts shared by both listeners.
func newHTTPServer(host string, port int) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves metrics and blocks until the server is shut down.
func (s *MetricsServer) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "starting metrics server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}
