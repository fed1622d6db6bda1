package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/memoriz2/greensupia-sub000/internal/app"
	"github.com/memoriz2/greensupia-sub000/internal/config"
)

// starter is the part of the API and metrics servers RunServer drives.
type starter interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunServer starts the API server and, when enabled, the metrics server.
// Blocks until SIGINT/SIGTERM or a fatal server error, then shuts both down within
// SERVER_SHUTDOWN_TIMEOUT_SECONDS.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	defer closeContainer(container, logger)

	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	servers := map[string]starter{"api": server}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	if metricsServer != nil {
		servers["metrics"] = metricsServer
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return serve(ctx, logger, cfg, servers)
}

// serve runs every server until ctx is done or one of them fails, then shuts all down.
func serve(ctx context.Context, logger *slog.Logger, cfg *config.Config, servers map[string]starter) error {
	serverErr := make(chan error, len(servers))
	for name, s := range servers {
		go func(name string, s starter) {
			if err := s.Start(ctx); err != nil {
				serverErr <- fmt.Errorf("%s server error: %w", name, err)
			}
		}(name, s)
	}

	var shutdownErrors []error

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		logger.Error("server error, initiating shutdown", slog.Any("error", err))
		shutdownErrors = append(shutdownErrors, err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	for name, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("%s server shutdown: %w", name, err))
		}
	}

	return errors.Join(shutdownErrors...)
}
