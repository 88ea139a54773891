package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nutritrack/backend/config"
	httpDelivery "github.com/nutritrack/backend/internal/delivery/http"
	"github.com/nutritrack/backend/internal/infrastructure/catalog"
	"github.com/nutritrack/backend/internal/infrastructure/store"
	"github.com/nutritrack/backend/internal/logger"
	"github.com/nutritrack/backend/internal/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if _, err := logger.Init(cfg.Server.Environment); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting nutritrack backend",
		zap.String("version", version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Type),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize infrastructure dependencies
	profileStore, err := store.Open(cfg.Store.Type, cfg.Store.DSN)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer profileStore.Close()
	if cfg.Store.Type == "memory" {
		logger.Warn("using in-memory store, profiles are lost on restart")
	}

	foods, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading food catalog: %w", err)
	}
	logger.Info("food catalog loaded", zap.Int("foods", len(foods)), zap.String("path", cfg.Catalog.Path))

	// Initialize usecase layer
	profiles := usecase.NewProfileService(profileStore, usecase.ProfileServiceConfig{
		Logger: logger.L().Named("profiles"),
	})

	// Create HTTP handler and router
	handler := httpDelivery.NewHandler(profiles, foods, version, logger.L().Named("http"))
	router := httpDelivery.SetupRouter(cfg, handler, logger.L().Named("access"))
	logger.Debug("http router configured",
		zap.Strings("allowed_origins", cfg.Server.AllowedOrigins),
		zap.Int("rate_limit_per_minute", cfg.RateLimit.PerIP),
		zap.Int("rate_limit_burst", cfg.RateLimit.Burst),
	)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	// Start server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for signal or server error.
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped unexpectedly", zap.Error(err))
			return fmt.Errorf("server error: %w", err)
		}
	}

	// Graceful shutdown with timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
