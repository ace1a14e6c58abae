package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sweet-orders/internal/config"
	"sweet-orders/internal/database"
	"sweet-orders/internal/handler"
	"sweet-orders/internal/router"
	"sweet-orders/internal/service"
	"sweet-orders/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting sweet-orders API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the document store backend
	var orderStore store.OrderStore
	switch cfg.Store.Backend {
	case config.StoreBackendSupabase:
		orderStore = store.NewSupabaseStore(cfg.Store.SupabaseURL, cfg.Store.SupabaseKey, cfg.Store.Table, logger)
		logger.Info().Str("backend", cfg.Store.Backend).Msg("using supabase order store")
	default:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()
		orderStore = store.NewPostgresStore(pool, logger)
		logger.Info().Str("backend", cfg.Store.Backend).Msg("using postgres order store")
	}

	// Initialize the order collection service
	orderService := service.NewOrderService(orderStore, logger)

	// Warm the in-memory list. A failed initial load is not fatal: it is
	// surfaced inline on the listing until the next successful reload.
	if err := orderService.LoadAll(ctx); err != nil {
		logger.Warn().Err(err).Msg("initial order load failed")
	}

	// Initialize HTTP handlers and router
	orderHandler := handler.NewOrderHandler(orderService, logger)
	mux := router.New(orderHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
