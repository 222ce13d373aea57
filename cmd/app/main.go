package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chris/intent-reconciliation/pkg/bootstrap"
	"github.com/chris/intent-reconciliation/pkg/config"
	"github.com/chris/intent-reconciliation/pkg/gateway/paystack"
	"github.com/chris/intent-reconciliation/pkg/handlers"
	"github.com/chris/intent-reconciliation/pkg/websockets"
)

func main() {
	logger := bootstrap.SetupLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET environment variable not set")
		os.Exit(1)
	}
	converter, err := cfg.Converter()
	if err != nil {
		logger.Error("Invalid currency settings", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create our storage implementation
	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open storage", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// Live dashboard feed
	hub := websockets.NewHub(converter, websockets.WithAllowedOrigins(cfg.AllowedOrigins...))
	go hub.Run(ctx)

	notifier, err := bootstrap.Notifier(ctx, cfg, converter, hub)
	if err != nil {
		logger.Error("Failed to set up notifications", "error", err)
		os.Exit(1)
	}
	engine, gw := bootstrap.Engine(cfg, store, notifier)

	// Create our handler
	handler := handlers.NewApiHandler(handlers.Deps{
		Store:           store,
		Engine:          engine,
		Webhooks:        gw,
		SignatureHeader: paystack.SignatureHeader,
		PublicBaseURL:   cfg.PublicBaseURL,
		Converter:       converter,
	})
	router := handlers.NewRouter(handler, handlers.RouterOptions{
		Logger:         logger,
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
		Dashboard:      hub.Serve,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
		}
	}()

	logger.Info("Starting server", "port", cfg.Port, "storage", cfg.StorageBackend)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
	<-stopped
	engine.Wait()
	logger.Info("Server stopped")
}
