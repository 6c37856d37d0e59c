// Package main is the entry point for the Sales Performance API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sales-performance/backend/config"
	"github.com/sales-performance/backend/internal/infra/db"
	"github.com/sales-performance/backend/internal/infra/dependency"
	"github.com/sales-performance/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Sales Performance API",
		"environment", cfg.Server.Environment,
		"version", cfg.Server.Version,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Open the in-memory session store
	database, err := db.NewSessionConnection(&cfg.Session)
	if err != nil {
		slog.Error("Failed to open session store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close session store", "error", err)
		}
	}()

	// Run migrations
	if err := database.AutoMigrate(&model.SaleModel{}); err != nil {
		slog.Error("Failed to run session store migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Session store migrations completed successfully")

	// Wire dependencies
	injector := dependency.NewInjector(cfg, database.DB(), database.HealthCheck)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly; session data discarded")
}
