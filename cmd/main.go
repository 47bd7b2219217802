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

	"audience-intel/internal/adapter/fsstore"
	"audience-intel/internal/adapter/gemini"
	httpadapter "audience-intel/internal/adapter/http"
	"audience-intel/internal/adapter/postgres"
	"audience-intel/internal/adapter/usecase"
	"audience-intel/internal/config"
	"audience-intel/internal/core/port"
	"audience-intel/internal/db"
	"audience-intel/internal/ratelimit"
)

// main is the entry point of the audience-intel service. It loads
// configuration, initializes the plan store, the model client and the
// rate limiter, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, err := fsstore.NewPlanRepository(cfg.Storage.Dir, cfg.Storage.RenderPDF, logger)
	if err != nil {
		logger.Error("storage init error", slog.Any("error", err))
		os.Exit(1)
	}

	var completer port.Completer
	if cfg.LLM.APIKey != "" {
		completer, err = gemini.New(ctx, cfg.LLM)
		if err != nil {
			logger.Error("model client init error", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		logger.Warn("LLM_API_KEY is not set, only dry_run generation will succeed")
		completer = gemini.Unconfigured{}
	}

	// The in-memory limiter is the default; the Postgres-backed store is
	// selected when one request budget must span several instances.
	var limiter port.LimitStore
	if cfg.RateLimit.Shared {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		limiter = postgres.NewLimitStore(pool, cfg.RateLimit.Max, cfg.RateLimit.Window)
	} else {
		limiter = ratelimit.NewMemory(cfg.RateLimit.Max, cfg.RateLimit.Window)
	}

	svc := usecase.NewPlanUseCase(repo, completer)
	handler := httpadapter.NewHandler(svc, limiter, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
