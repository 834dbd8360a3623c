// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

// Command api is the entry point for the Reelhub HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire session token service.
//  7. Wire domain services and HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reelhub/reelhub/internal/api"
	"github.com/reelhub/reelhub/internal/core/actor"
	"github.com/reelhub/reelhub/internal/core/movie"
	"github.com/reelhub/reelhub/internal/core/relation"
	"github.com/reelhub/reelhub/internal/core/review"
	"github.com/reelhub/reelhub/internal/platform/config"
	"github.com/reelhub/reelhub/internal/platform/constants"
	"github.com/reelhub/reelhub/internal/platform/migration"
	pgstore "github.com/reelhub/reelhub/internal/platform/postgres"
	redisstore "github.com/reelhub/reelhub/internal/platform/redis"
	"github.com/reelhub/reelhub/internal/platform/sec"
	"github.com/reelhub/reelhub/internal/users/account"
	"github.com/reelhub/reelhub/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "reelhub"))
	slog.SetDefault(log)

	log.Info("[Reelhub] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "reelhub"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Session Tokens ─────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer, auth.SessionTokenTTL)
	must(log, err, "initialize token service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	resetTokenRepository := auth.NewResetTokenRepository(rdb)
	authService := auth.NewService(userRepository, resetTokenRepository, tokenService)
	authHandler := auth.NewHandler(authService)

	accountRepository := account.NewAccountRepository(pool)
	accountService := account.NewService(accountRepository, log)
	accountHandler := account.NewHandler(accountService, accountRepository)

	actorRepository := actor.NewPostgresRepository(pool)
	actorService := actor.NewService(actorRepository, log)

	movieRepository := movie.NewPostgresRepository(pool)
	movieService := movie.NewService(movieRepository, log)

	reviewRepository := review.NewPostgresRepository(pool)
	reviewService := review.NewService(reviewRepository, log)

	// The coordinator owns every write that spans more than one table.
	coordinator := relation.NewCoordinator(movieRepository, actorRepository, reviewRepository, accountRepository, log)

	actorHandler := actor.NewHandler(actorService)
	movieHandler := movie.NewHandler(movieService, coordinator)
	reviewHandler := review.NewHandler(reviewService, reviewRepository)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Account:   accountHandler,
		Movie:     movieHandler,
		Actor:     actorHandler,
		Review:    reviewHandler,
	}

	server := api.NewServer(context.Background(), cfg, log, authService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
