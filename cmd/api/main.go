// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

/*
DevConnect API server.

Startup order is fixed: logger, configuration, PostgreSQL, Redis, migrations,
token service, then the HTTP server. Any failure before the listener starts is
fatal. SIGINT/SIGTERM triggers graceful shutdown.
*/
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/anhnguyenduc/devconnect/internal/api"
	"github.com/anhnguyenduc/devconnect/internal/platform/config"
	"github.com/anhnguyenduc/devconnect/internal/platform/constants"
	"github.com/anhnguyenduc/devconnect/internal/platform/github"
	"github.com/anhnguyenduc/devconnect/internal/platform/migration"
	"github.com/anhnguyenduc/devconnect/internal/platform/postgres"
	"github.com/anhnguyenduc/devconnect/internal/platform/redis"
	"github.com/anhnguyenduc/devconnect/internal/platform/sec"
	"github.com/anhnguyenduc/devconnect/internal/social/post"
	"github.com/anhnguyenduc/devconnect/internal/users/auth"
	"github.com/anhnguyenduc/devconnect/internal/users/profile"
)

func main() {
	// ── 1. Logger ──
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 2. Configuration ──
	cfg, err := config.Load()
	must(logger, "config_load", err)

	if cfg.Debug {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})).With(slog.String("app", constants.AppName))
		slog.SetDefault(logger)
	}

	// ── 3. PostgreSQL ──
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, logger)
	must(logger, "postgres_connect", err)
	defer pool.Close()

	// ── 4. Redis ──
	cache, err := redis.NewClient(ctx, cfg.RedisURL, logger)
	must(logger, "redis_connect", err)
	defer cache.Close()

	// ── 5. Migrations ──
	must(logger, "migrations_apply", migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger))

	// ── 6. Token service ──
	tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
	must(logger, "token_service_init", err)

	// ── 7. Domain wiring ──
	userRepository := auth.NewUserRepository(pool)
	profileRepository := profile.NewProfileRepository(pool)
	postRepository := post.NewPostRepository(pool)

	githubClient := github.NewClient(cfg.GithubClientID, cfg.GithubSecret, cache, logger)

	authService := auth.NewService(userRepository, tokenService)
	profileService := profile.NewService(profileRepository, userRepository, githubClient)
	postService := post.NewService(postRepository, userRepository)

	healthHandler := api.NewHealthHandler(pool, cache, logger)

	router := api.NewRouter(api.RouterConfig{
		Config:         cfg,
		Logger:         logger,
		Verifier:       tokenService,
		Health:         healthHandler,
		AuthHandler:    auth.NewHandler(authService),
		ProfileHandler: profile.NewHandler(profileService),
		PostHandler:    post.NewHandler(postService),
	})

	// ── 8. Serve ──
	server := api.NewServer(cfg, logger, router)
	if err := server.Run(ctx); err != nil {
		logger.Error("server_run_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// must aborts startup when a boot step fails.
func must(logger *slog.Logger, step string, err error) {
	if err != nil {
		logger.Error(step+"_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
