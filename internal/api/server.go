// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

/*
Package api assembles the HTTP surface of the DevConnect server.

It owns the router, the global middleware chain, the health endpoints, and the
http.Server lifecycle (startup, graceful shutdown). Domain handlers are built
by their own packages and mounted here.

# Route Map

	/health, /ready          - liveness and readiness probes
	/api/users               - registration
	/api/auth                - login, current user
	/api/profile             - profiles, histories, GitHub lookup
	/api/posts               - feed, likes, comments (fully protected)
*/
package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/anhnguyenduc/devconnect/internal/platform/config"
	"github.com/anhnguyenduc/devconnect/internal/platform/constants"
	"github.com/anhnguyenduc/devconnect/internal/platform/middleware"
	"github.com/anhnguyenduc/devconnect/internal/social/post"
	"github.com/anhnguyenduc/devconnect/internal/users/auth"
	"github.com/anhnguyenduc/devconnect/internal/users/profile"
)

// # Router Assembly

// RouterConfig carries everything the router needs: global middleware inputs,
// the token verifier, and the mounted domain handlers.
type RouterConfig struct {
	Config         *config.Config
	Logger         *slog.Logger
	Verifier       middleware.TokenVerifier
	Health         *HealthHandler
	AuthHandler    *auth.Handler
	ProfileHandler *profile.Handler
	PostHandler    *post.Handler
}

/*
NewRouter builds the complete application router.

Description: Applies the global middleware chain in a fixed order: request id
first so every later stage can tag its logs, the structured logger next, then
timeout, rate limiting, panic recovery, and CORS. The Authenticate middleware
is NOT global: each domain handler decides which of its routes require it.

Parameters:
  - routerConfig: RouterConfig

Returns:
  - chi.Router: Fully mounted router
*/
func NewRouter(routerConfig RouterConfig) chi.Router {
	router := chi.NewRouter()

	// ── 1. Global middleware chain (order matters) ──
	router.Use(chimw.CleanPath)
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(routerConfig.Logger))
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.RateLimit(context.Background()))
	router.Use(middleware.PanicRecovery(routerConfig.Logger))
	router.Use(middleware.CORS(routerConfig.Config))

	// ── 2. Health probes (outside /api, never authenticated) ──
	router.Get("/health", routerConfig.Health.Liveness)
	router.Get("/ready", routerConfig.Health.Readiness)

	// ── 3. Domain mounts ──
	authenticate := middleware.Authenticate(routerConfig.Verifier)

	router.Route("/api", func(r chi.Router) {
		r.Mount("/users", routerConfig.AuthHandler.UserRoutes())
		r.Mount("/auth", routerConfig.AuthHandler.AuthRoutes(authenticate))
		r.Mount("/profile", routerConfig.ProfileHandler.Routes(authenticate))
		r.Mount("/posts", routerConfig.PostHandler.Routes(authenticate))
	})

	return router
}

// # Server Lifecycle

// Server wraps http.Server with structured startup and shutdown.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer constructs the HTTP server around the given router.
func NewServer(cfg *config.Config, logger *slog.Logger, router chi.Router) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort("", cfg.ServerPort),
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
		},
		logger: logger,
	}
}

/*
Run serves requests until ctx is canceled, then drains in-flight requests.

Description: Blocks. On context cancellation (SIGINT/SIGTERM from main) the
listener closes immediately and in-flight requests get
[constants.ShutdownTimeout] to finish.

Parameters:
  - ctx: context.Context (Cancellation triggers graceful shutdown)

Returns:
  - error: Listener failures; nil on clean shutdown
*/
func (server *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		server.logger.Info("server_listening", slog.String("addr", server.httpServer.Addr))
		if err := server.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	server.logger.Info("server_shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := server.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	server.logger.Info("server_stopped")
	return nil
}
