// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package api

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/anhnguyenduc/devconnect/internal/platform/constants"
	"github.com/anhnguyenduc/devconnect/internal/platform/postgres"
	"github.com/anhnguyenduc/devconnect/internal/platform/redis"
	"github.com/anhnguyenduc/devconnect/internal/platform/respond"
)

// # Health Probes

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	pool   *pgxpool.Pool
	cache  *goredis.Client
	logger *slog.Logger
}

// NewHealthHandler constructs a [HealthHandler] over the shared connections.
func NewHealthHandler(pool *pgxpool.Pool, cache *goredis.Client, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{pool: pool, cache: cache, logger: logger}
}

/*
Liveness reports that the process is up.

GET /health

Response:
  - 200: {status, version}
*/
func (handler *HealthHandler) Liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		"status":  "ok",
		"version": constants.AppVersion,
	})
}

/*
Readiness reports whether the server can actually serve traffic.

GET /ready

Description: Pings PostgreSQL and Redis. Any failure yields 503 so load
balancers stop routing here while a dependency is down.

Response:
  - 200: {status, postgres, redis}
  - 503: Same shape with the failing dependency marked "down"
*/
func (handler *HealthHandler) Readiness(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	status := map[string]string{
		"status":   "ok",
		"postgres": "ok",
		"redis":    "ok",
	}
	healthy := true

	if err := postgres.Ping(ctx, handler.pool); err != nil {
		handler.logger.ErrorContext(ctx, "readiness_postgres_failed", slog.String("error", err.Error()))
		status["postgres"] = "down"
		healthy = false
	}

	if err := redis.Ping(ctx, handler.cache); err != nil {
		handler.logger.ErrorContext(ctx, "readiness_redis_failed", slog.String("error", err.Error()))
		status["redis"] = "down"
		healthy = false
	}

	if !healthy {
		status["status"] = "degraded"
		respond.JSON(writer, http.StatusServiceUnavailable, status)
		return
	}

	respond.OK(writer, status)
}
