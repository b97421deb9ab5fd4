// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: Token header name, issuer, and lifetime.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "devconnect-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in access tokens.
	AuthIssuer = "devconnect.app"

	// HeaderXAuthToken is the custom header carrying the bearer token.
	// The API deliberately does not use the standard Authorization scheme.
	HeaderXAuthToken = "x-auth-token"

	// AccessTokenTTL is the lifetime of an issued access token (360000 seconds).
	AccessTokenTTL = 360000 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # GitHub Lookup

const (
	// GithubAPIBaseURL is the root of the GitHub REST API.
	GithubAPIBaseURL = "https://api.github.com"

	// GithubRepoCount is how many repositories the lookup returns.
	GithubRepoCount = 5

	// GithubLookupTimeout bounds the outbound GitHub API call.
	GithubLookupTimeout = 10 * time.Second

	// GithubCacheTTL is how long a user's repository list stays cached in Redis.
	GithubCacheTTL = 10 * time.Minute
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixGithubRepos = "github:repos:"
)

// # Database Schemas

const (
	SchemaUsers  = "users"
	SchemaSocial = "social"
)
