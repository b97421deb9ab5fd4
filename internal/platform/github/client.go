// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

/*
Package github provides a read-only client for the GitHub REST API.

It serves the public repository lookup on profile pages. Responses are cached
in Redis for a short TTL so repeated profile views neither hammer GitHub nor
burn through the unauthenticated rate limit.
*/
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anhnguyenduc/devconnect/internal/platform/apperr"
	"github.com/anhnguyenduc/devconnect/internal/platform/constants"
)

// Repo is the subset of the GitHub repository payload exposed to clients.
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	HTMLURL     string    `json:"html_url"`
	Description *string   `json:"description"`
	Stargazers  int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Cache is the slice of the Redis client used for response caching. Narrowed
// to an interface so lookups can be tested against an in-memory fake.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Client performs repository lookups against the GitHub REST API.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	cache        Cache
	logger       *slog.Logger
}

// NewClient constructs a GitHub API client.
//
// # Parameters
//   - clientID, clientSecret: Optional API credentials; empty strings mean
//     unauthenticated lookups at GitHub's lower rate limit.
//   - cache: Redis client for response caching. May be nil in tests.
//   - logger: Structured logger for lookup events.
func NewClient(clientID, clientSecret string, cache Cache, logger *slog.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: constants.GithubLookupTimeout},
		baseURL:      constants.GithubAPIBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		cache:        cache,
		logger:       logger,
	}
}

// WithBaseURL overrides the API root. Used by tests to point at a local server.
func (client *Client) WithBaseURL(base string) *Client {
	client.baseURL = base
	return client
}

/*
ListRepos returns the five oldest-first-created public repositories of a
GitHub user.

Description: Checks the Redis cache first; on a miss it performs the API
call and stores the raw response under a per-username key.

Parameters:
  - ctx: context.Context
  - username: string (GitHub login)

Returns:
  - []Repo: Decoded repository list
  - error: apperr.NotFound when GitHub returns non-200, otherwise transport errors
*/
func (client *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	cacheKey := constants.RedisPrefixGithubRepos + username

	// 1. Cache lookup. A cache failure is never fatal for the request.
	if client.cache != nil {
		if cached, err := client.cache.Get(ctx, cacheKey).Result(); err == nil {
			var repos []Repo
			if err := json.Unmarshal([]byte(cached), &repos); err == nil {
				return repos, nil
			}
		}
	}

	// 2. Build the API request.
	lookupURL := fmt.Sprintf("%s/users/%s/repos?%s",
		client.baseURL,
		url.PathEscape(username),
		client.queryParams(),
	)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("github: failed to build request: %w", err)
	}
	// GitHub rejects requests without a user agent.
	request.Header.Set("User-Agent", constants.AppName)
	request.Header.Set("Accept", "application/vnd.github+json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("github: lookup failed: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	// 3. Any non-200 (missing user, rate limited) is presented as a missing profile.
	if response.StatusCode != http.StatusOK {
		client.logger.Warn("github_lookup_non_200",
			slog.String("username", username),
			slog.Int("status", response.StatusCode),
		)
		return nil, apperr.NotFound("No GitHub profile found!")
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("github: failed to read response: %w", err)
	}

	var repos []Repo
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, fmt.Errorf("github: failed to decode response: %w", err)
	}

	// 4. Populate the cache for subsequent profile views.
	if client.cache != nil {
		if err := client.cache.Set(ctx, cacheKey, body, constants.GithubCacheTTL).Err(); err != nil {
			client.logger.Warn("github_cache_set_failed", slog.Any("error", err))
		}
	}

	return repos, nil
}

// queryParams assembles the repo listing query, appending API credentials
// only when they are configured.
func (client *Client) queryParams() string {
	params := url.Values{}
	params.Set("per_page", fmt.Sprintf("%d", constants.GithubRepoCount))
	params.Set("sort", "created:asc")

	if client.clientID != "" && client.clientSecret != "" {
		params.Set("client_id", client.clientID)
		params.Set("client_secret", client.clientSecret)
	}

	return params.Encode()
}
