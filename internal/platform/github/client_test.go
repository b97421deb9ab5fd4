// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package github

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhnguyenduc/devconnect/internal/platform/apperr"
	"github.com/anhnguyenduc/devconnect/internal/platform/constants"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	return NewClient("", "", nil, logger).WithBaseURL(server.URL)
}

// testWriter routes client log output through the test log.
type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

// fakeCache is an in-memory Cache keyed like the Redis one.
type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (cache *fakeCache) Get(_ context.Context, key string) *redis.StringCmd {
	if value, ok := cache.entries[key]; ok {
		return redis.NewStringResult(value, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (cache *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	cache.entries[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestListRepos_DecodesPayload(t *testing.T) {
	var gotPath, gotQuery, gotUA string

	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		gotPath = request.URL.Path
		gotQuery = request.URL.RawQuery
		gotUA = request.Header.Get("User-Agent")

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`[
			{"id": 1, "name": "dotfiles", "full_name": "octocat/dotfiles",
			 "html_url": "https://github.com/octocat/dotfiles",
			 "stargazers_count": 7, "forks_count": 2,
			 "created_at": "2020-01-02T15:04:05Z"}
		]`))
	})

	repos, err := client.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 1)

	assert.Equal(t, "dotfiles", repos[0].Name)
	assert.Equal(t, int64(1), repos[0].ID)
	assert.Equal(t, 7, repos[0].Stargazers)
	assert.Nil(t, repos[0].Description)

	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Contains(t, gotQuery, "per_page=5")
	assert.NotEmpty(t, gotUA, "GitHub rejects requests without a user agent")
}

func TestListRepos_UnknownUserIs404(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	_, err := client.ListRepos(context.Background(), "no-such-user")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusNotFound, appError.HTTPStatus)
	assert.Equal(t, "No GitHub profile found!", appError.Message)
}

func TestListRepos_RateLimitedIs404(t *testing.T) {
	// Rate limiting also presents as a missing profile: clients get no
	// different signal than for an unknown username.
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, `{"message": "rate limited"}`, http.StatusForbidden)
	})

	_, err := client.ListRepos(context.Background(), "octocat")
	require.Error(t, err)
	assert.Equal(t, "No GitHub profile found!", apperr.As(err).Message)
}

func TestListRepos_CacheHitSkipsLookup(t *testing.T) {
	var calls int
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		calls++
		writer.WriteHeader(http.StatusInternalServerError)
	})

	cache := newFakeCache()
	cache.entries[constants.RedisPrefixGithubRepos+"octocat"] = `[{"id": 9, "name": "cached"}]`
	client.cache = cache

	repos, err := client.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "cached", repos[0].Name)
	assert.Zero(t, calls, "a cache hit must not reach the API")
}

func TestListRepos_CachesAfterMiss(t *testing.T) {
	body := `[{"id": 1, "name": "dotfiles"}]`
	var calls int
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		calls++
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(body))
	})

	cache := newFakeCache()
	client.cache = cache

	_, err := client.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	assert.JSONEq(t, body, cache.entries[constants.RedisPrefixGithubRepos+"octocat"])

	// The second lookup is served from the freshly stored entry.
	repos, err := client.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.Len(t, repos, 1)
	assert.Equal(t, "dotfiles", repos[0].Name)
}

func TestListRepos_CorruptCacheEntryFallsThrough(t *testing.T) {
	body := `[{"id": 1, "name": "dotfiles"}]`
	var calls int
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		calls++
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(body))
	})

	cache := newFakeCache()
	cacheKey := constants.RedisPrefixGithubRepos + "octocat"
	cache.entries[cacheKey] = "not-json"
	client.cache = cache

	repos, err := client.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "an undecodable entry must fall through to the API")
	require.Len(t, repos, 1)
	assert.JSONEq(t, body, cache.entries[cacheKey], "the bad entry must be overwritten")
}

func TestQueryParams_CredentialsOnlyWhenConfigured(t *testing.T) {
	logger := slog.Default()

	anonymous := NewClient("", "", nil, logger)
	assert.NotContains(t, anonymous.queryParams(), "client_id")

	authenticated := NewClient("id", "secret", nil, logger)
	query := authenticated.queryParams()
	assert.Contains(t, query, "client_id=id")
	assert.Contains(t, query, "client_secret=secret")
}
