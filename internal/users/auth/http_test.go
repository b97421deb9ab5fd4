// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhnguyenduc/devconnect/internal/platform/apperr"
	"github.com/anhnguyenduc/devconnect/internal/platform/constants"
	"github.com/anhnguyenduc/devconnect/internal/platform/middleware"
	"github.com/anhnguyenduc/devconnect/internal/platform/sec"
)

// newAuthTestRouter wires the handler with an in-memory repository and a real
// token service so issued tokens verify through the middleware.
func newAuthTestRouter(t *testing.T) (chi.Router, *memoryUserRepository) {
	t.Helper()

	repo := newMemoryUserRepository()
	tokenService, err := sec.NewTokenService("test-secret", constants.AuthIssuer)
	require.NoError(t, err)

	handler := NewHandler(NewService(repo, tokenService))
	authenticate := middleware.Authenticate(tokenService)

	router := chi.NewRouter()
	router.Mount("/api/users", handler.UserRoutes())
	router.Mount("/api/auth", handler.AuthRoutes(authenticate))
	return router, repo
}

func doJSON(t *testing.T, router chi.Router, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set(constants.HeaderXAuthToken, token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestRegisterEndpoint_ReturnsToken(t *testing.T) {
	router, repo := newAuthTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/users",
		`{"name": "Alice", "email": "alice@example.com", "password": "hunter22"}`, "")

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])

	_, err := repo.FindByEmail(context.Background(), "alice@example.com")
	assert.NoError(t, err)
}

func TestRegisterEndpoint_Validation(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/users",
		`{"name": "", "email": "not-an-email", "password": "abc"}`, "")

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body apperr.AppError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Message)
	require.Len(t, body.Details, 3)

	messages := []string{}
	for _, detail := range body.Details {
		messages = append(messages, detail.Message)
	}
	assert.Contains(t, messages, "Please enter a password with 6 or more characters")
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	payload := `{"name": "Alice", "email": "alice@example.com", "password": "hunter22"}`
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/users", payload, "").Code)

	recorder := doJSON(t, router, http.MethodPost, "/api/users", payload, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"msg": "User already exists"}`, recorder.Body.String())
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	register := `{"name": "Alice", "email": "alice@example.com", "password": "hunter22"}`
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/users", register, "").Code)

	good := doJSON(t, router, http.MethodPost, "/api/auth",
		`{"email": "alice@example.com", "password": "hunter22"}`, "")
	require.Equal(t, http.StatusOK, good.Code)

	bad := doJSON(t, router, http.MethodPost, "/api/auth",
		`{"email": "alice@example.com", "password": "wrong"}`, "")
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.JSONEq(t, `{"msg": "Invalid Credentials!"}`, bad.Body.String())
}

func TestCurrentUserEndpoint(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	register := `{"name": "Alice", "email": "alice@example.com", "password": "hunter22"}`
	registered := doJSON(t, router, http.MethodPost, "/api/users", register, "")
	require.Equal(t, http.StatusOK, registered.Code)

	var issued map[string]string
	require.NoError(t, json.Unmarshal(registered.Body.Bytes(), &issued))

	// Without a token the route is rejected before any handler runs.
	denied := doJSON(t, router, http.MethodGet, "/api/auth", "", "")
	assert.Equal(t, http.StatusUnauthorized, denied.Code)
	assert.JSONEq(t, `{"msg": "No Token, Authorization denied!"}`, denied.Body.String())

	// With the freshly issued token the bare user comes back, hash omitted.
	allowed := doJSON(t, router, http.MethodGet, "/api/auth", "", issued["token"])
	require.Equal(t, http.StatusOK, allowed.Code)

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(allowed.Body.Bytes(), &user))
	assert.Equal(t, "Alice", user["name"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordhash")
}

func TestExpiredTokenRejected(t *testing.T) {
	repo := newMemoryUserRepository()
	tokenService, err := sec.NewTokenService("test-secret", constants.AuthIssuer)
	require.NoError(t, err)

	handler := NewHandler(NewService(repo, tokenService))
	router := chi.NewRouter()
	router.Mount("/api/auth", handler.AuthRoutes(middleware.Authenticate(tokenService)))

	expired, err := tokenService.Issue("user-1", -time.Minute)
	require.NoError(t, err)

	recorder := doJSON(t, router, http.MethodGet, "/api/auth", "", expired)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"msg": "Token not valid!"}`, recorder.Body.String())
}
