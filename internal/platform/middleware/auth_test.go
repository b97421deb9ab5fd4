// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhnguyenduc/devconnect/internal/platform/constants"
	"github.com/anhnguyenduc/devconnect/internal/platform/ctxutil"
	"github.com/anhnguyenduc/devconnect/internal/platform/sec"
)

// fakeVerifier records whether Verify was called and returns a canned result.
type fakeVerifier struct {
	called bool
	claims *sec.AuthClaims
	err    error
}

func (f *fakeVerifier) Verify(tokenString string) (*sec.AuthClaims, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func runAuthenticated(t *testing.T, verifier *fakeVerifier, header string) (*httptest.ResponseRecorder, *sec.AuthClaims) {
	t.Helper()

	var seen *sec.AuthClaims
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	if header != "" {
		request.Header.Set(constants.HeaderXAuthToken, header)
	}

	recorder := httptest.NewRecorder()
	Authenticate(verifier)(next).ServeHTTP(recorder, request)
	return recorder, seen
}

func TestAuthenticate_MissingToken(t *testing.T) {
	verifier := &fakeVerifier{}

	recorder, seen := runAuthenticated(t, verifier, "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"msg": "No Token, Authorization denied!"}`, recorder.Body.String())
	assert.Nil(t, seen)
	assert.False(t, verifier.called, "verifier must never run without a token")
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	// All verification failure kinds collapse to the same client response.
	for _, cause := range []error{sec.ErrTokenMalformed, sec.ErrBadSignature, sec.ErrTokenExpired} {
		verifier := &fakeVerifier{err: cause}

		recorder, seen := runAuthenticated(t, verifier, "some-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "cause: %v", cause)
		assert.JSONEq(t, `{"msg": "Token not valid!"}`, recorder.Body.String(), "cause: %v", cause)
		assert.Nil(t, seen)
		assert.True(t, verifier.called)
	}
}

func TestAuthenticate_InvalidToken_UnknownCause(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("boom")}

	recorder, _ := runAuthenticated(t, verifier, "some-token")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"msg": "Token not valid!"}`, recorder.Body.String())
}

func TestAuthenticate_ValidToken(t *testing.T) {
	verifier := &fakeVerifier{claims: &sec.AuthClaims{UserID: "user-123"}}

	recorder, seen := runAuthenticated(t, verifier, "good-token")

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "user-123", seen.UserID)
}
