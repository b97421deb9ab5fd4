// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package sec

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "devconnect.test"

func newTestService(t *testing.T, secret string) *TokenService {
	t.Helper()
	service, err := NewTokenService(secret, testIssuer)
	require.NoError(t, err)
	return service
}

func TestNewTokenService_RejectsEmptySecret(t *testing.T) {
	_, err := NewTokenService("", testIssuer)
	require.Error(t, err)
}

func TestTokenService_IssueVerifyRoundtrip(t *testing.T) {
	service := newTestService(t, "super-secret")

	token, err := service.Issue("user-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	service := newTestService(t, "super-secret")

	for _, malformed := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := service.Verify(malformed)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input: %q", malformed)
	}
}

func TestTokenService_Verify_TamperedSignature(t *testing.T) {
	service := newTestService(t, "super-secret")

	token, err := service.Issue("user-123", time.Hour)
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = service.Verify(tampered)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuing := newTestService(t, "secret-one")
	verifying := newTestService(t, "secret-two")

	token, err := issuing.Issue("user-123", time.Hour)
	require.NoError(t, err)

	_, err = verifying.Verify(token)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	service := newTestService(t, "super-secret")

	token, err := service.Issue("user-123", -time.Minute)
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrBadSignature,
		"an expired but correctly signed token must not look tampered")
}
