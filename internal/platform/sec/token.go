// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

// Package sec provides cryptographic primitives and access-control policy.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, token signing, the
// ownership policy) from the domain logic. It acts as an Infrastructure service
// injected into the Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Failure Kinds
//
// Verification failures are distinguished internally for testability and
// server-side logging. The HTTP layer collapses all of them into a single 401
// so callers cannot probe which check failed.

var (
	// ErrTokenMalformed indicates the token string could not be parsed at all.
	ErrTokenMalformed = errors.New("sec: token malformed")

	// ErrBadSignature indicates the token was tampered with or signed with a
	// different secret.
	ErrBadSignature = errors.New("sec: token signature invalid")

	// ErrTokenExpired indicates a well-formed, correctly signed token whose
	// expiry has passed.
	ErrTokenExpired = errors.New("sec: token expired")
)

// AuthClaims represents the payload embedded inside an access token.
//
// # Why minimal claims?
//
// The payload carries only the subject's user ID. Handlers that need more
// than the identity re-resolve the user from storage, so a stolen token never
// leaks profile data and stale claims cannot drift from the database.
type AuthClaims struct {
	jwt.RegisteredClaims

	// UserID duplicates the registered Subject under a compact key.
	UserID string `json:"uid"`
}

// TokenService issues and verifies signed, time-bounded bearer tokens using
// HS256 and a process-wide shared secret.
//
// The secret is injected at construction rather than read from ambient
// configuration, so the service is testable without a config singleton.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService.
//
// An empty secret is a configuration error and is rejected here so the
// process fails at startup, never per-request.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Issue creates a signed access token for the given subject.
//
// It is a pure function of (subjectID, timeToLive, secret, current time); the
// only possible failure is an internal signing error.
func (service *TokenService) Issue(subjectID string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: subjectID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity window of a token string.
//
// On failure it returns one of the package-level failure kinds
// ([ErrTokenMalformed], [ErrBadSignature], [ErrTokenExpired]) so callers can
// branch with [errors.Is].
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// classifyTokenError maps jwt/v5 parse errors onto the package failure kinds.
//
// Expiry is checked before signature problems: jwt/v5 joins multiple
// validation errors, and an expired-but-validly-signed token must surface as
// expired, not as a signature failure.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrBadSignature, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
