// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/anhnguyenduc/devconnect/internal/platform/apperr"
	"github.com/anhnguyenduc/devconnect/internal/platform/constants"
	"github.com/anhnguyenduc/devconnect/internal/platform/ctxutil"
	"github.com/anhnguyenduc/devconnect/internal/platform/respond"
	"github.com/anhnguyenduc/devconnect/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the bearer token from the x-auth-token
// header. It is mounted only on protected route groups; a request either
// emerges authenticated or is rejected here.
//
// # Flow
//  1. Read the x-auth-token header (a bare token, not an Authorization scheme).
//  2. If absent, reject 401 immediately. The verifier is never called.
//  3. If present, verify via [TokenVerifier]. Any failure kind (malformed,
//     bad signature, expired) rejects with the same 401 body; the precise
//     kind is logged server-side only, so clients cannot distinguish a
//     signature problem from an expired token.
//  4. On success, inject [*sec.AuthClaims] into the request context and pass
//     control onward. Nothing is written to the response.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := request.Header.Get(constants.HeaderXAuthToken)

			// ── 1. Missing Token ──────────────────────────────────────────────
			if token == "" {
				respond.Error(writer, request, apperr.Unauthorized("No Token, Authorization denied!"))
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(token)
			if err != nil {
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(),
					"token_verification_failed",
					slog.String("reason", err.Error()),
				)
				respond.Error(writer, request, apperr.Unauthorized("Token not valid!"))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
