package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"tenfold/internal/auth"
	"tenfold/internal/domain"
	"tenfold/internal/domain/services"
	"tenfold/internal/httputil"
)

// Auth resolves the caller identity for every request. A valid bearer token
// yields an authenticated identity (provisioned in the user mirror on first
// sight); a missing Authorization header yields the anonymous identity and
// the request proceeds - the storage gate below decides what anonymous
// callers can see, which for every table is nothing. A malformed or invalid
// token is rejected outright.
func Auth(verifier auth.JWTVerifier, identities services.IdentityService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, httputil.WithIdentity(r, domain.Anonymous))
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "authorization header must be a bearer token")
				return
			}

			claims, err := verifier.VerifyToken(tokenString)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("token subject is not a UUID", "sub", claims.Subject)
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token subject")
				return
			}

			if err := identities.Provision(r.Context(), userID); err != nil {
				logger.Error("failed to provision user", "user_id", userID, "error", err)
				httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, httputil.WithIdentity(r, domain.NewIdentity(userID)))
		})
	}
}
