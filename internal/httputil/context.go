package httputil

import (
	"context"
	"net/http"

	"tenfold/internal/domain"
)

// Context key type to avoid collisions
type contextKey string

const identityKey contextKey = "identity"

// WithIdentity attaches the caller identity to the request context
func WithIdentity(r *http.Request, ident domain.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityKey, ident)
	return r.WithContext(ctx)
}

// IdentityFrom retrieves the caller identity from the request context.
// Requests that never passed authentication carry the anonymous identity.
func IdentityFrom(r *http.Request) domain.Identity {
	ident, ok := r.Context().Value(identityKey).(domain.Identity)
	if !ok {
		return domain.Anonymous
	}
	return ident
}
