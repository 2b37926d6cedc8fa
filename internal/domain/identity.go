package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Identity is the caller identity attached to every storage operation.
// The zero value is the anonymous (unauthenticated) caller. User IDs come
// from the external identity provider's JWT subject claim and are trusted
// as-is by this layer.
type Identity struct {
	UserID uuid.UUID
}

// Anonymous is the unauthenticated caller
var Anonymous = Identity{}

// NewIdentity creates an authenticated identity for the given user ID
func NewIdentity(userID uuid.UUID) Identity {
	return Identity{UserID: userID}
}

// Authenticated reports whether the identity belongs to a verified user
func (i Identity) Authenticated() bool {
	return i.UserID != uuid.Nil
}

// AuthorizeWrite is the pre-image/post-image ownership gate for writes.
// Every repository evaluates it before touching a row: an anonymous caller
// is rejected outright, and an authenticated caller may only write rows
// whose owner is their own identity. Reads never call this - unauthorized
// rows are silently excluded from result sets instead.
func AuthorizeWrite(ident Identity, owner uuid.UUID) error {
	if !ident.Authenticated() {
		return &UnauthorizedError{Message: "authentication required"}
	}
	if owner != ident.UserID {
		return &ForbiddenError{Message: fmt.Sprintf("row owner %s does not match caller", owner)}
	}
	return nil
}
