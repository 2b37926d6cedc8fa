package repositories

import (
	"context"

	"github.com/google/uuid"

	"tenfold/internal/domain"
)

// IdentityRepository maintains the local mirror of identity-provider users.
// The mirror row is the target of the owner foreign keys, so deleting it
// cascades deletion of everything the user owns in storage.
type IdentityRepository interface {
	// Ensure provisions a user row for a verified identity if one does not
	// exist yet. Idempotent; called on authenticated requests.
	Ensure(ctx context.Context, userID uuid.UUID) error

	// Delete removes the caller's own user row, cascading deletion of all
	// generations, flashcards and error logs they own.
	Delete(ctx context.Context, ident domain.Identity) error
}
