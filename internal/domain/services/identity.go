package services

import (
	"context"

	"github.com/google/uuid"

	"tenfold/internal/domain"
)

// ProviderAdmin deletes accounts on the identity provider side. Optional:
// when absent, account deletion only clears local data.
type ProviderAdmin interface {
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// IdentityService maintains the local user mirror behind the owner
// foreign keys
type IdentityService interface {
	// Provision makes sure a verified identity has a user row. Idempotent.
	Provision(ctx context.Context, userID uuid.UUID) error

	// DeleteIdentity removes the caller's user row; storage cascades
	// deletion of every row they own
	DeleteIdentity(ctx context.Context, ident domain.Identity) error
}
