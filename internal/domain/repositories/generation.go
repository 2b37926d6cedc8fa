package repositories

import (
	"context"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
)

// GenerationRepository is the only access path to generation rows. Every
// method takes the caller identity and scopes the underlying query to rows
// that identity owns; there is no unguarded accessor.
type GenerationRepository interface {
	// Create inserts a generation owned by the caller. The identity must
	// match gen.OwnerID.
	Create(ctx context.Context, ident domain.Identity, gen *models.Generation) error

	// GetByID retrieves a generation the caller owns. A generation owned by
	// someone else is reported as not found.
	GetByID(ctx context.Context, ident domain.Identity, id int64) (*models.Generation, error)

	// List retrieves all generations the caller owns, newest first.
	// Anonymous callers get an empty result, not an error.
	List(ctx context.Context, ident domain.Identity) ([]models.Generation, error)

	// UpdateAcceptedCounts sets the accepted-count fields on a generation
	// the caller owns. Nil fields are left unchanged. updated_at is stamped
	// server-side within the same statement.
	UpdateAcceptedCounts(ctx context.Context, ident domain.Identity, id int64, acceptedUnedited, acceptedEdited *int) (*models.Generation, error)

	// Delete removes a generation the caller owns. Dependent flashcards
	// survive with their generation reference cleared.
	Delete(ctx context.Context, ident domain.Identity, id int64) error
}
