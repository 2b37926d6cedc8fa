package repositories

import (
	"context"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
)

// ErrorLogRepository is the only access path to generation error logs,
// owner-scoped like the other repositories.
type ErrorLogRepository interface {
	// Create inserts an error log owned by the caller. The identity must
	// match log.OwnerID.
	Create(ctx context.Context, ident domain.Identity, log *models.GenerationErrorLog) error

	// List retrieves all error logs the caller owns, newest first.
	// Anonymous callers get an empty result, not an error.
	List(ctx context.Context, ident domain.Identity) ([]models.GenerationErrorLog, error)

	// Delete removes an error log the caller owns
	Delete(ctx context.Context, ident domain.Identity, id int64) error
}
