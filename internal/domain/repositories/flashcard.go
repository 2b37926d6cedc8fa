package repositories

import (
	"context"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
)

// FlashcardUpdate carries the caller-editable fields of a flashcard.
// Nil fields are left unchanged. updated_at is deliberately absent: the
// store stamps it itself on every update.
type FlashcardUpdate struct {
	Front *string
	Back  *string
}

// FlashcardRepository is the only access path to flashcard rows. Every
// method takes the caller identity and scopes the underlying query to rows
// that identity owns.
type FlashcardRepository interface {
	// Create inserts a flashcard owned by the caller. The identity must
	// match card.OwnerID. Participates in a context transaction if present.
	Create(ctx context.Context, ident domain.Identity, card *models.Flashcard) error

	// GetByID retrieves a flashcard the caller owns
	GetByID(ctx context.Context, ident domain.Identity, id int64) (*models.Flashcard, error)

	// List retrieves all flashcards the caller owns, newest first.
	// Anonymous callers get an empty result, not an error.
	List(ctx context.Context, ident domain.Identity) ([]models.Flashcard, error)

	// ListByGeneration retrieves the caller's flashcards produced by the
	// given generation
	ListByGeneration(ctx context.Context, ident domain.Identity, generationID int64) ([]models.Flashcard, error)

	// Update applies the given field changes to a flashcard the caller
	// owns and returns the updated row. updated_at is stamped server-side
	// within the same statement.
	Update(ctx context.Context, ident domain.Identity, id int64, upd FlashcardUpdate) (*models.Flashcard, error)

	// Delete removes a flashcard the caller owns
	Delete(ctx context.Context, ident domain.Identity, id int64) error
}
