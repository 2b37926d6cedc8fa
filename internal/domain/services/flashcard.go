package services

import (
	"context"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
)

// CreateFlashcardRequest represents a request to create one flashcard.
// GenerationID links an AI-sourced card to the session that produced it.
type CreateFlashcardRequest struct {
	Front        string            `json:"front"`
	Back         string            `json:"back"`
	Source       models.CardSource `json:"source"`
	GenerationID *int64            `json:"generation_id"`
}

// CreateFlashcardBatchRequest represents a request to create several cards
// at once, e.g. the accepted candidates of a reviewed generation. The batch
// is atomic: one invalid card rejects the whole request.
type CreateFlashcardBatchRequest struct {
	Flashcards []CreateFlashcardRequest `json:"flashcards"`
}

// UpdateFlashcardRequest represents a request to edit a flashcard's
// content. Nil fields are left unchanged. There is intentionally no
// updated_at field: the store assigns it on every update.
type UpdateFlashcardRequest struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
}

// FlashcardService defines business logic operations for flashcards
type FlashcardService interface {
	// CreateFlashcard creates a single flashcard owned by the caller
	CreateFlashcard(ctx context.Context, ident domain.Identity, req *CreateFlashcardRequest) (*models.Flashcard, error)

	// CreateFlashcards creates a batch of flashcards atomically
	CreateFlashcards(ctx context.Context, ident domain.Identity, req *CreateFlashcardBatchRequest) ([]models.Flashcard, error)

	// GetFlashcard retrieves one of the caller's flashcards
	GetFlashcard(ctx context.Context, ident domain.Identity, id int64) (*models.Flashcard, error)

	// ListFlashcards retrieves all of the caller's flashcards
	ListFlashcards(ctx context.Context, ident domain.Identity) ([]models.Flashcard, error)

	// ListFlashcardsByGeneration retrieves the caller's flashcards produced
	// by the given generation
	ListFlashcardsByGeneration(ctx context.Context, ident domain.Identity, generationID int64) ([]models.Flashcard, error)

	// UpdateFlashcard edits one of the caller's flashcards
	UpdateFlashcard(ctx context.Context, ident domain.Identity, id int64, req *UpdateFlashcardRequest) (*models.Flashcard, error)

	// DeleteFlashcard removes one of the caller's flashcards
	DeleteFlashcard(ctx context.Context, ident domain.Identity, id int64) error
}
