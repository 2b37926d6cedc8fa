package services

import (
	"context"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
)

// CreateGenerationRequest represents a request to record a completed
// AI-assisted extraction session
type CreateGenerationRequest struct {
	Model                string `json:"model"`
	GeneratedCount       int    `json:"generated_count"`
	SourceTextHash       string `json:"source_text_hash"`
	SourceTextLength     int    `json:"source_text_length"`
	GenerationDurationMs int    `json:"generation_duration_ms"`
}

// UpdateAcceptedCountsRequest represents a request to record review results
// on a generation. Nil fields are left unchanged.
type UpdateAcceptedCountsRequest struct {
	AcceptedUneditedCount *int `json:"accepted_unedited_count"`
	AcceptedEditedCount   *int `json:"accepted_edited_count"`
}

// GenerationService defines business logic operations for generations
type GenerationService interface {
	// CreateGeneration records a completed extraction session owned by the caller
	CreateGeneration(ctx context.Context, ident domain.Identity, req *CreateGenerationRequest) (*models.Generation, error)

	// GetGeneration retrieves one of the caller's generations
	GetGeneration(ctx context.Context, ident domain.Identity, id int64) (*models.Generation, error)

	// ListGenerations retrieves all of the caller's generations
	ListGenerations(ctx context.Context, ident domain.Identity) ([]models.Generation, error)

	// UpdateAcceptedCounts records how many candidates the caller accepted
	UpdateAcceptedCounts(ctx context.Context, ident domain.Identity, id int64, req *UpdateAcceptedCountsRequest) (*models.Generation, error)

	// DeleteGeneration removes one of the caller's generations; flashcards
	// produced by it survive with their generation reference cleared
	DeleteGeneration(ctx context.Context, ident domain.Identity, id int64) error
}
