package models

import (
	"time"

	"github.com/google/uuid"
)

// Generation records one AI-assisted flashcard-extraction session: which
// model ran, a fingerprint of the source text, and how many candidates it
// produced. The accepted counts are filled in later as the owner reviews
// the candidates.
type Generation struct {
	ID                    int64     `json:"id" db:"id"`
	OwnerID               uuid.UUID `json:"owner_id" db:"owner_id"`
	Model                 string    `json:"model" db:"model"`
	GeneratedCount        int       `json:"generated_count" db:"generated_count"`
	AcceptedUneditedCount *int      `json:"accepted_unedited_count" db:"accepted_unedited_count"`
	AcceptedEditedCount   *int      `json:"accepted_edited_count" db:"accepted_edited_count"`
	SourceTextHash        string    `json:"source_text_hash" db:"source_text_hash"`
	SourceTextLength      int       `json:"source_text_length" db:"source_text_length"`
	GenerationDurationMs  int       `json:"generation_duration_ms" db:"generation_duration_ms"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}

// Source-text length bounds accepted for a generation session. Inputs
// outside this range were never sent to a model in the first place, so
// rows claiming otherwise are rejected.
const (
	MinSourceTextLength = 1000
	MaxSourceTextLength = 10000
)
