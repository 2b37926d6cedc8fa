package models

import (
	"time"

	"github.com/google/uuid"
)

// CardSource records a flashcard's provenance
type CardSource string

const (
	// SourceAIFull marks a card accepted exactly as the model produced it
	SourceAIFull CardSource = "ai-full"
	// SourceAIEdited marks a model-produced card the owner edited before accepting
	SourceAIEdited CardSource = "ai-edited"
	// SourceManual marks a card the owner wrote from scratch
	SourceManual CardSource = "manual"
)

// Valid reports whether the source is one of the known provenance values
func (s CardSource) Valid() bool {
	switch s {
	case SourceAIFull, SourceAIEdited, SourceManual:
		return true
	}
	return false
}

// Field length limits for flashcard content (characters, not bytes)
const (
	MaxFrontLength = 200
	MaxBackLength  = 500
)

// Flashcard is one learning card. GenerationID links an AI-sourced card to
// the session that produced it; deleting the generation clears the link but
// keeps the card.
type Flashcard struct {
	ID           int64      `json:"id" db:"id"`
	Front        string     `json:"front" db:"front"`
	Back         string     `json:"back" db:"back"`
	Source       CardSource `json:"source" db:"source"`
	OwnerID      uuid.UUID  `json:"owner_id" db:"owner_id"`
	GenerationID *int64     `json:"generation_id" db:"generation_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
