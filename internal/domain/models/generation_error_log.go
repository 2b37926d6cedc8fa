package models

import (
	"time"

	"github.com/google/uuid"
)

// GenerationErrorLog records one failed generation attempt. Rows are
// append-mostly: the application writes them after an AI invocation fails
// and the owner can list or delete them later.
type GenerationErrorLog struct {
	ID               int64     `json:"id" db:"id"`
	OwnerID          uuid.UUID `json:"owner_id" db:"owner_id"`
	Model            string    `json:"model" db:"model"`
	SourceTextHash   string    `json:"source_text_hash" db:"source_text_hash"`
	SourceTextLength int       `json:"source_text_length" db:"source_text_length"`
	ErrorCode        string    `json:"error_code" db:"error_code"`
	ErrorMessage     string    `json:"error_message" db:"error_message"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// MaxErrorCodeLength bounds the short machine-readable error code
const MaxErrorCodeLength = 100
