package services

import (
	"context"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
)

// LogGenerationErrorRequest represents a request to record a failed
// generation attempt
type LogGenerationErrorRequest struct {
	Model            string `json:"model"`
	SourceTextHash   string `json:"source_text_hash"`
	SourceTextLength int    `json:"source_text_length"`
	ErrorCode        string `json:"error_code"`
	ErrorMessage     string `json:"error_message"`
}

// ErrorLogService defines business logic operations for generation error logs
type ErrorLogService interface {
	// LogGenerationError records a failed generation attempt owned by the caller
	LogGenerationError(ctx context.Context, ident domain.Identity, req *LogGenerationErrorRequest) (*models.GenerationErrorLog, error)

	// ListGenerationErrorLogs retrieves all of the caller's error logs
	ListGenerationErrorLogs(ctx context.Context, ident domain.Identity) ([]models.GenerationErrorLog, error)

	// DeleteGenerationErrorLog removes one of the caller's error logs
	DeleteGenerationErrorLog(ctx context.Context, ident domain.Identity, id int64) error
}
