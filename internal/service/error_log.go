package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
	"tenfold/internal/domain/repositories"
	"tenfold/internal/domain/services"
)

// errorLogService implements the ErrorLogService interface
type errorLogService struct {
	errorLogRepo repositories.ErrorLogRepository
	logger       *slog.Logger
}

// NewErrorLogService creates a new error log service
func NewErrorLogService(
	errorLogRepo repositories.ErrorLogRepository,
	logger *slog.Logger,
) services.ErrorLogService {
	return &errorLogService{
		errorLogRepo: errorLogRepo,
		logger:       logger,
	}
}

// LogGenerationError records a failed generation attempt
func (s *errorLogService) LogGenerationError(ctx context.Context, ident domain.Identity, req *services.LogGenerationErrorRequest) (*models.GenerationErrorLog, error) {
	if err := s.validateLogRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	entry := &models.GenerationErrorLog{
		OwnerID:          ident.UserID,
		Model:            req.Model,
		SourceTextHash:   req.SourceTextHash,
		SourceTextLength: req.SourceTextLength,
		ErrorCode:        req.ErrorCode,
		ErrorMessage:     req.ErrorMessage,
	}

	if err := s.errorLogRepo.Create(ctx, ident, entry); err != nil {
		return nil, err
	}

	s.logger.Info("generation error logged",
		"id", entry.ID,
		"model", entry.Model,
		"error_code", entry.ErrorCode,
		"owner_id", entry.OwnerID,
	)

	return entry, nil
}

// ListGenerationErrorLogs retrieves all of the caller's error logs
func (s *errorLogService) ListGenerationErrorLogs(ctx context.Context, ident domain.Identity) ([]models.GenerationErrorLog, error) {
	return s.errorLogRepo.List(ctx, ident)
}

// DeleteGenerationErrorLog removes one of the caller's error logs
func (s *errorLogService) DeleteGenerationErrorLog(ctx context.Context, ident domain.Identity, id int64) error {
	if err := s.errorLogRepo.Delete(ctx, ident, id); err != nil {
		return err
	}

	s.logger.Info("generation error log deleted",
		"id", id,
		"owner_id", ident.UserID,
	)

	return nil
}

func (s *errorLogService) validateLogRequest(req *services.LogGenerationErrorRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Model, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&req.SourceTextHash, validation.Required, validation.RuneLength(1, 128)),
		// Required matters here: threshold rules skip zero values, and a
		// zero length is never valid since the range starts above it
		validation.Field(&req.SourceTextLength,
			validation.Required,
			validation.Min(models.MinSourceTextLength),
			validation.Max(models.MaxSourceTextLength),
		),
		validation.Field(&req.ErrorCode, validation.Required, validation.RuneLength(1, models.MaxErrorCodeLength)),
		validation.Field(&req.ErrorMessage, validation.Required),
	)
}
