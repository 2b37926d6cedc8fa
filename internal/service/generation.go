package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tenfold/internal/catalog"
	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
	"tenfold/internal/domain/repositories"
	"tenfold/internal/domain/services"
)

// generationService implements the GenerationService interface
type generationService struct {
	generationRepo repositories.GenerationRepository
	models         *catalog.Registry
	logger         *slog.Logger
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	generationRepo repositories.GenerationRepository,
	modelCatalog *catalog.Registry,
	logger *slog.Logger,
) services.GenerationService {
	return &generationService{
		generationRepo: generationRepo,
		models:         modelCatalog,
		logger:         logger,
	}
}

// CreateGeneration records a completed extraction session
func (s *generationService) CreateGeneration(ctx context.Context, ident domain.Identity, req *services.CreateGenerationRequest) (*models.Generation, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Unknown models are recorded anyway; the catalog only drives visibility
	if info, ok := s.models.Lookup(req.Model); !ok {
		s.logger.Warn("generation recorded for uncataloged model", "model", req.Model)
	} else if info.Deprecated {
		s.logger.Warn("generation recorded for deprecated model", "model", req.Model)
	}

	gen := &models.Generation{
		OwnerID:              ident.UserID,
		Model:                req.Model,
		GeneratedCount:       req.GeneratedCount,
		SourceTextHash:       req.SourceTextHash,
		SourceTextLength:     req.SourceTextLength,
		GenerationDurationMs: req.GenerationDurationMs,
	}

	if err := s.generationRepo.Create(ctx, ident, gen); err != nil {
		return nil, err
	}

	s.logger.Info("generation recorded",
		"id", gen.ID,
		"model", gen.Model,
		"generated_count", gen.GeneratedCount,
		"owner_id", gen.OwnerID,
	)

	return gen, nil
}

// GetGeneration retrieves one of the caller's generations
func (s *generationService) GetGeneration(ctx context.Context, ident domain.Identity, id int64) (*models.Generation, error) {
	return s.generationRepo.GetByID(ctx, ident, id)
}

// ListGenerations retrieves all of the caller's generations
func (s *generationService) ListGenerations(ctx context.Context, ident domain.Identity) ([]models.Generation, error) {
	return s.generationRepo.List(ctx, ident)
}

// UpdateAcceptedCounts records review results on a generation
func (s *generationService) UpdateAcceptedCounts(ctx context.Context, ident domain.Identity, id int64, req *services.UpdateAcceptedCountsRequest) (*models.Generation, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	gen, err := s.generationRepo.UpdateAcceptedCounts(ctx, ident, id, req.AcceptedUneditedCount, req.AcceptedEditedCount)
	if err != nil {
		return nil, err
	}

	s.logger.Info("generation accepted counts updated",
		"id", gen.ID,
		"owner_id", gen.OwnerID,
	)

	return gen, nil
}

// DeleteGeneration removes one of the caller's generations
func (s *generationService) DeleteGeneration(ctx context.Context, ident domain.Identity, id int64) error {
	if err := s.generationRepo.Delete(ctx, ident, id); err != nil {
		return err
	}

	s.logger.Info("generation deleted",
		"id", id,
		"owner_id", ident.UserID,
	)

	return nil
}

func (s *generationService) validateCreateRequest(req *services.CreateGenerationRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Model, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&req.GeneratedCount, validation.Min(0)),
		validation.Field(&req.SourceTextHash, validation.Required, validation.RuneLength(1, 128)),
		// Required matters here: threshold rules skip zero values, and a
		// zero length is never valid since the range starts above it
		validation.Field(&req.SourceTextLength,
			validation.Required,
			validation.Min(models.MinSourceTextLength),
			validation.Max(models.MaxSourceTextLength),
		),
		validation.Field(&req.GenerationDurationMs, validation.Min(0)),
	)
}

func (s *generationService) validateUpdateRequest(req *services.UpdateAcceptedCountsRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.AcceptedUneditedCount, validation.Min(0)),
		validation.Field(&req.AcceptedEditedCount, validation.Min(0)),
	)
}
