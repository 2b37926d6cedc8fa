package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
	"tenfold/internal/domain/repositories"
	"tenfold/internal/domain/services"
)

// flashcardService implements the FlashcardService interface
type flashcardService struct {
	flashcardRepo  repositories.FlashcardRepository
	generationRepo repositories.GenerationRepository
	txManager      repositories.TransactionManager
	logger         *slog.Logger
}

// NewFlashcardService creates a new flashcard service
func NewFlashcardService(
	flashcardRepo repositories.FlashcardRepository,
	generationRepo repositories.GenerationRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.FlashcardService {
	return &flashcardService{
		flashcardRepo:  flashcardRepo,
		generationRepo: generationRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// CreateFlashcard creates a single flashcard owned by the caller
func (s *flashcardService) CreateFlashcard(ctx context.Context, ident domain.Identity, req *services.CreateFlashcardRequest) (*models.Flashcard, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if req.GenerationID != nil {
		if err := s.checkGenerationRef(ctx, ident, *req.GenerationID); err != nil {
			return nil, err
		}
	}

	card := s.newCard(ident, req)
	if err := s.flashcardRepo.Create(ctx, ident, card); err != nil {
		return nil, err
	}

	s.logger.Info("flashcard created",
		"id", card.ID,
		"source", card.Source,
		"owner_id", card.OwnerID,
	)

	return card, nil
}

// CreateFlashcards creates a batch of flashcards atomically: every card is
// validated up front and the inserts run inside one transaction, so a
// rejected card leaves no partial effect.
func (s *flashcardService) CreateFlashcards(ctx context.Context, ident domain.Identity, req *services.CreateFlashcardBatchRequest) ([]models.Flashcard, error) {
	if len(req.Flashcards) == 0 {
		return nil, fmt.Errorf("%w: flashcards: cannot be blank", domain.ErrValidation)
	}

	for i := range req.Flashcards {
		if err := s.validateCreateRequest(&req.Flashcards[i]); err != nil {
			return nil, fmt.Errorf("%w: flashcards[%d]: %v", domain.ErrValidation, i, err)
		}
	}

	cards := make([]*models.Flashcard, len(req.Flashcards))
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		checked := map[int64]bool{}
		for i := range req.Flashcards {
			if genID := req.Flashcards[i].GenerationID; genID != nil && !checked[*genID] {
				if err := s.checkGenerationRef(txCtx, ident, *genID); err != nil {
					return err
				}
				checked[*genID] = true
			}

			card := s.newCard(ident, &req.Flashcards[i])
			if err := s.flashcardRepo.Create(txCtx, ident, card); err != nil {
				return err
			}
			cards[i] = card
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("flashcard batch created",
		"count", len(cards),
		"owner_id", ident.UserID,
	)

	out := make([]models.Flashcard, len(cards))
	for i, card := range cards {
		out[i] = *card
	}
	return out, nil
}

// GetFlashcard retrieves one of the caller's flashcards
func (s *flashcardService) GetFlashcard(ctx context.Context, ident domain.Identity, id int64) (*models.Flashcard, error) {
	return s.flashcardRepo.GetByID(ctx, ident, id)
}

// ListFlashcards retrieves all of the caller's flashcards
func (s *flashcardService) ListFlashcards(ctx context.Context, ident domain.Identity) ([]models.Flashcard, error) {
	return s.flashcardRepo.List(ctx, ident)
}

// ListFlashcardsByGeneration retrieves the caller's flashcards produced by
// the given generation
func (s *flashcardService) ListFlashcardsByGeneration(ctx context.Context, ident domain.Identity, generationID int64) ([]models.Flashcard, error) {
	return s.flashcardRepo.ListByGeneration(ctx, ident, generationID)
}

// UpdateFlashcard edits one of the caller's flashcards. The store assigns
// updated_at; nothing the caller sends can influence it.
func (s *flashcardService) UpdateFlashcard(ctx context.Context, ident domain.Identity, id int64, req *services.UpdateFlashcardRequest) (*models.Flashcard, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	card, err := s.flashcardRepo.Update(ctx, ident, id, repositories.FlashcardUpdate{
		Front: req.Front,
		Back:  req.Back,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("flashcard updated",
		"id", card.ID,
		"owner_id", card.OwnerID,
	)

	return card, nil
}

// DeleteFlashcard removes one of the caller's flashcards
func (s *flashcardService) DeleteFlashcard(ctx context.Context, ident domain.Identity, id int64) error {
	if err := s.flashcardRepo.Delete(ctx, ident, id); err != nil {
		return err
	}

	s.logger.Info("flashcard deleted",
		"id", id,
		"owner_id", ident.UserID,
	)

	return nil
}

func (s *flashcardService) newCard(ident domain.Identity, req *services.CreateFlashcardRequest) *models.Flashcard {
	return &models.Flashcard{
		Front:        req.Front,
		Back:         req.Back,
		Source:       req.Source,
		OwnerID:      ident.UserID,
		GenerationID: req.GenerationID,
	}
}

// checkGenerationRef verifies the referenced generation exists and belongs
// to the caller. A generation owned by someone else surfaces exactly like a
// missing one.
func (s *flashcardService) checkGenerationRef(ctx context.Context, ident domain.Identity, generationID int64) error {
	if !ident.Authenticated() {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}

	_, err := s.generationRepo.GetByID(ctx, ident, generationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ConflictError{Message: fmt.Sprintf("generation %d does not exist", generationID)}
		}
		return fmt.Errorf("check generation reference: %w", err)
	}
	return nil
}

func (s *flashcardService) validateCreateRequest(req *services.CreateFlashcardRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Front, validation.Required, validation.RuneLength(1, models.MaxFrontLength)),
		validation.Field(&req.Back, validation.Required, validation.RuneLength(1, models.MaxBackLength)),
		validation.Field(&req.Source, validation.Required,
			validation.In(models.SourceAIFull, models.SourceAIEdited, models.SourceManual),
		),
	)
}

func (s *flashcardService) validateUpdateRequest(req *services.UpdateFlashcardRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Front, validation.NilOrNotEmpty, validation.RuneLength(1, models.MaxFrontLength)),
		validation.Field(&req.Back, validation.NilOrNotEmpty, validation.RuneLength(1, models.MaxBackLength)),
	)
}
