package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
	"tenfold/internal/domain/repositories"
)

// PostgresFlashcardRepository implements the FlashcardRepository interface
type PostgresFlashcardRepository struct {
	pool *pgxpool.Pool
}

// NewFlashcardRepository creates a new flashcard repository
func NewFlashcardRepository(config *RepositoryConfig) repositories.FlashcardRepository {
	return &PostgresFlashcardRepository{pool: config.Pool}
}

const flashcardColumns = `id, front, back, source, owner_id, generation_id, created_at, updated_at`

// Create inserts a new flashcard owned by the caller
func (r *PostgresFlashcardRepository) Create(ctx context.Context, ident domain.Identity, card *models.Flashcard) error {
	if err := domain.AuthorizeWrite(ident, card.OwnerID); err != nil {
		return err
	}

	query := `
		INSERT INTO flashcards (front, back, source, owner_id, generation_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		card.Front,
		card.Back,
		card.Source,
		card.OwnerID,
		card.GenerationID,
	).Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)

	if err != nil {
		if isPgConstraintError(err) {
			return fmt.Errorf("flashcard violates a storage constraint: %w", domain.ErrValidation)
		}
		if isPgForeignKeyError(err) {
			if card.GenerationID != nil {
				return fmt.Errorf("generation %d does not exist: %w", *card.GenerationID, domain.ErrConflict)
			}
			return fmt.Errorf("owner %s is not provisioned: %w", card.OwnerID, domain.ErrConflict)
		}
		return fmt.Errorf("create flashcard: %w", err)
	}

	return nil
}

// GetByID retrieves a flashcard scoped to the caller's ownership
func (r *PostgresFlashcardRepository) GetByID(ctx context.Context, ident domain.Identity, id int64) (*models.Flashcard, error) {
	if !ident.Authenticated() {
		return nil, fmt.Errorf("flashcard %d: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM flashcards
		WHERE id = $1 AND owner_id = $2
	`, flashcardColumns)

	executor := GetExecutor(ctx, r.pool)
	card, err := scanFlashcard(executor.QueryRow(ctx, query, id, ident.UserID))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("flashcard %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get flashcard: %w", err)
	}

	return card, nil
}

// List retrieves all flashcards the caller owns, newest first. Anonymous
// callers see an empty set rather than an error.
func (r *PostgresFlashcardRepository) List(ctx context.Context, ident domain.Identity) ([]models.Flashcard, error) {
	if !ident.Authenticated() {
		return []models.Flashcard{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM flashcards
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`, flashcardColumns)

	return r.queryMany(ctx, query, ident.UserID)
}

// ListByGeneration retrieves the caller's flashcards linked to a generation
func (r *PostgresFlashcardRepository) ListByGeneration(ctx context.Context, ident domain.Identity, generationID int64) ([]models.Flashcard, error) {
	if !ident.Authenticated() {
		return []models.Flashcard{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM flashcards
		WHERE owner_id = $1 AND generation_id = $2
		ORDER BY created_at DESC, id DESC
	`, flashcardColumns)

	return r.queryMany(ctx, query, ident.UserID, generationID)
}

// Update applies partial content changes and stamps updated_at server-side
// in the same statement, so the stamp is atomic with the write and any
// caller-supplied timestamp is ignored by construction.
func (r *PostgresFlashcardRepository) Update(ctx context.Context, ident domain.Identity, id int64, upd repositories.FlashcardUpdate) (*models.Flashcard, error) {
	if !ident.Authenticated() {
		return nil, &domain.UnauthorizedError{Message: "authentication required"}
	}

	query := fmt.Sprintf(`
		UPDATE flashcards
		SET front = COALESCE($1, front),
		    back = COALESCE($2, back),
		    updated_at = now()
		WHERE id = $3 AND owner_id = $4
		RETURNING %s
	`, flashcardColumns)

	executor := GetExecutor(ctx, r.pool)
	card, err := scanFlashcard(executor.QueryRow(ctx, query, upd.Front, upd.Back, id, ident.UserID))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("flashcard %d: %w", id, domain.ErrNotFound)
		}
		if isPgConstraintError(err) {
			return nil, fmt.Errorf("flashcard violates a storage constraint: %w", domain.ErrValidation)
		}
		return nil, fmt.Errorf("update flashcard: %w", err)
	}

	return card, nil
}

// Delete removes a flashcard the caller owns
func (r *PostgresFlashcardRepository) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	if !ident.Authenticated() {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}

	query := `
		DELETE FROM flashcards
		WHERE id = $1 AND owner_id = $2
	`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, ident.UserID)
	if err != nil {
		return fmt.Errorf("delete flashcard: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *PostgresFlashcardRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]models.Flashcard, error) {
	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	defer rows.Close()

	cards := []models.Flashcard{}
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, *card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flashcards: %w", err)
	}

	return cards, nil
}

func scanFlashcard(row rowScanner) (*models.Flashcard, error) {
	var card models.Flashcard
	err := row.Scan(
		&card.ID,
		&card.Front,
		&card.Back,
		&card.Source,
		&card.OwnerID,
		&card.GenerationID,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}
