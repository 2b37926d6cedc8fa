package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
	"tenfold/internal/domain/repositories"
)

// PostgresGenerationRepository implements the GenerationRepository
// interface. Every statement carries the ownership predicate, so the
// isolation guarantee holds for any caller that reaches this layer.
type PostgresGenerationRepository struct {
	pool *pgxpool.Pool
}

// NewGenerationRepository creates a new generation repository
func NewGenerationRepository(config *RepositoryConfig) repositories.GenerationRepository {
	return &PostgresGenerationRepository{pool: config.Pool}
}

const generationColumns = `id, owner_id, model, generated_count, accepted_unedited_count,
		accepted_edited_count, source_text_hash, source_text_length,
		generation_duration_ms, created_at, updated_at`

// Create inserts a new generation owned by the caller
func (r *PostgresGenerationRepository) Create(ctx context.Context, ident domain.Identity, gen *models.Generation) error {
	if err := domain.AuthorizeWrite(ident, gen.OwnerID); err != nil {
		return err
	}

	query := `
		INSERT INTO generations (owner_id, model, generated_count, source_text_hash,
			source_text_length, generation_duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		gen.OwnerID,
		gen.Model,
		gen.GeneratedCount,
		gen.SourceTextHash,
		gen.SourceTextLength,
		gen.GenerationDurationMs,
	).Scan(&gen.ID, &gen.CreatedAt, &gen.UpdatedAt)

	if err != nil {
		if isPgConstraintError(err) {
			return fmt.Errorf("generation violates a storage constraint: %w", domain.ErrValidation)
		}
		if isPgForeignKeyError(err) {
			return fmt.Errorf("owner %s is not provisioned: %w", gen.OwnerID, domain.ErrConflict)
		}
		return fmt.Errorf("create generation: %w", err)
	}

	return nil
}

// GetByID retrieves a generation scoped to the caller's ownership
func (r *PostgresGenerationRepository) GetByID(ctx context.Context, ident domain.Identity, id int64) (*models.Generation, error) {
	if !ident.Authenticated() {
		return nil, fmt.Errorf("generation %d: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM generations
		WHERE id = $1 AND owner_id = $2
	`, generationColumns)

	executor := GetExecutor(ctx, r.pool)
	gen, err := scanGeneration(executor.QueryRow(ctx, query, id, ident.UserID))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("generation %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get generation: %w", err)
	}

	return gen, nil
}

// List retrieves all generations the caller owns, newest first. Anonymous
// callers see an empty set rather than an error.
func (r *PostgresGenerationRepository) List(ctx context.Context, ident domain.Identity) ([]models.Generation, error) {
	if !ident.Authenticated() {
		return []models.Generation{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM generations
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`, generationColumns)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer rows.Close()

	generations := []models.Generation{}
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		generations = append(generations, *gen)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generations: %w", err)
	}

	return generations, nil
}

// UpdateAcceptedCounts records review results. The timestamp is stamped in
// the same statement as the change, so no observer can see one without the
// other. Zero rows matched means the row is absent or not the caller's.
func (r *PostgresGenerationRepository) UpdateAcceptedCounts(ctx context.Context, ident domain.Identity, id int64, acceptedUnedited, acceptedEdited *int) (*models.Generation, error) {
	if !ident.Authenticated() {
		return nil, &domain.UnauthorizedError{Message: "authentication required"}
	}

	query := fmt.Sprintf(`
		UPDATE generations
		SET accepted_unedited_count = COALESCE($1, accepted_unedited_count),
		    accepted_edited_count = COALESCE($2, accepted_edited_count),
		    updated_at = now()
		WHERE id = $3 AND owner_id = $4
		RETURNING %s
	`, generationColumns)

	executor := GetExecutor(ctx, r.pool)
	gen, err := scanGeneration(executor.QueryRow(ctx, query, acceptedUnedited, acceptedEdited, id, ident.UserID))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("generation %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update generation accepted counts: %w", err)
	}

	return gen, nil
}

// Delete removes a generation the caller owns. The flashcards it produced
// keep existing; storage clears their generation reference (ON DELETE SET
// NULL) in the same transaction as the delete.
func (r *PostgresGenerationRepository) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	if !ident.Authenticated() {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}

	query := `
		DELETE FROM generations
		WHERE id = $1 AND owner_id = $2
	`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, ident.UserID)
	if err != nil {
		return fmt.Errorf("delete generation: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("generation %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGeneration(row rowScanner) (*models.Generation, error) {
	var gen models.Generation
	err := row.Scan(
		&gen.ID,
		&gen.OwnerID,
		&gen.Model,
		&gen.GeneratedCount,
		&gen.AcceptedUneditedCount,
		&gen.AcceptedEditedCount,
		&gen.SourceTextHash,
		&gen.SourceTextLength,
		&gen.GenerationDurationMs,
		&gen.CreatedAt,
		&gen.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &gen, nil
}
