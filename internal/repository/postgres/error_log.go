package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tenfold/internal/domain"
	"tenfold/internal/domain/models"
	"tenfold/internal/domain/repositories"
)

// PostgresErrorLogRepository implements the ErrorLogRepository interface
type PostgresErrorLogRepository struct {
	pool *pgxpool.Pool
}

// NewErrorLogRepository creates a new error log repository
func NewErrorLogRepository(config *RepositoryConfig) repositories.ErrorLogRepository {
	return &PostgresErrorLogRepository{pool: config.Pool}
}

// Create inserts a new error log owned by the caller
func (r *PostgresErrorLogRepository) Create(ctx context.Context, ident domain.Identity, log *models.GenerationErrorLog) error {
	if err := domain.AuthorizeWrite(ident, log.OwnerID); err != nil {
		return err
	}

	query := `
		INSERT INTO generation_error_logs (owner_id, model, source_text_hash,
			source_text_length, error_code, error_message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		log.OwnerID,
		log.Model,
		log.SourceTextHash,
		log.SourceTextLength,
		log.ErrorCode,
		log.ErrorMessage,
	).Scan(&log.ID, &log.CreatedAt)

	if err != nil {
		if isPgConstraintError(err) {
			return fmt.Errorf("error log violates a storage constraint: %w", domain.ErrValidation)
		}
		if isPgForeignKeyError(err) {
			return fmt.Errorf("owner %s is not provisioned: %w", log.OwnerID, domain.ErrConflict)
		}
		return fmt.Errorf("create error log: %w", err)
	}

	return nil
}

// List retrieves all error logs the caller owns, newest first. Anonymous
// callers see an empty set rather than an error.
func (r *PostgresErrorLogRepository) List(ctx context.Context, ident domain.Identity) ([]models.GenerationErrorLog, error) {
	if !ident.Authenticated() {
		return []models.GenerationErrorLog{}, nil
	}

	query := `
		SELECT id, owner_id, model, source_text_hash, source_text_length,
			error_code, error_message, created_at
		FROM generation_error_logs
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("list error logs: %w", err)
	}
	defer rows.Close()

	logs := []models.GenerationErrorLog{}
	for rows.Next() {
		var entry models.GenerationErrorLog
		err := rows.Scan(
			&entry.ID,
			&entry.OwnerID,
			&entry.Model,
			&entry.SourceTextHash,
			&entry.SourceTextLength,
			&entry.ErrorCode,
			&entry.ErrorMessage,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan error log: %w", err)
		}
		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate error logs: %w", err)
	}

	return logs, nil
}

// Delete removes an error log the caller owns
func (r *PostgresErrorLogRepository) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	if !ident.Authenticated() {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}

	query := `
		DELETE FROM generation_error_logs
		WHERE id = $1 AND owner_id = $2
	`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, ident.UserID)
	if err != nil {
		return fmt.Errorf("delete error log: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("error log %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
