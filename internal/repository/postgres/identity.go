package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tenfold/internal/domain"
	"tenfold/internal/domain/repositories"
)

// PostgresIdentityRepository implements the IdentityRepository interface.
// The users table mirrors the external identity provider and anchors the
// owner foreign keys; deleting a row here is what triggers the storage
// cascade over generations, flashcards and error logs.
type PostgresIdentityRepository struct {
	pool *pgxpool.Pool
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(config *RepositoryConfig) repositories.IdentityRepository {
	return &PostgresIdentityRepository{pool: config.Pool}
}

// Ensure provisions a mirror row for a verified identity. Idempotent.
func (r *PostgresIdentityRepository) Ensure(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}

	query := `
		INSERT INTO users (id)
		VALUES ($1)
		ON CONFLICT (id) DO NOTHING
	`

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	return nil
}

// Delete removes the caller's own mirror row. The owner foreign keys
// cascade, removing every row the caller owns in the same statement.
func (r *PostgresIdentityRepository) Delete(ctx context.Context, ident domain.Identity) error {
	if !ident.Authenticated() {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}

	query := `
		DELETE FROM users
		WHERE id = $1
	`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, ident.UserID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", ident.UserID, domain.ErrNotFound)
	}

	return nil
}
