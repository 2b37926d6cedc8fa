package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isPgNoRowsError checks if error is a "no rows" error
func isPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isPgForeignKeyError checks if error is a foreign key violation
func isPgForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23503 = foreign_key_violation
		return pgErr.Code == "23503"
	}
	return false
}

// isPgConstraintError checks if error is a CHECK or length constraint
// violation, i.e. the row itself is invalid independent of other rows
func isPgConstraintError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23514 = check_violation, 22001 = string_data_right_truncation,
		// 23502 = not_null_violation
		return pgErr.Code == "23514" || pgErr.Code == "22001" || pgErr.Code == "23502"
	}
	return false
}
