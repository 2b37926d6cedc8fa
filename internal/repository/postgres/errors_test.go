package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsPgNoRowsError(t *testing.T) {
	if !isPgNoRowsError(pgx.ErrNoRows) {
		t.Error("pgx.ErrNoRows not recognized")
	}
	if !isPgNoRowsError(fmt.Errorf("scan row: %w", pgx.ErrNoRows)) {
		t.Error("wrapped pgx.ErrNoRows not recognized")
	}
	if isPgNoRowsError(errors.New("connection refused")) {
		t.Error("unrelated error reported as no rows")
	}
}

func TestIsPgForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "flashcards_generation_id_fkey"}
	if !isPgForeignKeyError(fk) {
		t.Error("foreign key violation not recognized")
	}
	if !isPgForeignKeyError(fmt.Errorf("insert flashcard: %w", fk)) {
		t.Error("wrapped foreign key violation not recognized")
	}
	if isPgForeignKeyError(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation misreported as foreign key violation")
	}
}

func TestIsPgConstraintError(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"23514", true}, // check_violation
		{"22001", true}, // string_data_right_truncation
		{"23502", true}, // not_null_violation
		{"23503", false},
		{"23505", false},
	}

	for _, tt := range tests {
		err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: tt.code})
		if got := isPgConstraintError(err); got != tt.want {
			t.Errorf("code %s: got %v, want %v", tt.code, got, tt.want)
		}
	}

	if isPgConstraintError(errors.New("not a pg error")) {
		t.Error("plain error misreported as constraint violation")
	}
}
