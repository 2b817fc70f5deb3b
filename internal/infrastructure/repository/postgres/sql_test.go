package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := fmt.Errorf("insert team: %w", &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other pq codes", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "42P01"}) {
			t.Fatalf("expected false for undefined table")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(fmt.Errorf("pq: duplicate key")) {
			t.Fatalf("expected false for non pq error")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(sql.ErrConnDone) {
		t.Fatalf("expected sql.ErrConnDone not to be not found")
	}
}

func TestNullablePosition(t *testing.T) {
	if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil for null position, got %d", *got)
	}
	got := nullInt64ToIntPtr(sql.NullInt64{Int64: 4, Valid: true})
	if got == nil || *got != 4 {
		t.Fatalf("expected position 4, got %v", got)
	}

	if v := intPtrToNullInt64(nil); v.Valid {
		t.Fatalf("expected invalid null int for nil position")
	}
	position := 2
	if v := intPtrToNullInt64(&position); !v.Valid || v.Int64 != 2 {
		t.Fatalf("unexpected null int: %+v", v)
	}
}
