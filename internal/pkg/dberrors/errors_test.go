package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsCheckViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeCheckViolation, ConstraintName: "students_created_by_check"})

	name, ok := IsCheckViolation(err)
	if !ok || name != "students_created_by_check" {
		t.Fatalf("expected check violation, got %q %v", name, ok)
	}
	if _, ok := IsCheckViolation(errors.New("plain")); ok {
		t.Fatalf("plain error must not be a check violation")
	}
}

func TestIsNotNullViolation(t *testing.T) {
	err := &pgconn.PgError{Code: CodeNotNullViolation, ColumnName: "full_name"}
	column, ok := IsNotNullViolation(err)
	if !ok || column != "full_name" {
		t.Fatalf("expected not-null violation on full_name, got %q %v", column, ok)
	}
}
