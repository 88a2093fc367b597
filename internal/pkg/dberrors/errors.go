package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the store cares about
const (
	CodeCheckViolation   = "23514"
	CodeNotNullViolation = "23502"
)

// IsCheckViolation reports whether err is a CHECK constraint violation,
// returning the violated constraint name.
func IsCheckViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == CodeCheckViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// IsNotNullViolation reports whether err is a NOT NULL violation, returning the column.
func IsNotNullViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == CodeNotNullViolation {
		return pgErr.ColumnName, true
	}
	return "", false
}
