package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the API cares about.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
)

// IsUniqueViolation reports whether err is a unique-constraint error,
// optionally on a specific named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != CodeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// error (e.g. loading a join table before its referenced tables).
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeForeignKeyViolation
}

// DescribeConstraintError translates the driver's error codes into
// a message an operator can act on. Returns err unchanged when it is not
// a recognized constraint error.
func DescribeConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case CodeUniqueViolation:
		return fmt.Errorf("duplicate value violates unique constraint %q: %s",
			pgErr.ConstraintName, pgErr.Detail)
	case CodeForeignKeyViolation:
		return fmt.Errorf("referential integrity violation on %q (load referenced tables first): %s",
			pgErr.ConstraintName, pgErr.Detail)
	case CodeCheckViolation:
		return fmt.Errorf("check constraint %q failed: %s", pgErr.ConstraintName, pgErr.Detail)
	default:
		return err
	}
}
