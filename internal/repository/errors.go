package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// IsDuplicate reports whether err is a unique violation, raised when a
// tracking code or username is already taken.
func IsDuplicate(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == uniqueViolation
}

// IsNotFound reports whether the query matched no rows.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
