// Package postgres implements the repository interfaces against PostgreSQL
// using database/sql with parameterized queries.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"docuflota/internal/model"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint.
const uniqueViolation = "23505"

// translateErr maps driver-level failures to the model error taxonomy.
// Unique-key violations become ConflictError; anything else becomes a
// StorageError tagged with the operation name.
func translateErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		constraint := pgErr.ConstraintName
		if constraint == "" {
			constraint = "unique key"
		}
		return &model.ConflictError{Constraint: constraint}
	}
	return &model.StorageError{Op: op, Err: err}
}
