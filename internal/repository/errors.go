package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"volunteer-dispatch/internal/apperr"
)

// IsDuplicate - signals that the error is a duplicate key violation.
func IsDuplicate(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23505"
}

// IsNotFound - signals that the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// mapErr translates driver errors into apperr sentinels.
func mapErr(op string, id int64, err error) error {
	switch {
	case IsNotFound(err):
		return fmt.Errorf("%s %d: %w", op, id, apperr.ErrNotFound)
	case IsDuplicate(err):
		return fmt.Errorf("%s %d: %w", op, id, apperr.ErrAlreadyExists)
	default:
		return fmt.Errorf("%s %d: %w", op, id, err)
	}
}

// expectOne reports apperr.ErrNotFound when a write touched no row.
func expectOne(op string, id int64, ct pgconn.CommandTag) error {
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", op, id, apperr.ErrNotFound)
	}
	return nil
}
