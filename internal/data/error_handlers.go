package data

import (
	"database/sql"
	"errors"
	"fmt"

	"feedbackservice/internal/errdefs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

func handleError(err error) error {
	if isNotFound(err) {
		return errdefs.ErrNotFound
	}
	if isCheckViolation(err) {
		return fmt.Errorf("%w: %s", errdefs.ErrInvalidArgument, err.Error())
	}
	return fmt.Errorf("repository error: %w", err)
}
