// Package store persists tracker entities. Postgres is the production backend;
// Memory mirrors its ordering, uniqueness and reference rules for demos and tests.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrReference = errors.New("referenced record does not exist")
)

const (
	pgForeignKeyViolation = "23503"
	dayLayout             = "2006-01-02"
)

func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%s: %w (%s)", op, ErrReference, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// dayKey renders the calendar day of t in t's own location.
func dayKey(t time.Time) string {
	return t.Format(dayLayout)
}
