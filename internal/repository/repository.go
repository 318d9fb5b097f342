package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// IsDuplicate detects unique constraint violation.
func IsDuplicate(err error) bool {
	return db.IsUniqueViolation(err)
}

func nullableID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
