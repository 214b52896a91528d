// Package store holds the persistence collaborators. Handlers receive the
// interfaces below instead of touching a process-global DB handle, so tests
// can swap in a sqlmock-backed pool per case.
package store

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when no row matches the given filter. For
	// meals the filter always pairs the meal id with the owner id, so a
	// meal belonging to another user is indistinguishable from a missing
	// one.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
