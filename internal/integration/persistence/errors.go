package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// pgUniqueViolation is the SQLSTATE for unique_violation.
	pgUniqueViolation = "23505"

	// SQLite extended result codes.
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// codedError is implemented by the SQLite driver's error type.
type codedError interface {
	Code() int
}

// isUniqueViolation reports whether err is a uniqueness conflict, using the
// structured codes of the drivers rather than their messages.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var coded codedError
	if errors.As(err, &coded) {
		switch coded.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return true
		}
	}

	return false
}
