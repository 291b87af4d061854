package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	lockNotAvailableCode     = "55P03"
	deadlockDetectedCode     = "40P01"
	serializationFailureCode = "40001"
)

// IsConcurrencyConflict reports whether err is a Postgres failure caused by
// competing transactions: a lock wait that exceeded lock_timeout, a detected
// deadlock or a serialization failure.
func IsConcurrencyConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case lockNotAvailableCode, deadlockDetectedCode, serializationFailureCode:
		return true
	default:
		return false
	}
}
