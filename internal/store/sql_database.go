package store

import (
	"database/sql"

	"github.com/MKhiriev/idea-brand-coach/internal/logger"
)

// DB wraps a database handle with the dialect specific pieces the
// repositories need.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB) error
}

// Migrate applies the embedded schema matching the connected dialect.
func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}

// retryable reports whether err is worth another attempt.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
