package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
)

// ClientStorages groups the client-side repositories backed by one SQLite
// file.
type ClientStorages struct {
	// FieldRepository holds the local field blobs.
	FieldRepository LocalFieldRepository

	// SessionRepository holds the logged in identity.
	SessionRepository LocalSessionRepository

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite file at
// cfg.LocalPath and applies the client migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.LocalPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		FieldRepository:   NewLocalFieldRepository(db, logger),
		SessionRepository: NewLocalSessionRepository(db, logger),
		db:                db,
	}, nil
}

func (s *ClientStorages) Close() error {
	return s.db.Close()
}
