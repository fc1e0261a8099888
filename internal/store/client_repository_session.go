package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession replaces the remembered identity.
func (l *localSessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	if _, err := l.DB.ExecContext(ctx, saveLocalSession, session.UserID, session.Token); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.LocalSession, error) {
	var session models.LocalSession
	err := l.DB.QueryRowContext(ctx, loadLocalSession).Scan(&session.UserID, &session.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrNoLocalSession
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.LoadSession").Msg("failed to load local session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return session, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearLocalSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.ClearSession").Msg("failed to clear local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
