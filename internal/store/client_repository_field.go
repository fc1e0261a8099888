package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/logger"
)

type localFieldRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalFieldRepository(db *DB, logger *logger.Logger) LocalFieldRepository {
	return &localFieldRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localFieldRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := l.DB.QueryRowContext(ctx, getLocalValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLocalValueNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localFieldRepository.Get").
			Str("key", key).
			Msg("failed to read local value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (l *localFieldRepository) Set(ctx context.Context, key, value string) error {
	if _, err := l.DB.ExecContext(ctx, setLocalValue, key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localFieldRepository.Set").
			Str("key", key).
			Msg("failed to write local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localFieldRepository) Delete(ctx context.Context, key string) error {
	if _, err := l.DB.ExecContext(ctx, deleteLocalValue, key); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localFieldRepository.Delete").
			Str("key", key).
			Msg("failed to delete local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localFieldRepository) DeletePrefix(ctx context.Context, prefix string) (int64, error) {
	res, err := l.DB.ExecContext(ctx, deleteLocalPrefix, prefix, prefix)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localFieldRepository.DeletePrefix").
			Str("prefix", prefix).
			Msg("failed to delete local values")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return res.RowsAffected()
}
