// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/utils"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/jackc/pgerrcode"
)

// maxUpsertAttempts bounds retries of a field upsert. Two writers racing on
// the first insert of a field make one of them hit the partial unique index;
// the retry then takes the update path.
const maxUpsertAttempts = 3

// fieldRepository is the PostgreSQL-backed implementation of [FieldRepository].
type fieldRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

func NewFieldRepository(db *DB, logger *logger.Logger) FieldRepository {
	logger.Debug().Msg("creating field repository")
	return &fieldRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// UpsertCurrent replaces the content of the current record in place, or
// inserts a new current record when the user has none for the identifier.
// Both paths run inside one transaction.
func (r *fieldRepository) UpsertCurrent(ctx context.Context, upsert models.FieldUpsert) (models.FieldRecord, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= maxUpsertAttempts; attempt++ {
		record, err := r.upsertOnce(ctx, upsert)
		if err == nil {
			return record, nil
		}
		lastErr = err

		if postgresError(err) != pgerrcode.UniqueViolation && !r.db.retryable(err) {
			break
		}
		log.Warn().Err(err).
			Str("func", "fieldRepository.UpsertCurrent").
			Int64("user_id", upsert.UserID).
			Str("field_identifier", upsert.FieldIdentifier).
			Int("attempt", attempt).
			Msg("retrying field upsert")
	}

	log.Err(lastErr).
		Str("func", "fieldRepository.UpsertCurrent").
		Int64("user_id", upsert.UserID).
		Str("field_identifier", upsert.FieldIdentifier).
		Msg("failed to upsert field")

	if mapped := constraintError(lastErr, ErrNoUserWasFound); mapped != nil {
		return models.FieldRecord{}, mapped
	}
	return models.FieldRecord{}, lastErr
}

func (r *fieldRepository) upsertOnce(ctx context.Context, upsert models.FieldUpsert) (models.FieldRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.FieldRecord{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	record, err := scanField(tx.QueryRowContext(ctx, replaceCurrentField,
		upsert.UserID,
		upsert.FieldIdentifier,
		string(upsert.Category),
		upsert.Content,
	))
	if errors.Is(err, sql.ErrNoRows) {
		record, err = scanField(tx.QueryRowContext(ctx, insertCurrentField,
			r.ids.Generate(),
			upsert.UserID,
			upsert.FieldIdentifier,
			string(upsert.Category),
			upsert.Content,
		))
	}
	if err != nil {
		return models.FieldRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return models.FieldRecord{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return record, nil
}

func (r *fieldRepository) GetCurrent(ctx context.Context, userID int64, fieldIdentifier string) (models.FieldRecord, error) {
	log := logger.FromContext(ctx)

	record, err := scanField(r.db.QueryRowContext(ctx, getCurrentField, userID, fieldIdentifier))
	if errors.Is(err, sql.ErrNoRows) {
		return models.FieldRecord{}, ErrFieldNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "fieldRepository.GetCurrent").
			Int64("user_id", userID).
			Str("field_identifier", fieldIdentifier).
			Msg("failed to query current field")
		return models.FieldRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

func (r *fieldRepository) ListCurrent(ctx context.Context, userID int64, category models.FieldCategory) ([]models.FieldRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFieldsQuery(userID, category)
	if err != nil {
		log.Err(err).Str("func", "fieldRepository.ListCurrent").Msg("failed to build query")
		return nil, err
	}

	records, err := r.queryFields(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fieldRepository.ListCurrent").
			Int64("user_id", userID).
			Str("category", string(category)).
			Msg("failed to list fields")
		return nil, err
	}

	return records, nil
}

func (r *fieldRepository) ClearFields(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, clearFields, userID)
	if err != nil {
		log.Err(err).Str("func", "fieldRepository.ClearFields").Int64("user_id", userID).Msg("failed to clear fields")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().Str("func", "fieldRepository.ClearFields").Int64("user_id", userID).Int64("deleted", deleted).Msg("fields cleared")
	return deleted, nil
}

func (r *fieldRepository) ListUnsynced(ctx context.Context, limit int) ([]models.FieldRecord, error) {
	records, err := r.queryFields(ctx, listUnsyncedFields, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fieldRepository.ListUnsynced").Msg("failed to list unsynced fields")
		return nil, err
	}
	return records, nil
}

func (r *fieldRepository) MarkSynced(ctx context.Context, record models.FieldRecord, externalFileID string, syncedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, markFieldSynced, record.ID, externalFileID, syncedAt, record.UpdatedAt)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fieldRepository.MarkSynced").
			Str("id", record.ID).
			Msg("failed to mark field synced")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// zero rows: the field changed while it was uploaded, the next run picks it up again
	if n, _ := res.RowsAffected(); n == 0 {
		logger.FromContext(ctx).Debug().
			Str("func", "fieldRepository.MarkSynced").
			Str("id", record.ID).
			Msg("field changed during upload")
	}
	return nil
}

func (r *fieldRepository) queryFields(ctx context.Context, query string, args ...any) ([]models.FieldRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.FieldRecord, 0)
	for rows.Next() {
		record, err := scanField(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanField(row rowScanner) (models.FieldRecord, error) {
	var (
		record         models.FieldRecord
		category       string
		externalFileID sql.NullString
		syncedAt       sql.NullTime
	)

	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.FieldIdentifier,
		&category,
		&record.Content,
		&record.IsCurrent,
		&record.CreatedAt,
		&record.UpdatedAt,
		&externalFileID,
		&syncedAt,
	)
	if err != nil {
		return models.FieldRecord{}, err
	}

	record.Category = models.FieldCategory(category)
	if externalFileID.Valid {
		record.ExternalFileID = &externalFileID.String
	}
	if syncedAt.Valid {
		record.SyncedAt = &syncedAt.Time
	}
	return record, nil
}
