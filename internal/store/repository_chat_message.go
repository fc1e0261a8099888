// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/utils"
	"github.com/MKhiriev/idea-brand-coach/models"
)

type chatMessageRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

func NewChatMessageRepository(db *DB, logger *logger.Logger) ChatMessageRepository {
	logger.Debug().Msg("creating chat message repository")
	return &chatMessageRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (r *chatMessageRepository) ListMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listMessages, sessionID)
	if err != nil {
		if mapped := constraintError(err, ErrSessionNotFound); mapped != nil {
			return nil, mapped
		}
		log.Err(err).Str("func", "chatMessageRepository.ListMessages").Str("session_id", sessionID).Msg("failed to list messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var (
			msg      models.ChatMessage
			role     string
			metadata []byte
		)
		if err = rows.Scan(&msg.ID, &msg.SessionID, &role, &msg.Content, &metadata, &msg.CreatedAt); err != nil {
			log.Err(err).Str("func", "chatMessageRepository.ListMessages").Msg("failed to scan message")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		msg.Role = models.Role(role)

		if len(metadata) > 0 {
			msg.Metadata = new(models.MessageMetadata)
			if err = json.Unmarshal(metadata, msg.Metadata); err != nil {
				log.Err(err).Str("func", "chatMessageRepository.ListMessages").Str("message_id", msg.ID).Msg("failed to decode metadata")
				return nil, fmt.Errorf("%w: %w", ErrDecodingMetadata, err)
			}
		}
		messages = append(messages, msg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

// AppendTurn inserts messages in the given order and bumps the session's
// updated_at. Nothing is written when any insert fails. The returned
// messages carry their ids and creation times.
func (r *chatMessageRepository) AppendTurn(ctx context.Context, sessionID string, messages ...models.ChatMessage) ([]models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "chatMessageRepository.AppendTurn").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertMessage)
	if err != nil {
		log.Err(err).Str("func", "chatMessageRepository.AppendTurn").Msg("failed to prepare statement")
		return nil, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	saved := make([]models.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		msg.ID = r.ids.Generate()
		msg.SessionID = sessionID

		metadata, err := encodeMetadata(msg.Metadata)
		if err != nil {
			return nil, err
		}

		if err = stmt.QueryRowContext(ctx, msg.ID, sessionID, string(msg.Role), msg.Content, metadata).Scan(&msg.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "chatMessageRepository.AppendTurn").
				Str("session_id", sessionID).
				Str("role", string(msg.Role)).
				Msg("failed to insert message")
			if mapped := constraintError(err, ErrSessionNotFound); mapped != nil {
				return nil, mapped
			}
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		saved = append(saved, msg)
	}

	if _, err = tx.ExecContext(ctx, touchSession, sessionID); err != nil {
		log.Err(err).Str("func", "chatMessageRepository.AppendTurn").Str("session_id", sessionID).Msg("failed to touch session")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "chatMessageRepository.AppendTurn").Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

func (r *chatMessageRepository) ClearMessages(ctx context.Context, sessionID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, clearMessages, sessionID)
	if err != nil {
		if mapped := constraintError(err, ErrSessionNotFound); mapped != nil {
			return 0, mapped
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "chatMessageRepository.ClearMessages").
			Str("session_id", sessionID).
			Msg("failed to clear messages")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

// encodeMetadata returns the JSON document for the metadata column, or nil
// for SQL NULL.
func encodeMetadata(metadata *models.MessageMetadata) (any, error) {
	if metadata == nil {
		return nil, nil
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return string(raw), nil
}
