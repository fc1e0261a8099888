// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/utils"
	"github.com/MKhiriev/idea-brand-coach/models"
)

type chatSessionRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

func NewChatSessionRepository(db *DB, logger *logger.Logger) ChatSessionRepository {
	logger.Debug().Msg("creating chat session repository")
	return &chatSessionRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// CreateSession inserts session with a fresh id. Empty Title and
// ConversationType fall back to the defaults.
func (r *chatSessionRepository) CreateSession(ctx context.Context, session models.ChatSession) (models.ChatSession, error) {
	log := logger.FromContext(ctx)

	if session.Title == "" {
		session.Title = models.DefaultSessionTitle
	}
	if session.ConversationType == "" {
		session.ConversationType = models.DefaultConversationType
	}

	created, err := scanSession(r.db.QueryRowContext(ctx, createSession,
		r.ids.Generate(),
		session.UserID,
		string(session.ChatbotType),
		session.Title,
		session.ConversationType,
		session.FieldID,
		session.FieldLabel,
		session.PageContext,
	))
	if err != nil {
		log.Err(err).
			Str("func", "chatSessionRepository.CreateSession").
			Int64("user_id", session.UserID).
			Str("chatbot_type", string(session.ChatbotType)).
			Msg("failed to create chat session")
		if mapped := constraintError(err, ErrNoUserWasFound); mapped != nil {
			return models.ChatSession{}, mapped
		}
		return models.ChatSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *chatSessionRepository) ListSessions(ctx context.Context, userID int64, chatbotType models.ChatbotType) ([]models.ChatSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSessionsQuery(userID, chatbotType)
	if err != nil {
		log.Err(err).Str("func", "chatSessionRepository.ListSessions").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "chatSessionRepository.ListSessions").
			Int64("user_id", userID).
			Str("chatbot_type", string(chatbotType)).
			Msg("failed to list chat sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.ChatSession, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			log.Err(err).Str("func", "chatSessionRepository.ListSessions").Msg("failed to scan chat session")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

// GetSession returns [ErrSessionNotFound] for a missing session, a session
// of another user and an id that is not a UUID.
func (r *chatSessionRepository) GetSession(ctx context.Context, sessionID string, userID int64) (models.ChatSession, error) {
	session, err := scanSession(r.db.QueryRowContext(ctx, getSession, sessionID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChatSession{}, ErrSessionNotFound
	}
	if err != nil {
		if mapped := constraintError(err, ErrSessionNotFound); mapped != nil {
			return models.ChatSession{}, mapped
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "chatSessionRepository.GetSession").
			Str("session_id", sessionID).
			Int64("user_id", userID).
			Msg("failed to get chat session")
		return models.ChatSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

// UpdateTitle sets the title and bumps updated_at. The WHERE clause carries
// both the id and the owner, so a foreign session is reported as not found.
func (r *chatSessionRepository) UpdateTitle(ctx context.Context, sessionID string, userID int64, title string) (models.ChatSession, error) {
	session, err := scanSession(r.db.QueryRowContext(ctx, updateSessionTitle, sessionID, userID, title))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChatSession{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "chatSessionRepository.UpdateTitle").
			Str("session_id", sessionID).
			Int64("user_id", userID).
			Msg("failed to update chat session title")
		if mapped := constraintError(err, ErrSessionNotFound); mapped != nil {
			return models.ChatSession{}, mapped
		}
		return models.ChatSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

// DeleteSession removes the session; its messages go with it through the
// foreign key cascade.
func (r *chatSessionRepository) DeleteSession(ctx context.Context, sessionID string, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteSession, sessionID, userID)
	if err != nil {
		if mapped := constraintError(err, ErrSessionNotFound); mapped != nil {
			return mapped
		}
		log.Err(err).
			Str("func", "chatSessionRepository.DeleteSession").
			Str("session_id", sessionID).
			Msg("failed to delete chat session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func scanSession(row rowScanner) (models.ChatSession, error) {
	var (
		session     models.ChatSession
		chatbotType string
		fieldID     sql.NullString
		fieldLabel  sql.NullString
		pageContext sql.NullString
	)

	err := row.Scan(
		&session.ID,
		&session.UserID,
		&chatbotType,
		&session.Title,
		&session.ConversationType,
		&fieldID,
		&fieldLabel,
		&pageContext,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return models.ChatSession{}, err
	}

	session.ChatbotType = models.ChatbotType(chatbotType)
	session.FieldID = nullableString(fieldID)
	session.FieldLabel = nullableString(fieldLabel)
	session.PageContext = nullableString(pageContext)
	return session, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
