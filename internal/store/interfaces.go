// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/idea-brand-coach/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists brand coach accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// FieldRepository is the remote store of brand field records.
type FieldRepository interface {
	// UpsertCurrent replaces the current record of (UserID, FieldIdentifier)
	// or inserts one when none exists.
	UpsertCurrent(ctx context.Context, upsert models.FieldUpsert) (models.FieldRecord, error)
	// GetCurrent returns [ErrFieldNotFound] when there is no current record.
	GetCurrent(ctx context.Context, userID int64, fieldIdentifier string) (models.FieldRecord, error)
	// ListCurrent lists current records. An empty category means all.
	ListCurrent(ctx context.Context, userID int64, category models.FieldCategory) ([]models.FieldRecord, error)
	// ClearFields hard-deletes every record of the user, current or not.
	ClearFields(ctx context.Context, userID int64) (int64, error)

	// ListUnsynced returns current records not yet pushed to the knowledge
	// index, oldest change first.
	ListUnsynced(ctx context.Context, limit int) ([]models.FieldRecord, error)
	// MarkSynced records a successful push. It is a no-op when the record
	// changed after it was read.
	MarkSynced(ctx context.Context, record models.FieldRecord, externalFileID string, syncedAt time.Time) error
}

// ChatSessionRepository stores conversation threads. Every method except
// CreateSession is scoped by the owning user.
type ChatSessionRepository interface {
	CreateSession(ctx context.Context, session models.ChatSession) (models.ChatSession, error)
	ListSessions(ctx context.Context, userID int64, chatbotType models.ChatbotType) ([]models.ChatSession, error)
	GetSession(ctx context.Context, sessionID string, userID int64) (models.ChatSession, error)
	UpdateTitle(ctx context.Context, sessionID string, userID int64, title string) (models.ChatSession, error)
	DeleteSession(ctx context.Context, sessionID string, userID int64) error
}

// ChatMessageRepository stores the turns of a session.
type ChatMessageRepository interface {
	// ListMessages returns messages in ascending creation order.
	ListMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	// AppendTurn inserts messages in order and bumps the session's
	// updated_at, all in one transaction.
	AppendTurn(ctx context.Context, sessionID string, messages ...models.ChatMessage) ([]models.ChatMessage, error)
	ClearMessages(ctx context.Context, sessionID string) (int64, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces primary keys for new rows.
type IDGenerator interface {
	Generate() string
}
