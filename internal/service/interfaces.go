// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/idea-brand-coach/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Health fails when the database does not answer.
	Health(ctx context.Context) error
}

// FieldService is the Remote Store surface for brand fields. Every call is
// scoped to a single user.
type FieldService interface {
	Upsert(ctx context.Context, upsert models.FieldUpsert) (models.FieldRecord, error)
	Get(ctx context.Context, userID int64, fieldIdentifier string) (models.FieldRecord, error)
	List(ctx context.Context, userID int64, category models.FieldCategory) ([]models.FieldRecord, error)
	Clear(ctx context.Context, userID int64) (int64, error)
}

// ChatService owns sessions, their messages and the assistant round-trip.
type ChatService interface {
	CreateSession(ctx context.Context, userID int64, req models.CreateSessionRequest) (models.ChatSession, error)
	ListSessions(ctx context.Context, userID int64, chatbotType models.ChatbotType) ([]models.ChatSession, error)
	GetSession(ctx context.Context, userID int64, sessionID string) (models.ChatSession, error)
	UpdateSession(ctx context.Context, userID int64, sessionID string, update models.SessionUpdate) (models.ChatSession, error)
	DeleteSession(ctx context.Context, userID int64, sessionID string) error

	ListMessages(ctx context.Context, userID int64, sessionID string) ([]models.ChatMessage, error)
	// SendMessage stores the user message and the assistant answer together.
	// When the assistant fails nothing is stored.
	SendMessage(ctx context.Context, userID int64, sessionID string, req models.SendMessageRequest) (models.SendMessageResponse, error)
	ClearMessages(ctx context.Context, userID int64, sessionID string) error

	// GenerateTitle returns an empty title when none could be produced.
	GenerateTitle(ctx context.Context, req models.TitleRequest) (models.TitleResponse, error)
}

// KnowledgeService pushes changed field records to the knowledge index.
type KnowledgeService interface {
	Enabled() bool
	// SyncPending uploads one batch and reports how many records were synced.
	SyncPending(ctx context.Context) (int, error)
}
