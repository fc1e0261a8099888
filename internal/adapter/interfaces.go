// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the brand coach server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. Non-2xx answers are mapped to the
// sentinel errors in errors.go by mapHTTPError, and failures without an
// answer to [ErrServerUnreachable], so callers can tell "offline" from
// "rejected" with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/idea-brand-coach/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the brand coach server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)
	// Token returns the stored bearer token or an empty string.
	Token() string

	// Ping is the connectivity probe (GET /api/health).
	Ping(ctx context.Context) error
	// Version returns the server version.
	Version(ctx context.Context) (string, error)

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.Token, error)
	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// GetField returns [ErrNotFound] (wrapped) when no current record exists.
	GetField(ctx context.Context, fieldIdentifier string) (models.FieldRecord, error)
	ListFields(ctx context.Context, category models.FieldCategory) ([]models.FieldRecord, error)
	UpsertField(ctx context.Context, upsert models.FieldUpsert) (models.FieldRecord, error)
	ClearFields(ctx context.Context) (int64, error)

	ListSessions(ctx context.Context, chatbotType models.ChatbotType) ([]models.ChatSession, error)
	CreateSession(ctx context.Context, req models.CreateSessionRequest) (models.ChatSession, error)
	GetSession(ctx context.Context, sessionID string) (models.ChatSession, error)
	UpdateSession(ctx context.Context, sessionID string, update models.SessionUpdate) (models.ChatSession, error)
	DeleteSession(ctx context.Context, sessionID string) error

	ListMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, sessionID string, req models.SendMessageRequest) (models.SendMessageResponse, error)
	ClearMessages(ctx context.Context, sessionID string) error
	GenerateTitle(ctx context.Context, req models.TitleRequest) (models.TitleResponse, error)
}
