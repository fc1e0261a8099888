package service

import (
	"context"

	"github.com/MKhiriev/idea-brand-coach/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService registers and logs in against the server and keeps the
// resulting session in the local store.
type ClientAuthService interface {
	// Register creates the account and logs in with it.
	Register(ctx context.Context, user models.User) (models.LocalSession, error)

	// Login authenticates and persists the token locally.
	Login(ctx context.Context, user models.User) (models.LocalSession, error)

	// Restore loads the saved session and hands its token to the adapter.
	// Returns ErrNotLoggedIn when there is none.
	Restore(ctx context.Context) (models.LocalSession, error)

	// Logout forgets the local session.
	Logout(ctx context.Context) error
}

// FieldRemote is the part of the server adapter the field engines use.
type FieldRemote interface {
	Ping(ctx context.Context) error
	GetField(ctx context.Context, fieldIdentifier string) (models.FieldRecord, error)
	UpsertField(ctx context.Context, upsert models.FieldUpsert) (models.FieldRecord, error)
	ClearFields(ctx context.Context) (int64, error)
}

// ChatRemote is the part of the server adapter the chat session store uses.
type ChatRemote interface {
	ListSessions(ctx context.Context, chatbotType models.ChatbotType) ([]models.ChatSession, error)
	CreateSession(ctx context.Context, req models.CreateSessionRequest) (models.ChatSession, error)
	GetSession(ctx context.Context, sessionID string) (models.ChatSession, error)
	UpdateSession(ctx context.Context, sessionID string, update models.SessionUpdate) (models.ChatSession, error)
	DeleteSession(ctx context.Context, sessionID string) error

	ListMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, sessionID string, req models.SendMessageRequest) (models.SendMessageResponse, error)
	ClearMessages(ctx context.Context, sessionID string) error
}

// TitleGenerator produces a title for a fresh session. An empty title means
// none could be generated.
type TitleGenerator interface {
	GenerateTitle(ctx context.Context, req models.TitleRequest) (models.TitleResponse, error)
}

// FieldApplier receives field values the assistant extracted from a chat.
type FieldApplier interface {
	ApplyExtracted(ctx context.Context, userID int64, fields []models.ExtractedField) error
}

// Notifier surfaces a message to the user.
type Notifier interface {
	Notify(n models.Notification)
}
