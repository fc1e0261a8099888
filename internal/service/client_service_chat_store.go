package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/idea-brand-coach/internal/adapter"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/models"
)

// ChatSessionStore is the typed CRUD boundary over the server's session and
// message tables. The server scopes every call by the token owner; userID
// is stamped on the returned sessions.
type ChatSessionStore struct {
	remote ChatRemote
	logger *logger.Logger
}

func NewChatSessionStore(remote ChatRemote, logger *logger.Logger) *ChatSessionStore {
	return &ChatSessionStore{remote: remote, logger: logger}
}

func (s *ChatSessionStore) CreateSession(ctx context.Context, userID int64, chatbotType models.ChatbotType, data *models.SessionCreate) (models.ChatSession, error) {
	req := models.CreateSessionRequest{ChatbotType: chatbotType}
	if data != nil {
		req.SessionCreate = *data
	}

	session, err := s.remote.CreateSession(ctx, req)
	if err != nil {
		return models.ChatSession{}, fmt.Errorf("creating session: %w", mapAdapterError(err))
	}
	session.UserID = userID
	return session, nil
}

// GetSessions lists the sessions of one chatbot type, most recently updated first.
func (s *ChatSessionStore) GetSessions(ctx context.Context, userID int64, chatbotType models.ChatbotType) ([]models.ChatSession, error) {
	sessions, err := s.remote.ListSessions(ctx, chatbotType)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", mapAdapterError(err))
	}

	for i := range sessions {
		sessions[i].UserID = userID
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})
	return sessions, nil
}

// GetSession returns (nil, nil) when the session does not exist.
func (s *ChatSessionStore) GetSession(ctx context.Context, sessionID string, userID int64) (*models.ChatSession, error) {
	session, err := s.remote.GetSession(ctx, sessionID)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", mapAdapterError(err))
	}

	session.UserID = userID
	return &session, nil
}

func (s *ChatSessionStore) UpdateSession(ctx context.Context, sessionID string, userID int64, update models.SessionUpdate) (models.ChatSession, error) {
	session, err := s.remote.UpdateSession(ctx, sessionID, update)
	if err != nil {
		return models.ChatSession{}, fmt.Errorf("updating session: %w", mapAdapterError(err))
	}
	session.UserID = userID
	return session, nil
}

func (s *ChatSessionStore) DeleteSession(ctx context.Context, sessionID string, userID int64) error {
	if err := s.remote.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", mapAdapterError(err))
	}
	logger.FromContext(ctx).Debug().Str("func", "ChatSessionStore.DeleteSession").Str("session_id", sessionID).Int64("user_id", userID).Msg("session deleted")
	return nil
}

func (s *ChatSessionStore) GetMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	messages, err := s.remote.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", mapAdapterError(err))
	}
	return messages, nil
}

func (s *ChatSessionStore) SendMessage(ctx context.Context, sessionID string, req models.SendMessageRequest) (models.SendMessageResponse, error) {
	resp, err := s.remote.SendMessage(ctx, sessionID, req)
	if err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("sending message: %w", mapAdapterError(err))
	}
	return resp, nil
}

func (s *ChatSessionStore) ClearMessages(ctx context.Context, sessionID string) error {
	if err := s.remote.ClearMessages(ctx, sessionID); err != nil {
		return fmt.Errorf("clearing messages: %w", mapAdapterError(err))
	}
	return nil
}
