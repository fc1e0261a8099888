package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/ai"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/persona"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/models"
)

const (
	// maxHistoryMessages bounds the prompt. Older turns are dropped first.
	maxHistoryMessages = 40

	chatMaxTokens    = 1200
	chatTemperature  = 0.7
	titleMaxTokens   = 24
	titleTemperature = 0.3
)

type chatService struct {
	sessions    store.ChatSessionRepository
	messages    store.ChatMessageRepository
	fields      store.FieldRepository
	catalog     *persona.Catalog
	completions ai.CompletionService

	logger *logger.Logger
}

// NewChatService builds the chat service. completions may be nil; sends and
// title requests then fail with ErrAssistantUnavailable.
func NewChatService(
	sessions store.ChatSessionRepository,
	messages store.ChatMessageRepository,
	fields store.FieldRepository,
	catalog *persona.Catalog,
	completions ai.CompletionService,
	logger *logger.Logger,
) ChatService {
	return &chatService{
		sessions:    sessions,
		messages:    messages,
		fields:      fields,
		catalog:     catalog,
		completions: completions,
		logger:      logger,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userID int64, req models.CreateSessionRequest) (models.ChatSession, error) {
	if _, ok := s.catalog.Get(req.ChatbotType); !ok {
		return models.ChatSession{}, fmt.Errorf("%w: %q", ErrUnknownChatbotType, req.ChatbotType)
	}

	session, err := s.sessions.CreateSession(ctx, models.ChatSession{
		UserID:           userID,
		ChatbotType:      req.ChatbotType,
		Title:            req.Title,
		ConversationType: req.ConversationType,
		FieldID:          req.FieldID,
		FieldLabel:       req.FieldLabel,
		PageContext:      req.PageContext,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "chatService.CreateSession").
			Int64("user_id", userID).
			Str("chatbot_type", string(req.ChatbotType)).
			Msg("session creation failed")
		return models.ChatSession{}, fmt.Errorf("session creation failed: %w", err)
	}

	return session, nil
}

func (s *chatService) ListSessions(ctx context.Context, userID int64, chatbotType models.ChatbotType) ([]models.ChatSession, error) {
	if _, ok := s.catalog.Get(chatbotType); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChatbotType, chatbotType)
	}

	sessions, err := s.sessions.ListSessions(ctx, userID, chatbotType)
	if err != nil {
		return nil, fmt.Errorf("session listing failed: %w", err)
	}
	return sessions, nil
}

func (s *chatService) GetSession(ctx context.Context, userID int64, sessionID string) (models.ChatSession, error) {
	session, err := s.sessions.GetSession(ctx, sessionID, userID)
	if err != nil {
		return models.ChatSession{}, fmt.Errorf("session lookup failed: %w", err)
	}
	return session, nil
}

// UpdateSession renames a session. The chatbot type is never touched.
func (s *chatService) UpdateSession(ctx context.Context, userID int64, sessionID string, update models.SessionUpdate) (models.ChatSession, error) {
	if update.Title == nil {
		return models.ChatSession{}, ErrInvalidDataProvided
	}

	session, err := s.sessions.UpdateTitle(ctx, sessionID, userID, *update.Title)
	if err != nil {
		return models.ChatSession{}, fmt.Errorf("session update failed: %w", err)
	}
	return session, nil
}

func (s *chatService) DeleteSession(ctx context.Context, userID int64, sessionID string) error {
	if err := s.sessions.DeleteSession(ctx, sessionID, userID); err != nil {
		return fmt.Errorf("session deletion failed: %w", err)
	}
	return nil
}

func (s *chatService) ListMessages(ctx context.Context, userID int64, sessionID string) ([]models.ChatMessage, error) {
	if _, err := s.sessions.GetSession(ctx, sessionID, userID); err != nil {
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}

	messages, err := s.messages.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("message listing failed: %w", err)
	}
	return messages, nil
}

func (s *chatService) ClearMessages(ctx context.Context, userID int64, sessionID string) error {
	if _, err := s.sessions.GetSession(ctx, sessionID, userID); err != nil {
		return fmt.Errorf("session lookup failed: %w", err)
	}

	n, err := s.messages.ClearMessages(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("clearing messages failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "chatService.ClearMessages").Str("session_id", sessionID).Int64("deleted", n).Msg("chat history cleared")
	return nil
}

// SendMessage runs one turn: prompt, completion, field extraction and a
// single transaction persisting both messages.
func (s *chatService) SendMessage(ctx context.Context, userID int64, sessionID string, req models.SendMessageRequest) (models.SendMessageResponse, error) {
	log := logger.FromContext(ctx)

	session, err := s.sessions.GetSession(ctx, sessionID, userID)
	if err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("session lookup failed: %w", err)
	}

	p, ok := s.catalog.Get(session.ChatbotType)
	if !ok {
		return models.SendMessageResponse{}, fmt.Errorf("%w: %q", ErrUnknownChatbotType, session.ChatbotType)
	}

	history, err := s.messages.ListMessages(ctx, sessionID)
	if err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("message listing failed: %w", err)
	}

	brandFields, err := s.fields.ListCurrent(ctx, userID, "")
	if err != nil {
		// the answer is still useful without the field context
		log.Warn().Err(err).Str("func", "chatService.SendMessage").Int64("user_id", userID).Msg("brand fields unavailable for prompt")
		brandFields = nil
	}

	userMessage := models.ChatMessage{Role: models.RoleUser, Content: req.Content, Metadata: req.Metadata}
	prompt := buildChatPrompt(p, session, brandFields, history, userMessage, req.UseSystemKnowledgeBase)

	completion, err := s.complete(ctx, ai.CompletionRequest{
		Purpose:     ai.PurposeChat,
		Messages:    prompt,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		log.Err(err).Str("func", "chatService.SendMessage").Str("session_id", sessionID).Msg("assistant call failed, nothing stored")
		return models.SendMessageResponse{}, err
	}

	content, extracted := extractFields(completion.Content, p)
	assistantMessage := models.ChatMessage{Role: models.RoleAssistant, Content: content}
	if len(extracted) > 0 {
		assistantMessage.Metadata = models.NewExtractedFields(extracted...)
	}

	saved, err := s.messages.AppendTurn(ctx, sessionID, userMessage, assistantMessage)
	if err != nil {
		log.Err(err).Str("func", "chatService.SendMessage").Str("session_id", sessionID).Msg("persisting turn failed")
		return models.SendMessageResponse{}, fmt.Errorf("persisting turn failed: %w", err)
	}
	if len(saved) != 2 {
		return models.SendMessageResponse{}, fmt.Errorf("persisting turn failed: stored %d of 2 messages", len(saved))
	}

	return models.SendMessageResponse{UserMessage: saved[0], AssistantMessage: saved[1]}, nil
}

// GenerateTitle asks the title model for a short session name.
func (s *chatService) GenerateTitle(ctx context.Context, req models.TitleRequest) (models.TitleResponse, error) {
	completion, err := s.complete(ctx, ai.CompletionRequest{
		Purpose:     ai.PurposeTitle,
		Messages:    buildTitlePrompt(req),
		MaxTokens:   titleMaxTokens,
		Temperature: titleTemperature,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "chatService.GenerateTitle").Msg("title generation failed")
		return models.TitleResponse{}, err
	}

	return models.TitleResponse{Title: cleanTitle(completion.Content)}, nil
}

func (s *chatService) complete(ctx context.Context, req ai.CompletionRequest) (ai.Completion, error) {
	if s.completions == nil {
		return ai.Completion{}, fmt.Errorf("%w: %w", ErrAssistantUnavailable, ErrNoCompletionService)
	}

	completion, err := s.completions.Complete(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ai.Completion{}, err
		}
		return ai.Completion{}, fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
	}
	return completion, nil
}
