package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/app"
	"github.com/MKhiriev/idea-brand-coach/internal/service"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/internal/validators"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var chatTime = time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

func sampleSession(id string) models.ChatSession {
	return models.ChatSession{
		ID:               id,
		UserID:           testUserID,
		ChatbotType:      models.ChatbotBrandCoach,
		Title:            models.DefaultSessionTitle,
		ConversationType: models.DefaultConversationType,
		CreatedAt:        chatTime,
		UpdatedAt:        chatTime,
	}
}

// ── Sessions ─────────────────────────────────────────────────────────────────

func TestListSessions(t *testing.T) {
	router, m := newTestRouter(t)
	m.chat.EXPECT().ListSessions(gomock.Any(), testUserID, models.ChatbotBrandCoach).
		Return([]models.ChatSession{sampleSession("s2"), sampleSession("s1")}, nil)

	rec := doAuthed(t, router, http.MethodGet, "/api/chat/sessions?chatbot_type=brand-coach", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.ChatSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "s2", got[0].ID, "порядок сервиса сохраняется")
}

func TestListSessions_UnknownChatbot(t *testing.T) {
	router, m := newTestRouter(t)
	m.chat.EXPECT().ListSessions(gomock.Any(), testUserID, models.ChatbotType("poet")).
		Return(nil, fmt.Errorf("%w: %q", service.ErrUnknownChatbotType, "poet"))

	rec := doAuthed(t, router, http.MethodGet, "/api/chat/sessions?chatbot_type=poet", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgUnknownChatbotType, bodyText(rec))
}

func TestCreateSession(t *testing.T) {
	router, m := newTestRouter(t)
	fieldID := "avatar_goals"
	req := models.CreateSessionRequest{
		ChatbotType:   models.ChatbotFieldAssistant,
		SessionCreate: models.SessionCreate{FieldID: &fieldID},
	}
	m.chat.EXPECT().CreateSession(gomock.Any(), testUserID, req).Return(sampleSession("s1"), nil)

	rec := doAuthed(t, router, http.MethodPost, "/api/chat/sessions", req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.ChatSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "s1", got.ID)
}

func TestGetSession_NotFound(t *testing.T) {
	router, m := newTestRouter(t)
	m.chat.EXPECT().GetSession(gomock.Any(), testUserID, "foreign").Return(models.ChatSession{}, store.ErrSessionNotFound)

	rec := doAuthed(t, router, http.MethodGet, "/api/chat/sessions/foreign", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgSessionNotFound, bodyText(rec))
}

func TestUpdateSession(t *testing.T) {
	router, m := newTestRouter(t)
	title := "Positioning"
	renamed := sampleSession("s1")
	renamed.Title = title

	m.chat.EXPECT().UpdateSession(gomock.Any(), testUserID, "s1", models.SessionUpdate{Title: &title}).Return(renamed, nil)

	rec := doAuthed(t, router, http.MethodPatch, "/api/chat/sessions/s1", models.SessionUpdate{Title: &title})

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.ChatSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, title, got.Title)
}

func TestUpdateSession_EmptyTitle(t *testing.T) {
	router, m := newTestRouter(t)
	empty := ""
	m.chat.EXPECT().UpdateSession(gomock.Any(), testUserID, "s1", gomock.Any()).
		Return(models.ChatSession{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidTitle))

	rec := doAuthed(t, router, http.MethodPatch, "/api/chat/sessions/s1", models.SessionUpdate{Title: &empty})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgEmptyTitle, bodyText(rec))
}

func TestDeleteSession(t *testing.T) {
	router, m := newTestRouter(t)
	m.chat.EXPECT().DeleteSession(gomock.Any(), testUserID, "s1").Return(nil)

	rec := doAuthed(t, router, http.MethodDelete, "/api/chat/sessions/s1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// ── Messages ─────────────────────────────────────────────────────────────────

func TestListMessages_EmptyIsArray(t *testing.T) {
	router, m := newTestRouter(t)
	m.chat.EXPECT().ListMessages(gomock.Any(), testUserID, "s1").Return(nil, nil)

	rec := doAuthed(t, router, http.MethodGet, "/api/chat/sessions/s1/messages", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSendMessage(t *testing.T) {
	router, m := newTestRouter(t)
	req := models.SendMessageRequest{Content: "Who is my customer?", UseSystemKnowledgeBase: true}
	res := models.SendMessageResponse{
		UserMessage:      models.ChatMessage{ID: "m1", SessionID: "s1", Role: models.RoleUser, Content: req.Content, CreatedAt: chatTime},
		AssistantMessage: models.ChatMessage{ID: "m2", SessionID: "s1", Role: models.RoleAssistant, Content: "Let's find out.", CreatedAt: chatTime},
	}
	m.chat.EXPECT().SendMessage(gomock.Any(), testUserID, "s1", req).Return(res, nil)

	rec := doAuthed(t, router, http.MethodPost, "/api/chat/sessions/s1/messages", req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.SendMessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "m2", got.AssistantMessage.ID)
	assert.Equal(t, models.RoleAssistant, got.AssistantMessage.Role)
}

func TestSendMessage_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{"empty content", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyContent), http.StatusBadRequest, app.MsgEmptyMessage},
		{"bad metadata", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidMetadata), http.StatusBadRequest, app.MsgInvalidMetadata},
		{"session missing", store.ErrSessionNotFound, http.StatusNotFound, app.MsgSessionNotFound},
		{"ai down", fmt.Errorf("%w: %w", service.ErrAssistantUnavailable, errors.New("503 from provider")), http.StatusBadGateway, app.MsgAssistantUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.chat.EXPECT().SendMessage(gomock.Any(), testUserID, "s1", gomock.Any()).
				Return(models.SendMessageResponse{}, tt.serviceErr)

			rec := doAuthed(t, router, http.MethodPost, "/api/chat/sessions/s1/messages", models.SendMessageRequest{Content: "hi"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, bodyText(rec))
		})
	}
}

func TestClearMessages(t *testing.T) {
	router, m := newTestRouter(t)
	m.chat.EXPECT().ClearMessages(gomock.Any(), testUserID, "s1").Return(nil)

	rec := doAuthed(t, router, http.MethodDelete, "/api/chat/sessions/s1/messages", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// ── Title ────────────────────────────────────────────────────────────────────

func TestGenerateTitle(t *testing.T) {
	router, m := newTestRouter(t)
	req := models.TitleRequest{UserMessage: "Help with my avatar", AssistantResponse: "Sure"}
	m.chat.EXPECT().GenerateTitle(gomock.Any(), req).Return(models.TitleResponse{Title: "Avatar Help"}, nil)

	rec := doAuthed(t, router, http.MethodPost, "/api/chat/title", req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"title":"Avatar Help"}`, rec.Body.String())
}

func TestGenerateTitle_AssistantDown(t *testing.T) {
	router, m := newTestRouter(t)
	m.chat.EXPECT().GenerateTitle(gomock.Any(), gomock.Any()).
		Return(models.TitleResponse{}, fmt.Errorf("%w: %w", service.ErrAssistantUnavailable, service.ErrNoCompletionService))

	rec := doAuthed(t, router, http.MethodPost, "/api/chat/title", models.TitleRequest{UserMessage: "a", AssistantResponse: "b"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
