package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/idea-brand-coach/internal/ai"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/mock"
	"github.com/MKhiriev/idea-brand-coach/internal/persona"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPersonas = `
- type: brand-coach
  name: Coach
  system_prompt: You are a coach.
  extractable_fields:
    - identifier: avatar_goals
      category: avatar
      description: Goals of the customer.
    - identifier: canvas_brand_purpose
      category: canvas
      description: Why the brand exists.
  knowledge:
    - Avatars have goals.
`

type chatMocks struct {
	sessions    *mock.MockChatSessionRepository
	messages    *mock.MockChatMessageRepository
	fields      *mock.MockFieldRepository
	completions *mock.MockCompletionService
}

func testCatalog(t *testing.T) *persona.Catalog {
	t.Helper()
	catalog, err := persona.Parse([]byte(testPersonas))
	require.NoError(t, err)
	return catalog
}

// newTestChatService — chatService со всеми зависимостями на моках
func newTestChatService(t *testing.T, ctrl *gomock.Controller) (ChatService, chatMocks) {
	t.Helper()
	m := chatMocks{
		sessions:    mock.NewMockChatSessionRepository(ctrl),
		messages:    mock.NewMockChatMessageRepository(ctrl),
		fields:      mock.NewMockFieldRepository(ctrl),
		completions: mock.NewMockCompletionService(ctrl),
	}
	svc := NewChatService(m.sessions, m.messages, m.fields, testCatalog(t), m.completions, logger.Nop())
	return svc, m
}

var coachSession = models.ChatSession{ID: "s1", UserID: 1, ChatbotType: models.ChatbotBrandCoach, Title: models.DefaultSessionTitle}

// ── Sessions ─────────────────────────────────────────────────────────────────

func TestChatService_CreateSession_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestChatService(t, ctrl)

	_, err := svc.CreateSession(context.Background(), 1, models.CreateSessionRequest{ChatbotType: "mystery"})
	assert.ErrorIs(t, err, ErrUnknownChatbotType)
}

func TestChatService_CreateSession_PassesAttributes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestChatService(t, ctrl)
	label := "Goals"

	m.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.ChatSession) (models.ChatSession, error) {
			assert.Equal(t, int64(1), s.UserID)
			assert.Equal(t, models.ChatbotBrandCoach, s.ChatbotType)
			assert.Equal(t, &label, s.FieldLabel)
			s.ID = "new"
			return s, nil
		},
	)

	session, err := svc.CreateSession(context.Background(), 1, models.CreateSessionRequest{
		ChatbotType:   models.ChatbotBrandCoach,
		SessionCreate: models.SessionCreate{FieldLabel: &label},
	})
	require.NoError(t, err)
	assert.Equal(t, "new", session.ID)
}

func TestChatService_ListSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestChatService(t, ctrl)

	m.sessions.EXPECT().ListSessions(gomock.Any(), int64(1), models.ChatbotBrandCoach).Return([]models.ChatSession{coachSession}, nil)

	sessions, err := svc.ListSessions(context.Background(), 1, models.ChatbotBrandCoach)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	_, err = svc.ListSessions(context.Background(), 1, "mystery")
	assert.ErrorIs(t, err, ErrUnknownChatbotType)
}

func TestChatService_UpdateSession_RenamesOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestChatService(t, ctrl)
	title := "Pricing"

	m.sessions.EXPECT().UpdateTitle(gomock.Any(), "s1", int64(1), "Pricing").Return(models.ChatSession{ID: "s1", Title: "Pricing"}, nil)

	session, err := svc.UpdateSession(context.Background(), 1, "s1", models.SessionUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Pricing", session.Title)

	_, err = svc.UpdateSession(context.Background(), 1, "s1", models.SessionUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestChatService_ForeignSession_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestChatService(t, ctrl)
	ctx := context.Background()

	m.sessions.EXPECT().GetSession(ctx, "s1", int64(2)).Return(models.ChatSession{}, store.ErrSessionNotFound).Times(3)

	_, err := svc.ListMessages(ctx, 2, "s1")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	err = svc.ClearMessages(ctx, 2, "s1")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	_, err = svc.SendMessage(ctx, 2, "s1", models.SendMessageRequest{Content: "hi"})
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestChatService_ClearMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestChatService(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		m.sessions.EXPECT().GetSession(ctx, "s1", int64(1)).Return(coachSession, nil),
		m.messages.EXPECT().ClearMessages(ctx, "s1").Return(int64(4), nil),
	)

	require.NoError(t, svc.ClearMessages(ctx, 1, "s1"))
}

// ── SendMessage ──────────────────────────────────────────────────────────────

func TestChatService_SendMessage_PersistsTurnWithExtraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestChatService(t, ctrl)
	ctx := context.Background()

	history := []models.ChatMessage{
		{Role: models.RoleUser, Content: "earlier question"},
		{Role: models.RoleAssistant, Content: "earlier answer"},
	}
	brandFields := []models.FieldRecord{{FieldIdentifier: "avatar_goals", Category: models.CategoryAvatar, Content: "save time"}}

	m.sessions.EXPECT().GetSession(ctx, "s1", int64(1)).Return(coachSession, nil)
	m.messages.EXPECT().ListMessages(ctx, "s1").Return(history, nil)
	m.fields.EXPECT().ListCurrent(ctx, int64(1), models.FieldCategory("")).Return(brandFields, nil)
	m.completions.EXPECT().Complete(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req ai.CompletionRequest) (ai.Completion, error) {
			assert.Equal(t, ai.PurposeChat, req.Purpose)
			require.Len(t, req.Messages, 4)
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Contains(t, req.Messages[0].Content, "You are a coach.")
			assert.Contains(t, req.Messages[0].Content, "avatar_goals (avatar): save time")
			assert.NotContains(t, req.Messages[0].Content, "Avatars have goals.", "знания только по флагу")
			assert.Equal(t, "what do my customers want?", req.Messages[3].Content)
			return ai.Completion{Content: `They want speed.` + "\n" +
				`<fields>{"avatar_goals": "ship faster", "unknown_field": "x", "canvas_brand_purpose": ""}</fields>`}, nil
		},
	)
	m.messages.EXPECT().AppendTurn(ctx, "s1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, msgs ...models.ChatMessage) ([]models.ChatMessage, error) {
			require.Len(t, msgs, 2)
			assert.Equal(t, models.RoleUser, msgs[0].Role)
			assert.Equal(t, models.RoleAssistant, msgs[1].Role)
			assert.Equal(t, "They want speed.", msgs[1].Content)
			require.NotNil(t, msgs[1].Metadata)
			assert.Equal(t, []models.ExtractedField{{FieldIdentifier: "avatar_goals", Category: models.CategoryAvatar, Value: "ship faster"}}, msgs[1].Metadata.Fields)
			msgs[0].ID, msgs[1].ID = "u", "a"
			return msgs, nil
		},
	)

	resp, err := svc.SendMessage(ctx, 1, "s1", models.SendMessageRequest{Content: "what do my customers want?"})
	require.NoError(t, err)
	assert.Equal(t, "u", resp.UserMessage.ID)
	assert.Equal(t, "a", resp.AssistantMessage.ID)
}

func TestChatService_SendMessage_KnowledgeFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestChatService(t, ctrl)
	ctx := context.Background()

	m.sessions.EXPECT().GetSession(ctx, "s1", int64(1)).Return(coachSession, nil)
	m.messages.EXPECT().ListMessages(ctx, "s1").Return(nil, nil)
	// недоступные поля не ломают отправку
	m.fields.EXPECT().ListCurrent(ctx, int64(1), models.FieldCategory("")).Return(nil, errStorage)
	m.completions.EXPECT().Complete(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req ai.CompletionRequest) (ai.Completion, error) {
			assert.Contains(t, req.Messages[0].Content, "Avatars have goals.")
			return ai.Completion{Content: "ok"}, nil
		},
	)
	m.messages.EXPECT().AppendTurn(ctx, "s1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, msgs ...models.ChatMessage) ([]models.ChatMessage, error) {
			assert.Nil(t, msgs[1].Metadata)
			return msgs, nil
		},
	)

	_, err := svc.SendMessage(ctx, 1, "s1", models.SendMessageRequest{Content: "hi", UseSystemKnowledgeBase: true})
	require.NoError(t, err)
}

func TestChatService_SendMessage_AssistantFailure_StoresNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestChatService(t, ctrl)
	ctx := context.Background()

	m.sessions.EXPECT().GetSession(ctx, "s1", int64(1)).Return(coachSession, nil)
	m.messages.EXPECT().ListMessages(ctx, "s1").Return(nil, nil)
	m.fields.EXPECT().ListCurrent(ctx, int64(1), models.FieldCategory("")).Return(nil, nil)
	m.completions.EXPECT().Complete(ctx, gomock.Any()).Return(ai.Completion{}, errors.New("upstream 500"))
	// AppendTurn не ожидается: gomock упадёт, если он будет вызван

	_, err := svc.SendMessage(ctx, 1, "s1", models.SendMessageRequest{Content: "hi"})
	assert.ErrorIs(t, err, ErrAssistantUnavailable)
}

func TestChatService_SendMessage_CanceledIsNotWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestChatService(t, ctrl)
	ctx := context.Background()

	m.sessions.EXPECT().GetSession(ctx, "s1", int64(1)).Return(coachSession, nil)
	m.messages.EXPECT().ListMessages(ctx, "s1").Return(nil, nil)
	m.fields.EXPECT().ListCurrent(ctx, int64(1), models.FieldCategory("")).Return(nil, nil)
	m.completions.EXPECT().Complete(ctx, gomock.Any()).Return(ai.Completion{}, context.Canceled)

	_, err := svc.SendMessage(ctx, 1, "s1", models.SendMessageRequest{Content: "hi"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrAssistantUnavailable)
}

func TestChatService_SendMessage_NoCompletionService(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockChatSessionRepository(ctrl)
	messages := mock.NewMockChatMessageRepository(ctrl)
	fields := mock.NewMockFieldRepository(ctrl)
	svc := NewChatService(sessions, messages, fields, testCatalog(t), nil, logger.Nop())

	sessions.EXPECT().GetSession(gomock.Any(), "s1", int64(1)).Return(coachSession, nil)
	messages.EXPECT().ListMessages(gomock.Any(), "s1").Return(nil, nil)
	fields.EXPECT().ListCurrent(gomock.Any(), int64(1), models.FieldCategory("")).Return(nil, nil)

	_, err := svc.SendMessage(context.Background(), 1, "s1", models.SendMessageRequest{Content: "hi"})
	assert.ErrorIs(t, err, ErrAssistantUnavailable)
	assert.ErrorIs(t, err, ErrNoCompletionService)
}

// ── GenerateTitle ────────────────────────────────────────────────────────────

func TestChatService_GenerateTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestChatService(t, ctrl)

	m.completions.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ai.CompletionRequest) (ai.Completion, error) {
			assert.Equal(t, ai.PurposeTitle, req.Purpose)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, "User: How do I price?\nAssistant: Start with value.", req.Messages[1].Content)
			return ai.Completion{Content: "Title: \"Pricing  Strategy Basics.\"\nextra"}, nil
		},
	)

	resp, err := svc.GenerateTitle(context.Background(), models.TitleRequest{UserMessage: "How do I price?", AssistantResponse: "Start with value."})
	require.NoError(t, err)
	assert.Equal(t, "Pricing Strategy Basics", resp.Title)
}

// ── prompt helpers ───────────────────────────────────────────────────────────

func TestExtractFields(t *testing.T) {
	p, ok := testCatalog(t).Get(models.ChatbotBrandCoach)
	require.True(t, ok)

	tests := []struct {
		name      string
		content   string
		answer    string
		extracted []models.ExtractedField
	}{
		{name: "no block", content: "plain answer ", answer: "plain answer"},
		{name: "invalid json", content: "answer <fields>{nope</fields>", answer: "answer"},
		{name: "block not trailing", content: "<fields>{}</fields> more text", answer: "<fields>{}</fields> more text"},
		{
			name:    "catalog order and filtering",
			content: `answer <fields>{"canvas_brand_purpose": " help ", "avatar_goals": "grow", "other": "x"}</fields>`,
			answer:  "answer",
			extracted: []models.ExtractedField{
				{FieldIdentifier: "avatar_goals", Category: models.CategoryAvatar, Value: "grow"},
				{FieldIdentifier: "canvas_brand_purpose", Category: models.CategoryCanvas, Value: "help"},
			},
		},
		{name: "non string values", content: `a <fields>{"avatar_goals": 5}</fields>`, answer: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, extracted := extractFields(tt.content, p)
			assert.Equal(t, tt.answer, answer)
			assert.Equal(t, tt.extracted, extracted)
		})
	}
}

func TestBuildChatPrompt_HistoryCapAndContext(t *testing.T) {
	p, _ := testCatalog(t).Get(models.ChatbotBrandCoach)
	label, page := "Goals", "avatar"
	session := models.ChatSession{FieldLabel: &label, PageContext: &page}

	history := make([]models.ChatMessage, 0, maxHistoryMessages+5)
	history = append(history, models.ChatMessage{Role: models.RoleSystem, Content: "hidden"})
	for i := 0; i < maxHistoryMessages+4; i++ {
		history = append(history, models.ChatMessage{Role: models.RoleUser, Content: "m"})
	}

	img := models.ChatMessage{Role: models.RoleUser, Content: "look", Metadata: models.NewImageAttachments(models.ImageAttachment{URL: "https://x/y.png", Name: "logo"})}
	prompt := buildChatPrompt(p, session, nil, history, img, false)

	assert.Len(t, prompt, maxHistoryMessages+2)
	assert.Contains(t, prompt[0].Content, `the "Goals" field on the avatar page.`)
	assert.Contains(t, prompt[0].Content, "<fields>")
	last := prompt[len(prompt)-1]
	assert.True(t, strings.HasSuffix(last.Content, "- logo: https://x/y.png"))
	for _, m := range prompt[1:] {
		assert.NotEqual(t, "system", m.Role)
	}
}

func TestCleanTitle(t *testing.T) {
	tests := map[string]string{
		"  Brand Voice  ":          "Brand Voice",
		"\"Quoted Title\"":         "Quoted Title",
		"Title: Launch Plan.":      "Launch Plan",
		"First line\nsecond line":  "First line",
		"too    many   spaces":     "too many spaces",
		"":                         "",
		strings.Repeat("word ", 30): strings.TrimSpace(strings.Repeat("word ", 12)),
	}

	for in, want := range tests {
		got := cleanTitle(in)
		assert.Equal(t, want, got, "input %q", in)
		assert.LessOrEqual(t, len([]rune(got)), MaxTitleRunes)
	}
}
