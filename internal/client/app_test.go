package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/adapter"
	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/mock"
	"github.com/MKhiriev/idea-brand-coach/internal/service"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = int64(7)

// newTestApp — App на временной SQLite и моке серверного адаптера
func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().SetToken(gomock.Any()).AnyTimes()

	localStore, err := store.NewClientStorages(context.Background(),
		config.ClientStorage{LocalPath: filepath.Join(t.TempDir(), "client.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { localStore.Close() })

	cfg := config.ClientConfig{Workers: config.ClientWorkers{DebounceInterval: time.Hour}}
	out := &bytes.Buffer{}
	app := newApp(service.NewClientServices(localStore, serverAdapter, cfg, logger.Nop()), localStore, out, logger.Nop())
	return app, serverAdapter, out
}

// loginAs сохраняет локальную сессию через команду login
func loginAs(t *testing.T, app *App, serverAdapter *mock.MockServerAdapter, out *bytes.Buffer) {
	t.Helper()
	serverAdapter.EXPECT().Login(gomock.Any(), models.User{Login: "alice", Password: "secret"}).
		Return(models.Token{SignedString: "jwt", UserID: testUserID}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"login", "alice", "secret"}))
	assert.Contains(t, out.String(), "logged in as alice (user 7)")
	out.Reset()
}

// ── dispatch ─────────────────────────────────────────────────────────────────

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"unknown command", []string{"sync"}},
		{"login without password", []string{"login", "alice"}},
		{"field without subcommand", []string{"field"}},
		{"chat without chatbot", []string{"chat", "send"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, out := newTestApp(t)

			err := app.Run(context.Background(), tt.args)
			assert.ErrorIs(t, err, ErrUsage)
			assert.Contains(t, out.String(), "usage: brandcoach-client")
		})
	}
}

func TestRun_Help(t *testing.T) {
	app, _, out := newTestApp(t)

	require.NoError(t, app.Run(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "chat send <chatbot-type>")
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestRun_Register(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	serverAdapter.EXPECT().Register(gomock.Any(), models.User{Login: "alice", Password: "secret", Name: "Alice Cooper"}).
		Return(models.Token{SignedString: "jwt", UserID: 3}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"register", "alice", "secret", "Alice", "Cooper"}))
	assert.Contains(t, out.String(), "registered and logged in as alice (user 3)")
}

func TestRun_LoginThenLogout(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	loginAs(t, app, serverAdapter, out)

	require.NoError(t, app.Run(context.Background(), []string{"logout"}))

	err := app.Run(context.Background(), []string{"field", "clear"})
	assert.ErrorIs(t, err, service.ErrNotLoggedIn)
}

func TestRun_NotLoggedIn(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"chat", "sessions", "brand-coach"})
	assert.ErrorIs(t, err, service.ErrNotLoggedIn)
}

// ── field ────────────────────────────────────────────────────────────────────

func TestRun_FieldSet_Online(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	loginAs(t, app, serverAdapter, out)

	serverAdapter.EXPECT().GetField(gomock.Any(), "avatar_goals").
		Return(models.FieldRecord{}, fmt.Errorf("%w: field not found", adapter.ErrNotFound))
	serverAdapter.EXPECT().Ping(gomock.Any()).Return(nil)
	serverAdapter.EXPECT().UpsertField(gomock.Any(), models.FieldUpsert{
		UserID:          testUserID,
		FieldIdentifier: "avatar_goals",
		Category:        models.CategoryAvatar,
		Content:         "grow revenue",
	}).Return(models.FieldRecord{FieldIdentifier: "avatar_goals", Content: "grow revenue"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"field", "set", "avatar_goals", "avatar", "grow", "revenue"}))

	assert.Contains(t, out.String(), "avatar_goals (avatar) [synced]")
	assert.Contains(t, out.String(), "grow revenue")

	// нечего отправлять: Close не ходит на сервер
	require.NoError(t, app.Close(context.Background()))
}

func TestRun_FieldSet_OfflineKeepsLocalValue(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	loginAs(t, app, serverAdapter, out)
	unreachable := fmt.Errorf("health request: %w: connection refused", adapter.ErrServerUnreachable)

	serverAdapter.EXPECT().GetField(gomock.Any(), "avatar_goals").Return(models.FieldRecord{}, unreachable)
	serverAdapter.EXPECT().Ping(gomock.Any()).Return(unreachable).AnyTimes()

	require.NoError(t, app.Run(context.Background(), []string{"field", "set", "avatar_goals", "avatar", "draft"}))
	assert.Contains(t, out.String(), "[offline]")
	assert.Contains(t, out.String(), "draft")
	out.Reset()

	// значение уже лежит локально и читается без сервера
	require.NoError(t, app.Run(context.Background(), []string{"field", "get", "avatar_goals", "avatar"}))
	assert.Contains(t, out.String(), "draft")

	assert.Error(t, app.Close(context.Background()), "неподтверждённая правка не отправилась")
}

func TestRun_FieldGet_Default(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	loginAs(t, app, serverAdapter, out)

	serverAdapter.EXPECT().GetField(gomock.Any(), "canvas_brand_purpose").
		Return(models.FieldRecord{}, fmt.Errorf("%w: field not found", adapter.ErrNotFound))

	require.NoError(t, app.Run(context.Background(), []string{"field", "get", "canvas_brand_purpose", "canvas", "to", "be", "decided"}))
	assert.Contains(t, out.String(), "to be decided")
}

func TestRun_FieldClear(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	loginAs(t, app, serverAdapter, out)

	serverAdapter.EXPECT().ClearFields(gomock.Any()).Return(int64(2), nil)

	require.NoError(t, app.Run(context.Background(), []string{"field", "clear"}))
	assert.Contains(t, out.String(), "cleared 2 field(s)")
}

// ── chat ─────────────────────────────────────────────────────────────────────

func chatSession(id, title string, updated time.Time) models.ChatSession {
	return models.ChatSession{ID: id, ChatbotType: models.ChatbotBrandCoach, Title: title, CreatedAt: updated, UpdatedAt: updated}
}

func TestRun_ChatSessions(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	loginAs(t, app, serverAdapter, out)
	now := time.Now()

	serverAdapter.EXPECT().ListSessions(gomock.Any(), models.ChatbotBrandCoach).Return([]models.ChatSession{
		chatSession("old", "Avatar", now.Add(-time.Hour)),
		chatSession("new", "Positioning", now),
	}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"chat", "sessions", "brand-coach"}))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "*", "самая свежая сессия выбрана текущей")
	assert.Contains(t, string(lines[0]), "Positioning")
	assert.NotContains(t, string(lines[1]), "*")
}

func TestRun_ChatSend_KnowledgeBaseAndCopy(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	loginAs(t, app, serverAdapter, out)

	var copied string
	app.copyText = func(s string) error {
		copied = s
		return nil
	}

	serverAdapter.EXPECT().ListSessions(gomock.Any(), models.ChatbotBrandCoach).
		Return([]models.ChatSession{chatSession("s1", "Positioning", time.Now())}, nil)
	serverAdapter.EXPECT().SendMessage(gomock.Any(), "s1", models.SendMessageRequest{
		Content:                "who is my customer",
		UseSystemKnowledgeBase: true,
	}).Return(models.SendMessageResponse{
		UserMessage:      models.ChatMessage{ID: "m1", Role: models.RoleUser, Content: "who is my customer"},
		AssistantMessage: models.ChatMessage{ID: "m2", Role: models.RoleAssistant, Content: "Someone who values calm."},
	}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"chat", "send", "brand-coach", "who", "is", "my", "customer", "-kb", "-copy"}))

	assert.Contains(t, out.String(), "assistant> Someone who values calm.")
	assert.Contains(t, out.String(), "answer copied to clipboard")
	assert.Equal(t, "Someone who values calm.", copied)
}

func TestRun_ChatSend_CopyFailureIsReported(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	loginAs(t, app, serverAdapter, out)
	app.copyText = func(string) error { return errors.New("no clipboard utility") }

	serverAdapter.EXPECT().ListSessions(gomock.Any(), gomock.Any()).
		Return([]models.ChatSession{chatSession("s1", "Positioning", time.Now())}, nil)
	serverAdapter.EXPECT().SendMessage(gomock.Any(), "s1", gomock.Any()).
		Return(models.SendMessageResponse{AssistantMessage: models.ChatMessage{Role: models.RoleAssistant, Content: "ok"}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"chat", "send", "brand-coach", "hi", "-copy"}))
	assert.Contains(t, out.String(), "could not copy to clipboard")
}

func TestRun_ChatSend_FailureNotifies(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	loginAs(t, app, serverAdapter, out)

	serverAdapter.EXPECT().ListSessions(gomock.Any(), gomock.Any()).
		Return([]models.ChatSession{chatSession("s1", "Positioning", time.Now())}, nil)
	serverAdapter.EXPECT().SendMessage(gomock.Any(), "s1", gomock.Any()).
		Return(models.SendMessageResponse{}, fmt.Errorf("%w: assistant is unavailable", adapter.ErrBadGateway))

	err := app.Run(context.Background(), []string{"chat", "send", "brand-coach", "hi"})
	require.Error(t, err)
	assert.Contains(t, out.String(), "[!] Message not sent")
}

func TestRun_ChatSelectUnknownSession(t *testing.T) {
	app, serverAdapter, out := newTestApp(t)
	loginAs(t, app, serverAdapter, out)

	serverAdapter.EXPECT().ListSessions(gomock.Any(), gomock.Any()).Return([]models.ChatSession{}, nil)

	err := app.Run(context.Background(), []string{"chat", "history", "brand-coach", "-session", "missing"})
	assert.ErrorIs(t, err, service.ErrNoSessionSelected)
}

// ── flags ────────────────────────────────────────────────────────────────────

func TestParseChatFlags(t *testing.T) {
	cf, rest, err := parseChatFlags([]string{"brand-coach", "hello", "-kb", "world", "-session", "s9", "--copy"})
	require.NoError(t, err)

	assert.True(t, cf.knowledgeBase)
	assert.True(t, cf.copy)
	assert.Equal(t, "s9", cf.sessionID)
	assert.Equal(t, []string{"brand-coach", "hello", "world"}, rest)

	_, _, err = parseChatFlags([]string{"brand-coach", "-verbose"})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestSplitFlags_EqualsForm(t *testing.T) {
	flags, positional := splitFlags([]string{"-session=s1", "text", "-"}, "session")

	assert.Equal(t, []string{"-session=s1"}, flags)
	assert.Equal(t, []string{"text", "-"}, positional)
}

func TestPrintNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := &printNotifier{out: &buf}

	n.Notify(models.Notification{Level: models.NotificationError, Title: "Message not sent", Description: "offline"})
	n.Notify(models.Notification{Level: models.NotificationInfo, Title: "Title", Description: "done"})

	assert.Equal(t, "[!] Message not sent: offline\n[i] Title: done\n", buf.String())
}
