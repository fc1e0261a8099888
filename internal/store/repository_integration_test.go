//go:build integration

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T, ctx context.Context) string {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "coach",
			"POSTGRES_PASSWORD": "coach",
			"POSTGRES_DB":       "coach",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(2 * time.Minute),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return fmt.Sprintf("postgres://coach:coach@%s/coach?sslmode=disable", endpoint)
}

func newIntegrationStorages(t *testing.T) *Storages {
	t.Helper()
	ctx := context.Background()

	s, err := NewStorages(ctx, config.Storage{
		DB:    config.DB{DSN: startPostgres(t, ctx)},
		Cache: config.Cache{TTL: time.Minute},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestPostgresStorages(t *testing.T) {
	ctx := context.Background()
	s := newIntegrationStorages(t)

	user, err := s.UserRepository.CreateUser(ctx, models.User{Login: "ada", PasswordHash: "hash"})
	require.NoError(t, err)
	_, err = s.UserRepository.CreateUser(ctx, models.User{Login: "ada", PasswordHash: "hash"})
	require.ErrorIs(t, err, ErrLoginAlreadyExists)

	other, err := s.UserRepository.CreateUser(ctx, models.User{Login: "bob", PasswordHash: "hash"})
	require.NoError(t, err)

	t.Run("fields", func(t *testing.T) {
		first, err := s.FieldRepository.UpsertCurrent(ctx, models.FieldUpsert{
			UserID: user.UserID, FieldIdentifier: "insight_purpose", Category: models.CategoryInsight, Content: "v1",
		})
		require.NoError(t, err)

		second, err := s.FieldRepository.UpsertCurrent(ctx, models.FieldUpsert{
			UserID: user.UserID, FieldIdentifier: "insight_purpose", Category: models.CategoryInsight, Content: "v2",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		current, err := s.FieldRepository.GetCurrent(ctx, user.UserID, "insight_purpose")
		require.NoError(t, err)
		assert.Equal(t, "v2", current.Content)

		_, err = s.FieldRepository.UpsertCurrent(ctx, models.FieldUpsert{
			UserID: user.UserID, FieldIdentifier: "bad", Category: "colour", Content: "x",
		})
		assert.ErrorIs(t, err, ErrInvalidRecord)

		unsynced, err := s.FieldRepository.ListUnsynced(ctx, 10)
		require.NoError(t, err)
		require.Len(t, unsynced, 1)
		require.NoError(t, s.FieldRepository.MarkSynced(ctx, unsynced[0], "file-1", time.Now()))
		unsynced, err = s.FieldRepository.ListUnsynced(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, unsynced)

		_, err = s.FieldRepository.UpsertCurrent(ctx, models.FieldUpsert{
			UserID: other.UserID, FieldIdentifier: "insight_purpose", Category: models.CategoryInsight, Content: "bob",
		})
		require.NoError(t, err)

		deleted, err := s.FieldRepository.ClearFields(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		_, err = s.FieldRepository.GetCurrent(ctx, user.UserID, "insight_purpose")
		assert.ErrorIs(t, err, ErrFieldNotFound)
		_, err = s.FieldRepository.GetCurrent(ctx, other.UserID, "insight_purpose")
		assert.NoError(t, err)
	})

	t.Run("concurrent first upserts keep one current row", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.FieldRepository.UpsertCurrent(ctx, models.FieldUpsert{
					UserID: user.UserID, FieldIdentifier: "race", Category: models.CategoryCanvas, Content: fmt.Sprint(i),
				})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}

		records, err := s.FieldRepository.ListCurrent(ctx, user.UserID, models.CategoryCanvas)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("chat", func(t *testing.T) {
		older, err := s.ChatSessionRepository.CreateSession(ctx, models.ChatSession{UserID: user.UserID, ChatbotType: models.ChatbotBrandCoach})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultSessionTitle, older.Title)

		newer, err := s.ChatSessionRepository.CreateSession(ctx, models.ChatSession{UserID: user.UserID, ChatbotType: models.ChatbotBrandCoach})
		require.NoError(t, err)

		_, err = s.ChatMessageRepository.AppendTurn(ctx, older.ID,
			models.ChatMessage{Role: models.RoleUser, Content: "q"},
			models.ChatMessage{Role: models.RoleAssistant, Content: "a"},
		)
		require.NoError(t, err)

		sessions, err := s.ChatSessionRepository.ListSessions(ctx, user.UserID, models.ChatbotBrandCoach)
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, older.ID, sessions[0].ID, "appending bumps updated_at")
		assert.Equal(t, newer.ID, sessions[1].ID)

		messages, err := s.ChatMessageRepository.ListMessages(ctx, older.ID)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, models.RoleUser, messages[0].Role)
		assert.Equal(t, models.RoleAssistant, messages[1].Role)

		_, err = s.ChatSessionRepository.GetSession(ctx, older.ID, other.UserID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
		_, err = s.ChatSessionRepository.GetSession(ctx, "not-a-uuid", user.UserID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
		_, err = s.ChatSessionRepository.UpdateTitle(ctx, older.ID, other.UserID, "stolen")
		assert.ErrorIs(t, err, ErrSessionNotFound)

		_, err = s.ChatMessageRepository.AppendTurn(ctx, "0190b6a0-0000-7000-8000-000000000000",
			models.ChatMessage{Role: models.RoleUser, Content: "q"})
		assert.ErrorIs(t, err, ErrSessionNotFound)

		require.NoError(t, s.ChatSessionRepository.DeleteSession(ctx, older.ID, user.UserID))
		messages, err = s.ChatMessageRepository.ListMessages(ctx, older.ID)
		require.NoError(t, err)
		assert.Empty(t, messages)

		err = s.ChatSessionRepository.DeleteSession(ctx, older.ID, user.UserID)
		assert.True(t, errors.Is(err, ErrSessionNotFound))
	})

	t.Run("chatbot type is immutable", func(t *testing.T) {
		session, err := s.ChatSessionRepository.CreateSession(ctx, models.ChatSession{UserID: user.UserID, ChatbotType: models.ChatbotFieldAssistant})
		require.NoError(t, err)

		_, err = s.db.ExecContext(ctx, `UPDATE chat_sessions SET chatbot_type = 'brand-coach' WHERE id = $1`, session.ID)
		require.Error(t, err)
		assert.Equal(t, ErrInvalidRecord, constraintError(err, ErrSessionNotFound))
	})

}
