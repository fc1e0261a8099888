package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/idea-brand-coach/internal/cache"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedMessageRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	repo, mock := newTestMessageRepo(t)
	memory := cache.NewMemoryCache(time.Minute)
	cached := NewCachedMessageRepository(repo, memory)

	// another session's list must survive the writes below
	require.NoError(t, memory.Set(ctx, messagesKey("s2"), []models.ChatMessage{{ID: "other"}}))

	mock.ExpectQuery("FROM chat_messages").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(messageColumnNames).AddRow("m1", "s1", "user", "hi", nil, now))

	first, err := cached.ListMessages(ctx, "s1")
	require.NoError(t, err)
	second, err := cached.ListMessages(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, memory.Len())

	mock.ExpectBegin()
	mock.ExpectPrepare("INSERT INTO chat_messages").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectExec("UPDATE chat_sessions SET updated_at").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err = cached.AppendTurn(ctx, "s1", models.ChatMessage{Role: models.RoleUser, Content: "again"})
	require.NoError(t, err)
	assert.Equal(t, 1, memory.Len())

	var other []models.ChatMessage
	found, err := memory.Get(ctx, messagesKey("s2"), &other)
	require.NoError(t, err)
	assert.True(t, found)

	mock.ExpectQuery("FROM chat_messages").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(messageColumnNames).
			AddRow("m1", "s1", "user", "hi", nil, now).
			AddRow("id-1", "s1", "user", "again", nil, now))

	third, err := cached.ListMessages(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, third, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedSessionRepository_DeleteDropsMessages(t *testing.T) {
	ctx := context.Background()

	repo, mock := newTestSessionRepo(t)
	memory := cache.NewMemoryCache(time.Minute)
	cached := NewCachedSessionRepository(repo, memory)

	require.NoError(t, memory.Set(ctx, messagesKey("s1"), []models.ChatMessage{{ID: "m1"}}))

	mock.ExpectExec("DELETE FROM chat_sessions").
		WithArgs("s1", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, cached.DeleteSession(ctx, "s1", 7))
	assert.Equal(t, 0, memory.Len())
}

func TestCachedSessionRepository_FailedDeleteKeepsMessages(t *testing.T) {
	ctx := context.Background()

	repo, mock := newTestSessionRepo(t)
	memory := cache.NewMemoryCache(time.Minute)
	cached := NewCachedSessionRepository(repo, memory)

	require.NoError(t, memory.Set(ctx, messagesKey("s1"), []models.ChatMessage{{ID: "m1"}}))

	mock.ExpectExec("DELETE FROM chat_sessions").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, cached.DeleteSession(ctx, "s1", 7), ErrSessionNotFound)
	assert.Equal(t, 1, memory.Len())
}
