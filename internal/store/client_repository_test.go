package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "client.db")
	s, err := NewClientStorages(context.Background(), config.ClientStorage{LocalPath: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestLocalFieldRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).FieldRepository

	_, err := repo.Get(ctx, "7:insight_purpose")
	assert.ErrorIs(t, err, ErrLocalValueNotFound)

	require.NoError(t, repo.Set(ctx, "7:insight_purpose", `{"content":"v1"}`))
	require.NoError(t, repo.Set(ctx, "7:insight_purpose", `{"content":"v2"}`))

	value, err := repo.Get(ctx, "7:insight_purpose")
	require.NoError(t, err)
	assert.Equal(t, `{"content":"v2"}`, value)

	require.NoError(t, repo.Delete(ctx, "7:insight_purpose"))
	_, err = repo.Get(ctx, "7:insight_purpose")
	assert.ErrorIs(t, err, ErrLocalValueNotFound)

	// deleting a missing key is not an error
	require.NoError(t, repo.Delete(ctx, "7:insight_purpose"))
}

func TestLocalFieldRepository_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).FieldRepository

	for _, key := range []string{"7:a", "7:b", "70:a", "8:a", "7_:x"} {
		require.NoError(t, repo.Set(ctx, key, "{}"))
	}

	deleted, err := repo.DeletePrefix(ctx, "7:")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	for _, key := range []string{"70:a", "8:a", "7_:x"} {
		_, err := repo.Get(ctx, key)
		assert.NoError(t, err, key)
	}
}

func TestLocalSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).SessionRepository

	_, err := repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrNoLocalSession)

	require.NoError(t, repo.SaveSession(ctx, models.LocalSession{UserID: 1, Token: "first"}))
	require.NoError(t, repo.SaveSession(ctx, models.LocalSession{UserID: 2, Token: "second"}))

	session, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LocalSession{UserID: 2, Token: "second"}, session)

	require.NoError(t, repo.ClearSession(ctx))
	_, err = repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrNoLocalSession)
}

func TestNewClientStorages_ReopensExistingFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "client.db")

	first, err := NewClientStorages(ctx, config.ClientStorage{LocalPath: path}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.FieldRepository.Set(ctx, "1:x", "kept"))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, config.ClientStorage{LocalPath: path}, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	value, err := second.FieldRepository.Get(ctx, "1:x")
	require.NoError(t, err)
	assert.Equal(t, "kept", value)
}
