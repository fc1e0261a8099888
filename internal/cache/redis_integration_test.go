//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T, ctx context.Context) string {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return endpoint
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	addr := startRedis(t, ctx)

	c, err := NewRedisCache(ctx, RedisOptions{Addr: addr, TTL: time.Minute})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set(ctx, NewKey("chat-messages", "s1"), []string{"hello"}))
	require.NoError(t, c.Set(ctx, NewKey("chat-messages", "s10"), []string{"other"}))
	require.NoError(t, c.Set(ctx, NewKey("chat-messages", "s1", "page"), []string{"nested"}))

	var got []string
	found, err := c.Get(ctx, NewKey("chat-messages", "s1"), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"hello"}, got)

	n, err := c.Invalidate(ctx, NewKey("chat-messages", "s1"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	found, err = c.Get(ctx, NewKey("chat-messages", "s1"), &got)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = c.Get(ctx, NewKey("chat-messages", "s10"), &got)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisCache(ctx, RedisOptions{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}
