package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealth_NoPingers(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, svc.Health(context.Background()))
}

func TestHealth_AllUp(t *testing.T) {
	calls := 0
	up := pingFunc(func(context.Context) error { calls++; return nil })

	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop(), up, up)
	require.NoError(t, err)

	assert.NoError(t, svc.Health(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestHealth_DatabaseDown(t *testing.T) {
	down := errors.New("connection refused")
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop(), pingFunc(func(context.Context) error { return down }))
	require.NoError(t, err)

	err = svc.Health(context.Background())
	assert.ErrorIs(t, err, ErrUnhealthy)
	assert.ErrorIs(t, err, down)
}
