// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/idea-brand-coach/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalFieldRepository is the client's key-value store for field blobs.
type LocalFieldRepository interface {
	// Get returns [ErrLocalValueNotFound] for a missing key.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) (int64, error)
}

// LocalSessionRepository remembers who is logged in on this device.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	// LoadSession returns [ErrNoLocalSession] when nothing was saved.
	LoadSession(ctx context.Context) (models.LocalSession, error)
	ClearSession(ctx context.Context) error
}
