// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/idea-brand-coach/internal/cache"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/models"
)

const messagesCacheKey = "chat-messages"

func messagesKey(sessionID string) cache.Key {
	return cache.NewKey(messagesCacheKey, sessionID)
}

// cachedMessageRepository serves message lists from a cache. Writes go to
// the wrapped repository first and then drop exactly the session's key.
// Cache failures are logged and fall through to the database.
type cachedMessageRepository struct {
	next  ChatMessageRepository
	cache cache.Cache
}

func NewCachedMessageRepository(next ChatMessageRepository, c cache.Cache) ChatMessageRepository {
	return &cachedMessageRepository{next: next, cache: c}
}

func (r *cachedMessageRepository) ListMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	log := logger.FromContext(ctx)
	key := messagesKey(sessionID)

	var messages []models.ChatMessage
	found, err := r.cache.Get(ctx, key, &messages)
	if err != nil {
		log.Warn().Err(err).Str("func", "cachedMessageRepository.ListMessages").Str("key", key.String()).Msg("cache read failed")
	}
	if found && err == nil {
		return messages, nil
	}

	messages, err = r.next.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = r.cache.Set(ctx, key, messages); err != nil {
		log.Warn().Err(err).Str("func", "cachedMessageRepository.ListMessages").Str("key", key.String()).Msg("cache write failed")
	}
	return messages, nil
}

func (r *cachedMessageRepository) AppendTurn(ctx context.Context, sessionID string, messages ...models.ChatMessage) ([]models.ChatMessage, error) {
	saved, err := r.next.AppendTurn(ctx, sessionID, messages...)
	if err != nil {
		return nil, err
	}
	invalidateMessages(ctx, r.cache, sessionID)
	return saved, nil
}

func (r *cachedMessageRepository) ClearMessages(ctx context.Context, sessionID string) (int64, error) {
	deleted, err := r.next.ClearMessages(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	invalidateMessages(ctx, r.cache, sessionID)
	return deleted, nil
}

// cachedSessionRepository drops the cached message list of a deleted
// session, whose rows the foreign key cascade removed behind the message
// repository's back.
type cachedSessionRepository struct {
	ChatSessionRepository
	cache cache.Cache
}

func NewCachedSessionRepository(next ChatSessionRepository, c cache.Cache) ChatSessionRepository {
	return &cachedSessionRepository{ChatSessionRepository: next, cache: c}
}

func (r *cachedSessionRepository) DeleteSession(ctx context.Context, sessionID string, userID int64) error {
	if err := r.ChatSessionRepository.DeleteSession(ctx, sessionID, userID); err != nil {
		return err
	}
	invalidateMessages(ctx, r.cache, sessionID)
	return nil
}

func invalidateMessages(ctx context.Context, c cache.Cache, sessionID string) {
	key := messagesKey(sessionID)
	if _, err := c.Invalidate(ctx, key); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "invalidateMessages").Str("key", key.String()).Msg("cache invalidation failed")
	}
}
