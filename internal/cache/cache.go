// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache provides the query cache used for chat session and message
// lists. Entries are addressed by hierarchical keys so that a whole family
// of entries can be dropped with one prefix:
//
//	["chat-sessions", chatbotType]
//	["chat-messages", chatbotType, sessionID]
//
// Values are stored JSON encoded in both implementations.
package cache

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrEmptyKey     = errors.New("cache key is empty")
	ErrCacheClosed  = errors.New("cache is closed")
	ErrDecodeEntry  = errors.New("error decoding cache entry")
	ErrEncodeEntry  = errors.New("error encoding cache entry")
	ErrRedisRequest = errors.New("redis request failed")
)

// Key is a hierarchical cache key.
type Key []string

// NewKey builds a key from its parts.
func NewKey(parts ...string) Key {
	return Key(parts)
}

// String renders the key for logs.
func (k Key) String() string {
	return "[" + strings.Join(k, ", ") + "]"
}

// HasPrefix reports whether every part of prefix equals the corresponding
// part of k.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Cache stores JSON encoded values under hierarchical keys.
type Cache interface {
	// Get decodes the entry at key into dst. found is false on a miss.
	Get(ctx context.Context, key Key, dst any) (found bool, err error)
	// Set stores value at key, replacing any previous entry.
	Set(ctx context.Context, key Key, value any) error
	// Invalidate drops key and every entry below it and reports how many
	// entries were removed.
	Invalidate(ctx context.Context, prefix Key) (int, error)
	Close() error
}
