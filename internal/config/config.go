// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration shared by the brand coach
// server and client binaries. Each binary reads only the groups it needs.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env:       variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`
	AI      AI      `envPrefix:"AI_"`
	Chat    Chat    `envPrefix:"CHAT_"`

	// JSONFilePath points to an optional JSON file merged below env and flags.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds token, integrity and version settings.
type App struct {
	// TokenSignKey signs and verifies access tokens. Server only.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey enables the HashSHA256 request integrity header when set.
	// Server and client must agree on it.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is served by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence backends.
type Storage struct {
	// DB is the server's Postgres database.
	DB DB `envPrefix:"DB_"`

	// Local is the client's SQLite database.
	Local Local `envPrefix:"LOCAL_"`

	// Cache configures the server-side message list cache.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds the Postgres connection string.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds the client database location.
type Local struct {
	// Path of the SQLite file. Created on first start.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"PATH"`
}

// Cache selects between Redis and the in-process cache.
type Cache struct {
	// RedisAddr enables Redis when non-empty.
	// Env: STORAGE_CACHE_REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`

	// Env: STORAGE_CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Env: STORAGE_CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// TTL bounds how long a cached list may live without invalidation.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds the inbound HTTP settings.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout caps a single inbound request, including the AI call
	// of a chat send.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is a base URL or host:port of the server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background processing settings.
type Workers struct {
	// DebounceInterval is the quiet period before a field edit is pushed.
	// Env: WORKERS_DEBOUNCE_INTERVAL
	DebounceInterval time.Duration `env:"DEBOUNCE_INTERVAL"`

	// KnowledgeSyncInterval is the tick of the knowledge index worker.
	// Env: WORKERS_KNOWLEDGE_SYNC_INTERVAL
	KnowledgeSyncInterval time.Duration `env:"KNOWLEDGE_SYNC_INTERVAL"`

	// KnowledgeSyncBatch limits the records pushed per tick.
	// Env: WORKERS_KNOWLEDGE_SYNC_BATCH
	KnowledgeSyncBatch int `env:"KNOWLEDGE_SYNC_BATCH"`
}

// AI configures the OpenAI compatible completion API.
type AI struct {
	// Env: AI_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Env: AI_API_KEY
	APIKey string `env:"API_KEY"`

	// Model answers chat messages.
	// Env: AI_MODEL
	Model string `env:"MODEL"`

	// TitleModel generates session titles. Falls back to Model.
	// Env: AI_TITLE_MODEL
	TitleModel string `env:"TITLE_MODEL"`

	// VectorStoreID enables the knowledge index worker when set.
	// Env: AI_VECTOR_STORE_ID
	VectorStoreID string `env:"VECTOR_STORE_ID"`

	// Env: AI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Chat holds client chat behaviour switches.
type Chat struct {
	// DisableAutoCreate stops the client from creating a session on the
	// first send when none exists.
	// Env: CHAT_DISABLE_AUTO_CREATE
	DisableAutoCreate bool `env:"DISABLE_AUTO_CREATE"`
}

// GetStructuredConfig loads the server configuration. Sources, lowest
// priority first: built-in defaults, JSON file, environment (including an
// optional .env file), command-line flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
