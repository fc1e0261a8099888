package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/idea-brand-coach/internal/cache"
	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository        UserRepository
	FieldRepository       FieldRepository
	ChatSessionRepository ChatSessionRepository
	ChatMessageRepository ChatMessageRepository

	db    *DB
	cache cache.Cache
}

// NewStorages connects to Postgres, applies migrations and wires the
// message cache: Redis when an address is configured, memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	messageCache, err := newMessageCache(ctx, cfg.Cache, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return newStorages(db, messageCache, log), nil
}

func newStorages(db *DB, messageCache cache.Cache, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		FieldRepository:       NewFieldRepository(db, log),
		ChatSessionRepository: NewCachedSessionRepository(NewChatSessionRepository(db, log), messageCache),
		ChatMessageRepository: NewCachedMessageRepository(NewChatMessageRepository(db, log), messageCache),
		db:                    db,
		cache:                 messageCache,
	}
}

func newMessageCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (cache.Cache, error) {
	if cfg.RedisAddr == "" {
		log.Info().Str("func", "newMessageCache").Msg("using in-memory message cache")
		return cache.NewMemoryCache(cfg.TTL), nil
	}

	redisCache, err := cache.NewRedisCache(ctx, cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.TTL,
	})
	if err != nil {
		log.Err(err).Str("func", "newMessageCache").Str("addr", cfg.RedisAddr).Msg("redis is unavailable")
		return nil, fmt.Errorf("redis cache error: %w", err)
	}

	log.Info().Str("func", "newMessageCache").Str("addr", cfg.RedisAddr).Msg("using redis message cache")
	return redisCache, nil
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the cache and the database pool.
func (s *Storages) Close() error {
	return errors.Join(s.cache.Close(), s.db.Close())
}
