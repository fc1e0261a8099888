package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	redisNamespace = "brandcoach"
	redisScanCount = 200
)

// RedisOptions configures NewRedisCache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache is a Cache backed by Redis.
type RedisCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisCache connects and pings Redis.
func NewRedisCache(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisCache{rdb: rdb, ttl: opts.TTL}, nil
}

var partEscaper = strings.NewReplacer("%", "%25", ":", "%3A")

// redisKey renders "brandcoach:<part>:<part>...". Separators inside a part
// are percent encoded so a prefix never matches across part boundaries.
func redisKey(key Key) string {
	var b strings.Builder
	b.WriteString(redisNamespace)
	for _, p := range key {
		b.WriteByte(':')
		b.WriteString(partEscaper.Replace(p))
	}
	return b.String()
}

// globEscape quotes the SCAN MATCH metacharacters of s.
func globEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (c *RedisCache) Get(ctx context.Context, key Key, dst any) (bool, error) {
	if len(key) == 0 {
		return false, ErrEmptyKey
	}

	raw, err := c.rdb.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRedisRequest, err)
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %w", ErrDecodeEntry, err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key Key, value any) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeEntry, err)
	}

	if err = c.rdb.Set(ctx, redisKey(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRedisRequest, err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, prefix Key) (int, error) {
	if len(prefix) == 0 {
		return 0, ErrEmptyKey
	}

	exact := redisKey(prefix)
	keys := []string{exact}

	iter := c.rdb.Scan(ctx, 0, globEscape(exact)+":*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRedisRequest, err)
	}

	n, err := c.rdb.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRedisRequest, err)
	}
	return int(n), nil
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
