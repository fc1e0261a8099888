package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// keySep cannot appear in chatbot types or uuids.
const keySep = "\x1f"

type memoryEntry struct {
	key       Key
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process Cache. A zero ttl keeps entries until they
// are invalidated.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
	closed  bool
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func joinKey(key Key) string {
	return strings.Join(key, keySep)
}

func (c *MemoryCache) Get(_ context.Context, key Key, dst any) (bool, error) {
	if len(key) == 0 {
		return false, ErrEmptyKey
	}

	c.mu.RLock()
	e, ok := c.entries[joinKey(key)]
	closed := c.closed
	c.mu.RUnlock()

	if closed {
		return false, ErrCacheClosed
	}
	if !ok || (!e.expiresAt.IsZero() && !c.now().Before(e.expiresAt)) {
		return false, nil
	}

	if err := json.Unmarshal(e.value, dst); err != nil {
		return false, fmt.Errorf("%w: %w", ErrDecodeEntry, err)
	}
	return true, nil
}

func (c *MemoryCache) Set(_ context.Context, key Key, value any) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeEntry, err)
	}

	e := memoryEntry{key: append(Key(nil), key...), value: raw}
	if c.ttl > 0 {
		e.expiresAt = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrCacheClosed
	}
	c.entries[joinKey(key)] = e
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context, prefix Key) (int, error) {
	if len(prefix) == 0 {
		return 0, ErrEmptyKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, ErrCacheClosed
	}

	n := 0
	for k, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			delete(c.entries, k)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.entries = nil
	return nil
}
