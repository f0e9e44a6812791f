package galaxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"starsystem-server/internal/starsystem"
)

// Cache stores generated systems keyed by seed and coordinate. Entries are
// pure generator output, so a miss is always recoverable by regenerating.
type Cache interface {
	Get(ctx context.Context, key string) (*starsystem.StarSystem, error)
	Set(ctx context.Context, key string, system starsystem.StarSystem) error
}

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

func CacheKey(seed int64, c starsystem.Coordinate) string {
	return fmt.Sprintf("starsystem:%d:%d:%d:%d", seed, c.X, c.Y, c.Z)
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*starsystem.StarSystem, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}

	var system starsystem.StarSystem
	if err := json.Unmarshal(data, &system); err != nil {
		return nil, fmt.Errorf("failed to decode cached system %s: %w", key, err)
	}
	return &system, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, system starsystem.StarSystem) error {
	data, err := json.Marshal(system)
	if err != nil {
		return fmt.Errorf("failed to encode system %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}
	return nil
}

type memoryEntry struct {
	system    starsystem.StarSystem
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is the in-process fallback used when Redis is disabled.
// A ttl of zero keeps entries until eviction, as Redis does. When full it
// drops expired entries, then everything if still full.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*starsystem.StarSystem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	if entry.expired(c.now()) {
		delete(c.entries, key)
		return nil, ErrCacheMiss
	}

	system := entry.system.Clone()
	return &system, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, system starsystem.StarSystem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evict()
	}

	entry := memoryEntry{system: system.Clone()}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}
	c.entries[key] = entry
	return nil
}

func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *MemoryCache) evict() {
	now := c.now()
	for key, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, key)
		}
	}
	if len(c.entries) >= c.maxEntries {
		clear(c.entries)
	}
}
