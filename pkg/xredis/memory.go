package xredis

import (
	"context"
	"encoding/json"
	"path"
	"time"

	"github.com/puzpuzpuz/xsync"
)

type memoryEntry struct {
	value     string
	expiredAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiredAt.IsZero() && !now.Before(e.expiredAt)
}

// memoryClient is used when no redis address is configured. Patterns follow
// path.Match rather than the full redis glob syntax.
type memoryClient struct {
	entries *xsync.MapOf[string, memoryEntry]
}

func NewMemoryClient() *memoryClient {
	return &memoryClient{entries: xsync.NewMapOf[memoryEntry]()}
}

func (c *memoryClient) load(key string) (memoryEntry, bool) {
	entry, ok := c.entries.Load(key)
	if !ok {
		return memoryEntry{}, false
	}

	if entry.expired(time.Now()) {
		c.entries.Delete(key)
		return memoryEntry{}, false
	}

	return entry, true
}

func (c *memoryClient) Exist(ctx context.Context, key string) (bool, error) {
	_, ok := c.load(key)
	return ok, nil
}

func (c *memoryClient) Del(ctx context.Context, key ...string) error {
	for _, k := range key {
		c.entries.Delete(k)
	}

	return nil
}

func (c *memoryClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := []string{}
	now := time.Now()
	c.entries.Range(func(key string, entry memoryEntry) bool {
		if entry.expired(now) {
			return true
		}

		if ok, _ := path.Match(pattern, key); ok {
			keys = append(keys, key)
		}

		return true
	})

	return keys, nil
}

func (c *memoryClient) Set(ctx context.Context, key, value string) error {
	c.entries.Store(key, memoryEntry{value: value})
	return nil
}

func (c *memoryClient) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	entry := memoryEntry{value: string(b)}
	if ttl > 0 {
		entry.expiredAt = time.Now().Add(ttl)
	}

	c.entries.Store(key, entry)
	return nil
}

func (c *memoryClient) Get(ctx context.Context, key string) (string, error) {
	entry, ok := c.load(key)
	if !ok {
		return "", ErrNotFound
	}

	return entry.value, nil
}

func (c *memoryClient) GetObj(ctx context.Context, key string, v any) error {
	entry, ok := c.load(key)
	if !ok {
		return ErrNotFound
	}

	return json.Unmarshal([]byte(entry.value), v)
}
