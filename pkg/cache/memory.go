package cache

import (
	"context"
	"encoding/json"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 5 * time.Minute

// MemoryCache is an in-process Cache used when Redis is disabled.
// Values are stored JSON-encoded so callers never share memory with it.
type MemoryCache struct {
	store *gocache.Cache
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{store: gocache.New(gocache.NoExpiration, memoryCleanupInterval)}
}

func (m *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	v, ok := m.store.Get(key)
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(v.([]byte), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value for ttl; a non-positive ttl never expires
func (m *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.store.Set(key, raw, ttl)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.store.Delete(k)
	}
	return nil
}

// DeletePattern matches keys with Redis-style globs (path.Match syntax)
func (m *MemoryCache) DeletePattern(_ context.Context, pattern string) error {
	for k := range m.store.Items() {
		if ok, _ := path.Match(pattern, k); ok {
			m.store.Delete(k)
		}
	}
	return nil
}

func (m *MemoryCache) Ping(context.Context) error {
	return nil
}

// Len returns the number of live entries
func (m *MemoryCache) Len() int {
	return len(m.store.Items())
}
