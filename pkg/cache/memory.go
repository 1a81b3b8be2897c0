package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value  string
	expiry time.Time
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryCache returns an in-process Cache. Used in tests and as a
// fallback when no Redis address is configured.
func NewMemoryCache() Cache {
	return &memoryCache{entries: make(map[string]memoryEntry)}
}

func (m *memoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiry = time.Now().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return "", ErrMiss
	}
	if !entry.expiry.IsZero() && time.Now().After(entry.expiry) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return "", ErrMiss
	}
	return entry.value, nil
}

func (m *memoryCache) Del(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}
