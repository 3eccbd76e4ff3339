package cache

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryCache implements CacheBackend with a mutex-guarded map.
// Entries past their TTL are invisible immediately and swept periodically.
type MemoryCache struct {
	mu              sync.RWMutex
	data            map[string]memoryCacheEntry
	maxSize         int
	cleanupInterval time.Duration
	stopCh          chan struct{}
	stopOnce        sync.Once
}

type memoryCacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(maxSize int, cleanupInterval time.Duration) *MemoryCache {
	mc := &MemoryCache{
		data:            make(map[string]memoryCacheEntry),
		maxSize:         maxSize,
		cleanupInterval: cleanupInterval,
		stopCh:          make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go mc.cleanupLoop()
	}
	return mc
}

func (m *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	m.data[key] = memoryCacheEntry{value: value, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included until swept
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *MemoryCache) Close() error {
	m.stopOnce.Do(func() { close(m.stopCh) })
	return nil
}

func (m *MemoryCache) cleanupLoop() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

// cleanup drops expired entries, then the soonest-expiring ones while over maxSize
func (m *MemoryCache) cleanup() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	type keyed struct {
		key       string
		expiresAt time.Time
	}
	live := make([]keyed, 0, len(m.data))
	for k, entry := range m.data {
		if now.After(entry.expiresAt) {
			delete(m.data, k)
			continue
		}
		live = append(live, keyed{k, entry.expiresAt})
	}

	if m.maxSize <= 0 || len(live) <= m.maxSize {
		return
	}
	sort.Slice(live, func(i, j int) bool {
		return live[i].expiresAt.Before(live[j].expiresAt)
	})
	for _, e := range live[:len(live)-m.maxSize] {
		delete(m.data, e.key)
	}
}
