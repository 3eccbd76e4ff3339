package main

import (
	"time"

	"gurbani-server/internal/cache"
	"gurbani-server/internal/types"
)

// Type aliases for internal/cache types
type CacheBackend = cache.CacheBackend
type CacheConfig = cache.CacheConfig

// DefaultCacheConfig wraps internal/cache.DefaultCacheConfig
func DefaultCacheConfig() CacheConfig {
	return cache.DefaultCacheConfig()
}

// NewMemoryCache wraps internal/cache.NewMemoryCache
func NewMemoryCache(maxSize int, cleanupInterval time.Duration) *cache.MemoryCache {
	return cache.NewMemoryCache(maxSize, cleanupInterval)
}

// Type aliases for internal/types cache types
type CachedAudioURL = types.CachedAudioURL
type CachedHealth = types.CachedHealth
