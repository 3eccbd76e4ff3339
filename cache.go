package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"gurbani-server/internal/config"
)

// newCacheBackend uses Redis when REDIS_URL / redis_url is set, otherwise
// memory. A Redis connection failure falls back to memory.
func newCacheBackend(cfg *config.ServerConfig, cacheCfg CacheConfig) (CacheBackend, string) {
	if cfg.HasRedis() {
		slog.Info("initializing Redis cache")
		backend, err := newRedisBackend(cfg.RedisURL, cfg.CachePrefix)
		if err == nil {
			slog.Info("Redis cache initialized")
			return backend, "redis"
		}
		slog.Warn("Redis connection failed, using memory cache", "error", err)
	}

	slog.Info("initializing in-memory cache", "max_entries", cacheCfg.MaxEntries)
	return NewMemoryCache(cacheCfg.MaxEntries, cacheCfg.CleanupInterval), "memory"
}

// AudioURLCacheWrapper provides typed access to resolved shabad audio URLs
type AudioURLCacheWrapper struct {
	backend CacheBackend
	config  CacheConfig
}

func NewAudioURLCacheWrapper(backend CacheBackend, config CacheConfig) *AudioURLCacheWrapper {
	return &AudioURLCacheWrapper{backend: backend, config: config}
}

func audioURLKey(shabadID int) string {
	return "audio:" + strconv.Itoa(shabadID)
}

// Get returns (url, notFound, inCache). inCache with notFound means a previous
// lookup found no recording.
func (c *AudioURLCacheWrapper) Get(ctx context.Context, shabadID int) (string, bool, bool) {
	data, found, err := c.backend.Get(ctx, audioURLKey(shabadID))
	if err != nil || !found {
		return "", false, false
	}

	var cached CachedAudioURL
	if err := json.Unmarshal(data, &cached); err != nil {
		return "", false, false
	}
	return cached.URL, cached.NotFound, true
}

// Set stores a lookup result; an empty url is stored as "not found" with the shorter TTL
func (c *AudioURLCacheWrapper) Set(ctx context.Context, shabadID int, url string) {
	cached := CachedAudioURL{URL: url, FetchedAt: time.Now().Unix(), NotFound: url == ""}
	data, err := json.Marshal(cached)
	if err != nil {
		return
	}

	ttl := c.config.AudioURLTTL
	if cached.NotFound {
		ttl = c.config.AudioNotFoundTTL
	}
	if err := c.backend.Set(ctx, audioURLKey(shabadID), data, ttl); err != nil {
		slog.Debug("failed to cache audio url", "shabad_id", shabadID, "error", err)
	}
}

// HealthCacheWrapper remembers the last audio service health probe
type HealthCacheWrapper struct {
	backend CacheBackend
	config  CacheConfig
}

func NewHealthCacheWrapper(backend CacheBackend, config CacheConfig) *HealthCacheWrapper {
	return &HealthCacheWrapper{backend: backend, config: config}
}

const healthKey = "audio:health"

// Get returns (healthy, inCache)
func (c *HealthCacheWrapper) Get(ctx context.Context) (bool, bool) {
	data, found, err := c.backend.Get(ctx, healthKey)
	if err != nil || !found {
		return false, false
	}

	var cached CachedHealth
	if err := json.Unmarshal(data, &cached); err != nil {
		return false, false
	}
	return cached.Healthy, true
}

// Set stores a probe result. Unhealthy results expire sooner.
func (c *HealthCacheWrapper) Set(ctx context.Context, healthy bool) {
	data, err := json.Marshal(CachedHealth{Healthy: healthy, CheckedAt: time.Now().Unix()})
	if err != nil {
		return
	}

	ttl := c.config.HealthTTL
	if !healthy {
		ttl = c.config.UnhealthyTTL
	}
	c.backend.Set(ctx, healthKey, data, ttl)
}
