package cache

import "time"

// CacheConfig holds cache TTL configuration
type CacheConfig struct {
	SearchResultTTL  time.Duration
	ShabadTTL        time.Duration
	AngTTL           time.Duration
	HukamnamaTTL     time.Duration
	AudioURLTTL      time.Duration
	AudioNotFoundTTL time.Duration
	HealthTTL        time.Duration
	UnhealthyTTL     time.Duration
	MaxEntries       int
	CleanupInterval  time.Duration
}

// DefaultCacheConfig returns sensible defaults
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		SearchResultTTL:  5 * time.Minute,
		ShabadTTL:        24 * time.Hour, // Gurbani text does not change
		AngTTL:           24 * time.Hour,
		HukamnamaTTL:     10 * time.Minute, // today's hukamnama is published once in the morning
		AudioURLTTL:      6 * time.Hour,
		AudioNotFoundTTL: 30 * time.Minute,
		HealthTTL:        30 * time.Second,
		UnhealthyTTL:     10 * time.Second, // retry quickly once the service comes back
		MaxEntries:       10000,
		CleanupInterval:  2 * time.Minute,
	}
}
