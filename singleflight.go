package main

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"golang.org/x/sync/singleflight"

	"gurbani-server/internal/services"
	"gurbani-server/internal/types"
)

// Singleflight groups for deduplicating concurrent audio service calls.
// When many pages mount at once only one probe/lookup is in flight per key.
// Keys carry the audio service base so distinct services never share a call.
var (
	healthGroup   singleflight.Group
	audioURLGroup singleflight.Group
)

// cachedAudioProber fronts the audio service with the health and audio URL
// caches. It satisfies AudioProber.
type cachedAudioProber struct {
	client   *services.BaniDBClient
	health   *HealthCacheWrapper
	audioURL *AudioURLCacheWrapper
}

func newCachedAudioProber(client *services.BaniDBClient, backend CacheBackend, cfg CacheConfig) *cachedAudioProber {
	return &cachedAudioProber{
		client:   client,
		health:   NewHealthCacheWrapper(backend, cfg),
		audioURL: NewAudioURLCacheWrapper(backend, cfg),
	}
}

// CheckAPIHealth returns the cached probe result or probes once for all
// concurrent callers
func (p *cachedAudioProber) CheckAPIHealth(ctx context.Context) bool {
	if healthy, ok := p.health.Get(ctx); ok {
		IncrementCacheHit()
		return healthy
	}
	IncrementCacheMiss()

	ch := healthGroup.DoChan(p.client.AudioBase(), func() (interface{}, error) {
		// Detached so one caller's cancellation does not fail the shared probe
		probeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), services.BaniDBHTTPTimeout)
		defer cancel()

		healthProbesTotal.Add(1)
		healthy := p.client.CheckAPIHealth(probeCtx)
		if !healthy {
			healthProbeFailures.Add(1)
		}
		p.health.Set(probeCtx, healthy)
		return healthy, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			slog.Debug("singleflight: shared audio health probe")
		}
		return res.Val.(bool)
	case <-ctx.Done():
		return false
	}
}

// ShabadAudioURL resolves a recording URL, remembering both hits and misses
func (p *cachedAudioProber) ShabadAudioURL(ctx context.Context, info types.ContentInfo) (string, error) {
	if url, notFound, ok := p.audioURL.Get(ctx, info.ShabadID); ok {
		IncrementCacheHit()
		if notFound {
			return "", services.ErrNoAudio
		}
		return url, nil
	}
	IncrementCacheMiss()

	key := p.client.AudioBase() + "#" + strconv.Itoa(info.ShabadID)
	ch := audioURLGroup.DoChan(key, func() (interface{}, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), services.BaniDBHTTPTimeout)
		defer cancel()

		audioLookupsTotal.Add(1)
		url, err := p.client.ShabadAudioURL(lookupCtx, info)
		switch {
		case err == nil:
			p.audioURL.Set(lookupCtx, info.ShabadID, url)
		case errors.Is(err, services.ErrNoAudio):
			p.audioURL.Set(lookupCtx, info.ShabadID, "")
		}
		return url, err
	})

	select {
	case res := <-ch:
		if res.Shared {
			slog.Debug("singleflight: shared audio url lookup", "shabad_id", info.ShabadID)
		}
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
