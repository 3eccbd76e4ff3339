package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"gurbani-server/internal/services"
)

// LoadResult is what a loader exposes to its render callback
type LoadResult[T any] struct {
	Loading bool
	Data    *T
	Err     error
}

// FetchFunc fetches and decodes the document at url
type FetchFunc[T any] func(ctx context.Context, url string) (*T, error)

// Loader fetches JSON documents by URL with caching and request coalescing.
// Concurrent loads of the same URL share one upstream request.
type Loader[T any] struct {
	name    string
	backend CacheBackend
	ttl     time.Duration
	timeout time.Duration
	fetch   FetchFunc[T]
	group   singleflight.Group
}

// NewLoader creates a loader. name prefixes its cache keys.
func NewLoader[T any](name string, backend CacheBackend, ttl time.Duration, fetch FetchFunc[T]) *Loader[T] {
	return &Loader[T]{
		name:    name,
		backend: backend,
		ttl:     ttl,
		timeout: services.BaniDBHTTPTimeout,
		fetch:   fetch,
	}
}

func (l *Loader[T]) key(url string) string {
	return "loader:" + l.name + ":" + url
}

// Peek returns cached data without fetching
func (l *Loader[T]) Peek(ctx context.Context, url string) (*T, bool) {
	if l.backend == nil {
		return nil, false
	}
	data, found, err := l.backend.Get(ctx, l.key(url))
	if err != nil || !found {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Debug("loader: dropping undecodable cache entry", "loader", l.name, "error", err)
		return nil, false
	}
	return &v, true
}

// Load returns cached data or fetches it. If ctx ends before the fetch
// completes the result reports Loading; the shared fetch still finishes and
// fills the cache for the next request.
func (l *Loader[T]) Load(ctx context.Context, url string) LoadResult[T] {
	if v, ok := l.Peek(ctx, url); ok {
		IncrementCacheHit()
		return LoadResult[T]{Data: v}
	}
	IncrementCacheMiss()

	ch := l.group.DoChan(url, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
		defer cancel()

		upstreamRequestsTotal.Add(1)
		v, err := l.fetch(fetchCtx, url)
		if err != nil {
			upstreamErrorsTotal.Add(1)
			return nil, err
		}
		if l.backend != nil {
			if data, err := json.Marshal(v); err == nil {
				if err := l.backend.Set(fetchCtx, l.key(url), data, l.ttl); err != nil {
					slog.Debug("loader: cache write failed", "loader", l.name, "error", err)
				}
			}
		}
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			slog.Debug("singleflight: shared loader fetch", "loader", l.name, "url", url)
		}
		if res.Err != nil {
			return LoadResult[T]{Err: res.Err}
		}
		return LoadResult[T]{Data: res.Val.(*T)}
	case <-ctx.Done():
		return LoadResult[T]{Loading: true}
	}
}

// loaders groups the per-document loaders used by the handlers
type loaders struct {
	search    *Loader[services.SearchResponse]
	shabad    *Loader[services.ShabadResponse]
	ang       *Loader[services.AngResponse]
	hukamnama *Loader[services.HukamnamaResponse]
}

// fetchWith adapts a client to a FetchFunc for T
func fetchWith[T any](client *services.BaniDBClient) FetchFunc[T] {
	return func(ctx context.Context, url string) (*T, error) {
		var v T
		if err := client.FetchJSON(ctx, url, &v); err != nil {
			return nil, err
		}
		return &v, nil
	}
}

func newLoaders(client *services.BaniDBClient, backend CacheBackend, cfg CacheConfig) *loaders {
	return &loaders{
		search:    NewLoader("search", backend, cfg.SearchResultTTL, fetchWith[services.SearchResponse](client)),
		shabad:    NewLoader("shabad", backend, cfg.ShabadTTL, fetchWith[services.ShabadResponse](client)),
		ang:       NewLoader("ang", backend, cfg.AngTTL, fetchWith[services.AngResponse](client)),
		hukamnama: NewLoader("hukamnama", backend, cfg.HukamnamaTTL, fetchWith[services.HukamnamaResponse](client)),
	}
}
