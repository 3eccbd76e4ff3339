package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurbani-server/internal/config"
	"gurbani-server/internal/services"
	"gurbani-server/internal/types"
)

func TestAudioURLCacheWrapper(t *testing.T) {
	ctx := context.Background()
	c := NewAudioURLCacheWrapper(newTestBackend(t), DefaultCacheConfig())

	_, _, ok := c.Get(ctx, 7)
	assert.False(t, ok)

	c.Set(ctx, 7, "https://audio.example.org/7.mp3")
	url, notFound, ok := c.Get(ctx, 7)
	require.True(t, ok)
	assert.False(t, notFound)
	assert.Equal(t, "https://audio.example.org/7.mp3", url)

	c.Set(ctx, 8, "")
	url, notFound, ok = c.Get(ctx, 8)
	require.True(t, ok)
	assert.True(t, notFound)
	assert.Empty(t, url)
}

func TestHealthCacheWrapper(t *testing.T) {
	ctx := context.Background()
	c := NewHealthCacheWrapper(newTestBackend(t), DefaultCacheConfig())

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	c.Set(ctx, false)
	healthy, ok := c.Get(ctx)
	require.True(t, ok)
	assert.False(t, healthy)

	c.Set(ctx, true)
	healthy, ok = c.Get(ctx)
	require.True(t, ok)
	assert.True(t, healthy)
}

func TestNewCacheBackendFallsBackToMemory(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.RedisURL = ""

	backend, kind := newCacheBackend(cfg, DefaultCacheConfig())
	defer backend.Close()

	assert.Equal(t, "memory", kind)
}

func TestCachedAudioProberCachesResults(t *testing.T) {
	var health, lookups atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			health.Add(1)
			w.Write([]byte(`{"status":"ok"}`))
		case "/shabads/7/audio":
			lookups.Add(1)
			w.Write([]byte(`{"url":"https://audio.example.org/7.mp3"}`))
		default:
			lookups.Add(1)
			w.Write([]byte(`{"url":""}`))
		}
	}))
	defer srv.Close()

	client := services.NewBaniDBClient(srv.URL, srv.URL)
	p := newCachedAudioProber(client, newTestBackend(t), DefaultCacheConfig())
	ctx := context.Background()

	assert.True(t, p.CheckAPIHealth(ctx))
	assert.True(t, p.CheckAPIHealth(ctx))
	assert.Equal(t, int32(1), health.Load())

	url, err := p.ShabadAudioURL(ctx, types.ContentInfo{ShabadID: 7})
	require.NoError(t, err)
	assert.Equal(t, "https://audio.example.org/7.mp3", url)
	_, err = p.ShabadAudioURL(ctx, types.ContentInfo{ShabadID: 7})
	require.NoError(t, err)

	// Missing recordings are remembered too
	_, err = p.ShabadAudioURL(ctx, types.ContentInfo{ShabadID: 8})
	assert.ErrorIs(t, err, services.ErrNoAudio)
	_, err = p.ShabadAudioURL(ctx, types.ContentInfo{ShabadID: 8})
	assert.ErrorIs(t, err, services.ErrNoAudio)

	assert.Equal(t, int32(2), lookups.Load())
}
