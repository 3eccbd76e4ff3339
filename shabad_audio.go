package main

import (
	"context"
	"sync"

	"gurbani-server/internal/types"
)

// AudioState is the availability of a remote-dependent audio feature
type AudioState int

const (
	AudioPending AudioState = iota
	AudioUnavailable
	AudioAvailable
)

func (s AudioState) String() string {
	switch s {
	case AudioUnavailable:
		return "unavailable"
	case AudioAvailable:
		return "available"
	default:
		return "pending"
	}
}

// AudioProber is the part of the audio service a mount needs
type AudioProber interface {
	CheckAPIHealth(ctx context.Context) bool
	ShabadAudioURL(ctx context.Context, info types.ContentInfo) (string, error)
}

// AudioSnapshot is a read-only copy of a ShabadAudio
type AudioSnapshot struct {
	State AudioState
	URL   string
}

// Playable reports whether the on-demand player can be offered
func (s AudioSnapshot) Playable() bool {
	return s.State == AudioAvailable && s.URL != ""
}

// ShabadAudio owns the audio URL of one meta view for the lifetime of a mount.
// The URL is written at most once, only after a healthy probe and a
// successful lookup, and never after Unmount.
type ShabadAudio struct {
	prober AudioProber

	mu       sync.Mutex
	state    AudioState
	url      string
	disposed bool
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewShabadAudio(prober AudioProber) *ShabadAudio {
	return &ShabadAudio{prober: prober, done: make(chan struct{})}
}

// Mount starts the probe-then-lookup sequence in the background. Only the
// shabad type has recordings; other types settle unavailable immediately.
// Mount is a no-op after the first call or after Unmount.
func (a *ShabadAudio) Mount(ctx context.Context, contentType types.ContentType, info types.ContentInfo) {
	a.mu.Lock()
	if a.disposed || a.cancel != nil {
		a.mu.Unlock()
		return
	}
	if contentType != types.ContentShabad || a.prober == nil {
		a.cancel = func() {}
		a.mu.Unlock()
		a.settle(AudioUnavailable, "")
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.mu.Unlock()

	go func() {
		defer cancel()
		a.run(ctx, info)
	}()
}

func (a *ShabadAudio) run(ctx context.Context, info types.ContentInfo) {
	log := LoggerFromContext(ctx)

	if !a.prober.CheckAPIHealth(ctx) {
		log.Debug("audio service unhealthy, player disabled", "shabad_id", info.ShabadID)
		a.settle(AudioUnavailable, "")
		return
	}
	if ctx.Err() != nil {
		a.settle(AudioUnavailable, "")
		return
	}

	url, err := a.prober.ShabadAudioURL(ctx, info)
	if err != nil || url == "" {
		log.Debug("no shabad audio", "shabad_id", info.ShabadID, "error", err)
		a.settle(AudioUnavailable, "")
		return
	}
	a.settle(AudioAvailable, url)
}

// settle records the outcome once. Later calls, and calls after Unmount,
// change nothing.
func (a *ShabadAudio) settle(state AudioState, url string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != AudioPending {
		return
	}
	if a.disposed {
		audioDisposedTotal.Add(1)
		return
	}
	a.state = state
	a.url = url
	if state == AudioAvailable {
		audioAvailableTotal.Add(1)
	}
	close(a.done)
}

// Unmount cancels an in-flight sequence and disposes the state
func (a *ShabadAudio) Unmount() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.disposed {
		return
	}
	a.disposed = true
	if a.cancel != nil {
		a.cancel()
	}
}

// Done is closed when the sequence settles. It stays open if the mount was
// disposed first.
func (a *ShabadAudio) Done() <-chan struct{} {
	return a.done
}

// Wait blocks until the sequence settles or ctx ends, then returns a snapshot
func (a *ShabadAudio) Wait(ctx context.Context) AudioSnapshot {
	select {
	case <-a.done:
	case <-ctx.Done():
	}
	return a.Snapshot()
}

func (a *ShabadAudio) Snapshot() AudioSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AudioSnapshot{State: a.state, URL: a.url}
}
