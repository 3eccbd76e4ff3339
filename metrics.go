package main

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

var serverStartTime = time.Now()

// HTTP metrics
var (
	httpRequestsTotal atomic.Int64
	httpErrorsTotal   atomic.Int64
)

// Cache metrics
var (
	cacheHitsTotal   atomic.Int64
	cacheMissesTotal atomic.Int64
)

// Upstream metrics
var (
	upstreamRequestsTotal atomic.Int64
	upstreamErrorsTotal   atomic.Int64
	healthProbesTotal     atomic.Int64
	healthProbeFailures   atomic.Int64
	audioLookupsTotal     atomic.Int64
	audioAvailableTotal   atomic.Int64
	audioDisposedTotal    atomic.Int64
)

// IncrementCacheHit increments the cache hit counter
func IncrementCacheHit() {
	cacheHitsTotal.Add(1)
}

// IncrementCacheMiss increments the cache miss counter
func IncrementCacheMiss() {
	cacheMissesTotal.Add(1)
}

// metricsHandler serves Prometheus-compatible metrics
func (a *app) metricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

	fmt.Fprintf(w, "# HELP gurbani_build_info Build and configuration information\n")
	fmt.Fprintf(w, "# TYPE gurbani_build_info gauge\n")
	fmt.Fprintf(w, "gurbani_build_info{cache_backend=%q,go_version=%q} 1\n\n", a.cacheBackendType, runtime.Version())

	fmt.Fprintf(w, "# HELP process_uptime_seconds Time since process started\n")
	fmt.Fprintf(w, "# TYPE process_uptime_seconds gauge\n")
	fmt.Fprintf(w, "process_uptime_seconds %.0f\n\n", time.Since(serverStartTime).Seconds())

	fmt.Fprintf(w, "# HELP go_goroutines Number of active goroutines\n")
	fmt.Fprintf(w, "# TYPE go_goroutines gauge\n")
	fmt.Fprintf(w, "go_goroutines %d\n\n", runtime.NumGoroutine())

	writeCounter(w, "http_requests_total", "Total number of HTTP requests", httpRequestsTotal.Load())
	writeCounter(w, "http_errors_total", "Total number of HTTP 5xx errors", httpErrorsTotal.Load())
	writeCounter(w, "banidb_requests_total", "Requests sent to the content API", upstreamRequestsTotal.Load())
	writeCounter(w, "banidb_errors_total", "Failed content API requests", upstreamErrorsTotal.Load())
	writeCounter(w, "audio_health_probes_total", "Audio service health probes sent", healthProbesTotal.Load())
	writeCounter(w, "audio_health_failures_total", "Audio service health probes that failed", healthProbeFailures.Load())
	writeCounter(w, "audio_lookups_total", "Shabad audio URL lookups sent", audioLookupsTotal.Load())
	writeCounter(w, "audio_available_total", "Shabad audio mounts that found a recording", audioAvailableTotal.Load())
	writeCounter(w, "audio_disposed_total", "Shabad audio mounts torn down before settling", audioDisposedTotal.Load())

	cacheHits := cacheHitsTotal.Load()
	cacheMisses := cacheMissesTotal.Load()
	writeCounter(w, "cache_hits_total", "Total cache hits", cacheHits)
	writeCounter(w, "cache_misses_total", "Total cache misses", cacheMisses)

	var hitRatio float64
	if total := cacheHits + cacheMisses; total > 0 {
		hitRatio = float64(cacheHits) / float64(total)
	}
	fmt.Fprintf(w, "# HELP cache_hit_ratio Cache hit ratio (0-1)\n")
	fmt.Fprintf(w, "# TYPE cache_hit_ratio gauge\n")
	fmt.Fprintf(w, "cache_hit_ratio %.4f\n", hitRatio)
}

func writeCounter(w http.ResponseWriter, name, help string, value int64) {
	fmt.Fprintf(w, "# HELP %s %s\n", name, help)
	fmt.Fprintf(w, "# TYPE %s counter\n", name)
	fmt.Fprintf(w, "%s %d\n\n", name, value)
}
