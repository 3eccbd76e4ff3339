package types

// CachedAudioURL wraps the result of a shabad audio lookup.
// NotFound records a failed lookup so it is not retried until it expires.
type CachedAudioURL struct {
	URL       string `json:"url,omitempty"`
	FetchedAt int64  `json:"fetched_at"`
	NotFound  bool   `json:"not_found"`
}

// CachedHealth wraps the last audio API health probe
type CachedHealth struct {
	Healthy   bool  `json:"healthy"`
	CheckedAt int64 `json:"checked_at"`
}
