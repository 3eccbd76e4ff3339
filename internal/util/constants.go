package util

// External service URLs
const (
	// DefaultAPIURL is the base URL for the BaniDB content API (trailing slash required)
	DefaultAPIURL = "https://api.banidb.com/v2/"

	// DefaultAudioAPIURL is the base URL for the shabad audio lookup service
	DefaultAudioAPIURL = "https://api.sikhitothemax.org/audio"

	// HukamnamaAudioURL is the fixed daily hukamnama recording from Sri Harmandir Sahib
	HukamnamaAudioURL = "https://old.sgpc.net/hukumnama/jpeg%20hukamnama/hukamnama.mp3"
)
