package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"gurbani-server/internal/util"
)

// ServerConfig is the process-level configuration, read from config.toml
// and overridden by environment variables.
type ServerConfig struct {
	Port              string        `koanf:"port"`
	PublicURL         string        `koanf:"public_url"` // absolute origin used in share links
	APIURL            string        `koanf:"api_url"`
	AudioAPIURL       string        `koanf:"audio_api_url"`
	HukamnamaAudioURL string        `koanf:"hukamnama_audio_url"`
	AudioTimeout      time.Duration `koanf:"audio_timeout"` // budget for the health probe + URL lookup
	RedisURL          string        `koanf:"redis_url"`
	CachePrefix       string        `koanf:"cache_prefix"`
}

// DefaultServerConfig returns the configuration used when no file is present
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:              "8080",
		PublicURL:         "http://localhost:8080",
		APIURL:            util.DefaultAPIURL,
		AudioAPIURL:       util.DefaultAudioAPIURL,
		HukamnamaAudioURL: util.HukamnamaAudioURL,
		AudioTimeout:      4 * time.Second,
		CachePrefix:       "gurbani:",
	}
}

// LoadServerConfig reads the given TOML files in order (later files win),
// skipping ones that do not exist, then applies environment overrides.
// With no paths it uses ConfigPaths().
func LoadServerConfig(paths ...string) (*ServerConfig, error) {
	if len(paths) == 0 {
		paths = ConfigPaths()
	}

	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("could not load %s: %w", path, err)
		}
	}

	cfg := DefaultServerConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

// ConfigPaths returns the config file search order
func ConfigPaths() []string {
	if path := os.Getenv("SERVER_CONFIG"); path != "" {
		return []string{path}
	}
	return []string{
		filepath.Join("config", "server.toml"),
		"config.toml",
	}
}

func (c *ServerConfig) applyEnv() {
	c.Port = getEnvOrDefault("PORT", c.Port)
	c.PublicURL = getEnvOrDefault("PUBLIC_URL", c.PublicURL)
	c.APIURL = getEnvOrDefault("API_URL", c.APIURL)
	c.AudioAPIURL = getEnvOrDefault("AUDIO_API_URL", c.AudioAPIURL)
	c.HukamnamaAudioURL = getEnvOrDefault("HUKAMNAMA_AUDIO_URL", c.HukamnamaAudioURL)
	c.RedisURL = getEnvOrDefault("REDIS_URL", c.RedisURL)
	if v := os.Getenv("AUDIO_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.AudioTimeout = d
		}
	}
}

func (c *ServerConfig) normalize() {
	if !strings.HasSuffix(c.APIURL, "/") {
		c.APIURL += "/"
	}
	c.AudioAPIURL = strings.TrimSuffix(c.AudioAPIURL, "/")
	c.PublicURL = strings.TrimSuffix(c.PublicURL, "/")
	if c.AudioTimeout <= 0 {
		c.AudioTimeout = 4 * time.Second
	}
}

// HasRedis reports whether a Redis cache backend is configured
func (c *ServerConfig) HasRedis() bool {
	return c.RedisURL != ""
}
