package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_URL", "AUDIO_API_URL", "REDIS_URL", "AUDIO_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadServerConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.banidb.com/v2/", cfg.APIURL)
	assert.Equal(t, 4*time.Second, cfg.AudioTimeout)
	assert.False(t, cfg.HasRedis())
}

func TestLoadServerConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = "9000"
api_url = "https://banidb.example.org/v2"
audio_api_url = "https://audio.example.org/"
audio_timeout = "2s"
`), 0o644))

	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://banidb.example.org/v2/", cfg.APIURL)
	assert.Equal(t, "https://audio.example.org", cfg.AudioAPIURL)
	assert.Equal(t, 2*time.Second, cfg.AudioTimeout)
	assert.True(t, cfg.HasRedis())
}

func TestLoadServerConfigEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`port = "9000"`), 0o644))
	t.Setenv("PORT", "7000")

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoadServerConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`port = `), 0o644))

	_, err := LoadServerConfig(path)
	assert.Error(t, err)
}

func TestI18nFallbacks(t *testing.T) {
	assert.Equal(t, "Hukamnama", I18n("hukamnama.heading"))
	assert.Equal(t, "no.such.key", I18n("no.such.key"))
}
