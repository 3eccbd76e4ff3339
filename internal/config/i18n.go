package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// I18nStrings holds all localized strings
type I18nStrings map[string]string

// defaultStrings are used for keys missing from the loaded file.
// Descriptions are markdown.
var defaultStrings = I18nStrings{
	"search.empty_query":              "Please enter your query",
	"search.empty_query_description":  "Type a few letters or words in the **search box** above. You can search by first letters, full words, romanized text or ang number.",
	"search.error":                    "Could not load results",
	"search.error_description":        "The search service did not respond. Please try again in a moment.",
	"search.no_results":               "No results found",
	"search.no_results_description":   "Try a different **search type** or source.",
	"page.not_found":                  "Page not found",
	"page.upstream_error":             "Could not load this page",
	"page.upstream_error_description": "The Gurbani database did not respond. Please try again shortly.",
	"hukamnama.heading":               "Hukamnama",
	"hukamnama.archive":               "Archive",
	"hukamnama.listen":                "Today's Hukamnama",
	"hukamnama.listen_title":          "Listen to Today's Hukamnama",
	"hukamnama.past":                  "Past Hukamnamas",
	"nav.go_to_shabad":                "Go to Shabad",
	"shabad.player_title":             "Shabad player",
	"shabad.player_courtesy":          "Courtesy: Baru Sahib",
	"shabad.listen":                   "Listen",
	"share.title":                     "Share this page",
	"nav.settings":                    "Settings",
	"settings.saved":                  "Settings saved",
	"settings.invalid":                "Could not read the settings form",
	"btn.search":                      "Search",
	"btn.close":                       "Close",
	"btn.save":                        "Save",
	"a11y.skip_to_main":               "Skip to main content",
}

var (
	i18nStrings   I18nStrings
	i18nMu        sync.RWMutex
	i18nConfigDir = getEnvOrDefault("I18N_CONFIG_DIR", "config/i18n")
	defaultLang   = getEnvOrDefault("I18N_DEFAULT_LANG", "en")
)

// InitI18n initializes the i18n system. Call this during startup.
func InitI18n() {
	if err := loadI18nConfig(); err != nil {
		slog.Debug("using built-in i18n strings", "reason", err)
	}
}

func loadI18nConfig() error {
	i18nMu.Lock()
	defer i18nMu.Unlock()

	configPath := filepath.Join(i18nConfigDir, defaultLang+".json")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", configPath)
		}
		return fmt.Errorf("could not read %s: %w", configPath, err)
	}

	var strings I18nStrings
	if err := json.Unmarshal(data, &strings); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", configPath, err)
	}

	i18nStrings = strings
	slog.Info("loaded i18n strings", "count", len(strings), "path", configPath)
	return nil
}

// I18n looks up a localized string by key.
// Falls back to the built-in string, then to the key itself.
func I18n(key string) string {
	i18nMu.RLock()
	defer i18nMu.RUnlock()

	if val, ok := i18nStrings[key]; ok {
		return val
	}
	if val, ok := defaultStrings[key]; ok {
		return val
	}
	// Return key as fallback - makes missing translations visible
	return key
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// HasI18nKey reports whether key resolves to a loaded or built-in string
func HasI18nKey(key string) bool {
	i18nMu.RLock()
	defer i18nMu.RUnlock()

	if _, ok := i18nStrings[key]; ok {
		return true
	}
	_, ok := defaultStrings[key]
	return ok
}
