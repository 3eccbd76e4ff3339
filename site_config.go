package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// SiteConfig is the site.json head-tag and identity configuration
type SiteConfig struct {
	Site    SiteIdentity   `json:"site"`
	Theme   ThemeConfig    `json:"theme"`
	Links   LinksConfig    `json:"links"`
	Scripts []ScriptConfig `json:"scripts"`
}

// SiteIdentity contains site-wide identity information
type SiteIdentity struct {
	Name        string `json:"name"`
	TitleFormat string `json:"titleFormat"` // e.g., "{title} - {siteName}"
	Description string `json:"description"`
	Language    string `json:"language"`
}

// ThemeConfig holds the theme-color meta values
type ThemeConfig struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// LinksConfig contains link tags (favicon, stylesheets, preconnect)
type LinksConfig struct {
	Favicon    string   `json:"favicon"`
	Stylesheet string   `json:"stylesheet"`
	Fonts      []string `json:"fonts"`
	Preconnect []string `json:"preconnect"`
}

// ScriptConfig represents a script tag
type ScriptConfig struct {
	Src   string `json:"src"`
	Defer bool   `json:"defer,omitempty"`
}

var (
	siteConfig     *SiteConfig
	siteConfigMu   sync.RWMutex
	siteConfigOnce sync.Once
)

// GetSiteConfig returns the current site configuration (thread-safe)
func GetSiteConfig() *SiteConfig {
	siteConfigOnce.Do(func() {
		siteConfigMu.Lock()
		defer siteConfigMu.Unlock()
		if siteConfig == nil {
			siteConfig = loadSiteConfigFromFile(os.Getenv("SITE_CONFIG"))
		}
	})

	siteConfigMu.RLock()
	defer siteConfigMu.RUnlock()
	return siteConfig
}

func loadSiteConfigFromFile(configPath string) *SiteConfig {
	if configPath == "" {
		configPath = "config/site.json"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("site config file not found, using defaults", "path", configPath)
		} else {
			slog.Warn("could not read site config, using defaults", "path", configPath, "error", err)
		}
		return getDefaultSiteConfig()
	}

	// Start from defaults so a partial file only overrides what it names
	config := getDefaultSiteConfig()
	if err := json.Unmarshal(data, config); err != nil {
		slog.Error("invalid JSON in site config, using defaults", "path", configPath, "error", err)
		return getDefaultSiteConfig()
	}

	slog.Info("loaded site configuration", "name", config.Site.Name, "scripts", len(config.Scripts))
	return config
}

// getDefaultSiteConfig returns the embedded default configuration
func getDefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		Site: SiteIdentity{
			Name:        "SikhiToTheMax",
			TitleFormat: "{title} - {siteName}",
			Description: "Search and read Gurbani, the daily Hukamnama and Shabad kirtan.",
			Language:    "en",
		},
		Theme: ThemeConfig{
			Light: "#fafafa",
			Dark:  "#1c1c1c",
		},
		Links: LinksConfig{
			Favicon:    "/static/favicon.ico",
			Stylesheet: "/static/style.css",
			Fonts:      []string{"/static/fonts/gurbaniakhar.css"},
			Preconnect: []string{"https://api.banidb.com"},
		},
		Scripts: []ScriptConfig{
			{Src: "/static/helm.js", Defer: true},
		},
	}
}

// FormatTitle formats a page title using the configured format.
// An empty title yields the site name alone.
func (c *SiteConfig) FormatTitle(title string) string {
	if title == "" {
		return c.Site.Name
	}
	result := c.Site.TitleFormat
	result = strings.ReplaceAll(result, "{title}", title)
	result = strings.ReplaceAll(result, "{siteName}", c.Site.Name)
	return result
}

// GetDescription returns the page description, using override if provided
func (c *SiteConfig) GetDescription(override string) string {
	if override != "" {
		return override
	}
	return c.Site.Description
}
