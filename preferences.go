package main

import (
	"net/http"
	"strings"

	"gurbani-server/internal/util"
)

// Preference cookie names
const (
	prefTranslationCookie     = "translation_languages"
	prefTransliterationCookie = "transliteration_languages"
	prefUnicodeCookie         = "unicode"
	prefShabadPlayerCookie    = "shabad_audio_player"
	prefHukamnamaPlayerCookie = "hukamnama_audio_player"
	prefPinSettingsCookie     = "pin_settings"

	prefCookieMaxAge = 365 * 24 * 60 * 60
)

// Languages offered on the settings form
var (
	translationLanguageOptions     = []string{"english", "punjabi", "spanish", "hindi"}
	transliterationLanguageOptions = []string{"english", "hindi", "ipa", "shahmukhi"}
)

// Preferences is the visitor state the meta and search views depend on.
// It is read from cookies once per request and passed down explicitly.
type Preferences struct {
	TranslationLanguages     []string
	TransliterationLanguages []string
	IsUnicode                bool
	ShowShabadAudioPlayer    bool
	HukamnamaPlayerVisible   bool
	ShowPinSettings          bool
}

// DefaultPreferences are used for anything the visitor has not chosen
func DefaultPreferences() Preferences {
	return Preferences{
		TranslationLanguages:     []string{"english"},
		TransliterationLanguages: []string{"english"},
		HukamnamaPlayerVisible:   true,
	}
}

// PreferencesFromRequest reads preferences from cookies
func PreferencesFromRequest(r *http.Request) Preferences {
	prefs := DefaultPreferences()

	if c, err := r.Cookie(prefTranslationCookie); err == nil {
		prefs.TranslationLanguages = allowedLanguages(c.Value, translationLanguageOptions)
	}
	if c, err := r.Cookie(prefTransliterationCookie); err == nil {
		prefs.TransliterationLanguages = allowedLanguages(c.Value, transliterationLanguageOptions)
	}
	if v := cookieValue(r, prefUnicodeCookie); v != "" {
		prefs.IsUnicode = v == "1"
	}
	if v := cookieValue(r, prefShabadPlayerCookie); v != "" {
		prefs.ShowShabadAudioPlayer = v == "1"
	}
	if v := cookieValue(r, prefHukamnamaPlayerCookie); v != "" {
		prefs.HukamnamaPlayerVisible = v == "1"
	}
	if v := cookieValue(r, prefPinSettingsCookie); v != "" {
		prefs.ShowPinSettings = v == "1"
	}
	return prefs
}

// Write stores every preference as a cookie
func (p Preferences) Write(w http.ResponseWriter, r *http.Request) {
	SetLaxCookie(w, r, prefTranslationCookie, strings.Join(p.TranslationLanguages, "."), prefCookieMaxAge)
	SetLaxCookie(w, r, prefTransliterationCookie, strings.Join(p.TransliterationLanguages, "."), prefCookieMaxAge)
	SetLaxCookie(w, r, prefUnicodeCookie, boolCookie(p.IsUnicode), prefCookieMaxAge)
	SetLaxCookie(w, r, prefShabadPlayerCookie, boolCookie(p.ShowShabadAudioPlayer), prefCookieMaxAge)
	SetLaxCookie(w, r, prefHukamnamaPlayerCookie, boolCookie(p.HukamnamaPlayerVisible), prefCookieMaxAge)
	SetLaxCookie(w, r, prefPinSettingsCookie, boolCookie(p.ShowPinSettings), prefCookieMaxAge)
}

// MetaProps fills the preference-driven fields of props
func (p Preferences) MetaProps(props MetaProps) MetaProps {
	props.TranslationLanguages = p.TranslationLanguages
	props.TransliterationLanguages = p.TransliterationLanguages
	props.IsUnicode = p.IsUnicode
	props.ShowShabadAudioPlayer = p.ShowShabadAudioPlayer
	props.ShowPinSettings = p.ShowPinSettings
	return props
}

// allowedLanguages parses a dot-separated cookie list, keeping known values.
// Cookie values cannot hold commas unquoted, hence the dot.
func allowedLanguages(value string, allowed []string) []string {
	langs := util.SplitList(strings.ReplaceAll(value, ".", ","))
	return util.FilterSlice(langs, func(l string) bool {
		return util.Contains(allowed, l)
	})
}

func boolCookie(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
