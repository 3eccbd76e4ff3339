package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferencesFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		cookies map[string]string
		want    Preferences
	}{
		{
			name: "defaults",
			want: DefaultPreferences(),
		},
		{
			name: "all set",
			cookies: map[string]string{
				prefTranslationCookie:     "punjabi.english",
				prefTransliterationCookie: "ipa",
				prefUnicodeCookie:         "1",
				prefShabadPlayerCookie:    "1",
				prefHukamnamaPlayerCookie: "0",
				prefPinSettingsCookie:     "1",
			},
			want: Preferences{
				TranslationLanguages:     []string{"punjabi", "english"},
				TransliterationLanguages: []string{"ipa"},
				IsUnicode:                true,
				ShowShabadAudioPlayer:    true,
				HukamnamaPlayerVisible:   false,
				ShowPinSettings:          true,
			},
		},
		{
			name:    "unknown languages dropped",
			cookies: map[string]string{prefTranslationCookie: "klingon.hindi", prefTransliterationCookie: ""},
			want: Preferences{
				TranslationLanguages:   []string{"hindi"},
				HukamnamaPlayerVisible: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for name, value := range tt.cookies {
				req.AddCookie(&http.Cookie{Name: name, Value: value})
			}
			got := PreferencesFromRequest(req)
			assert.ElementsMatch(t, tt.want.TranslationLanguages, got.TranslationLanguages)
			assert.ElementsMatch(t, tt.want.TransliterationLanguages, got.TransliterationLanguages)
			assert.Equal(t, tt.want.IsUnicode, got.IsUnicode)
			assert.Equal(t, tt.want.ShowShabadAudioPlayer, got.ShowShabadAudioPlayer)
			assert.Equal(t, tt.want.HukamnamaPlayerVisible, got.HukamnamaPlayerVisible)
			assert.Equal(t, tt.want.ShowPinSettings, got.ShowPinSettings)
		})
	}
}

func TestPreferencesRoundTripThroughCookies(t *testing.T) {
	prefs := Preferences{
		TranslationLanguages:     []string{"english", "spanish"},
		TransliterationLanguages: []string{"shahmukhi"},
		IsUnicode:                true,
	}

	rec := httptest.NewRecorder()
	prefs.Write(rec, httptest.NewRequest(http.MethodPost, "/settings", nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	got := PreferencesFromRequest(req)

	assert.Equal(t, []string{"english", "spanish"}, got.TranslationLanguages)
	assert.Equal(t, []string{"shahmukhi"}, got.TransliterationLanguages)
	assert.True(t, got.IsUnicode)
	assert.False(t, got.HukamnamaPlayerVisible)
}

func TestPreferencesMetaProps(t *testing.T) {
	prefs := Preferences{TranslationLanguages: []string{"english"}, IsUnicode: true, ShowShabadAudioPlayer: true}

	props := prefs.MetaProps(MetaProps{Type: "shabad"})

	assert.Equal(t, []string{"english"}, props.TranslationLanguages)
	assert.True(t, props.IsUnicode)
	assert.True(t, props.ShowShabadAudioPlayer)
	assert.False(t, props.ShowPinSettings)
	assert.Equal(t, "shabad", string(props.Type))
}
