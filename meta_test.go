package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurbani-server/internal/types"
)

var testToday = time.Date(2024, time.March, 7, 15, 4, 0, 0, time.UTC)

func intRef(n int) *int { return &n }

func shabadInfo() types.ContentInfo {
	return types.ContentInfo{
		ShabadID: 123,
		Source: types.Source{
			LangText: types.LangText{English: "Sri Guru Granth Sahib Ji", Unicode: "ਸ੍ਰੀ ਗੁਰੂ ਗ੍ਰੰਥ ਸਾਹਿਬ ਜੀ", Gurmukhi: "sRI gurU gRMQ swihb jI"},
			SourceID: "G",
			PageNo:   intRef(5),
		},
		Writer: &types.Writer{LangText: types.LangText{English: "Guru Nanak Dev Ji", Unicode: "ਗੁਰੂ ਨਾਨਕ ਦੇਵ ਜੀ", Gurmukhi: "gurU nwnk dyv jI"}},
		Raag:   &types.Raag{LangText: types.LangText{English: "Raag Aasaa", Unicode: "ਰਾਗੁ ਆਸਾ", Gurmukhi: "rwgu Awsw"}},
	}
}

func TestBuildMetaArrows(t *testing.T) {
	tests := []struct {
		name        string
		contentType types.ContentType
		info        types.ContentInfo
		nav         types.NavState
		hidden      bool
		wantLeft    *Arrow
		wantRight   *Arrow
	}{
		{
			name:        "shabad with both siblings",
			contentType: types.ContentShabad,
			info:        shabadInfo(),
			nav:         types.NavState{Previous: "122", Next: "124"},
			wantLeft:    &Arrow{Direction: "previous", Href: "/shabad?id=122"},
			wantRight:   &Arrow{Direction: "next", Href: "/shabad?id=124"},
		},
		{
			name:        "ang without next renders a disabled placeholder",
			contentType: types.ContentAng,
			info:        shabadInfo(),
			nav:         types.NavState{Previous: "4", Next: "null"},
			wantLeft:    &Arrow{Direction: "previous", Href: "/ang?source=G&ang=4"},
			wantRight:   &Arrow{Direction: "next", Disabled: true},
		},
		{
			name:        "sync without previous renders nothing",
			contentType: types.ContentSync,
			info:        shabadInfo(),
			nav:         types.NavState{Previous: "", Next: "124"},
			wantLeft:    nil,
			wantRight:   &Arrow{Direction: "next", Href: "/sync?id=124"},
		},
		{
			name:        "hukamnama navigates through the calendar",
			contentType: types.ContentHukamnama,
			info:        shabadInfo(),
			nav:         types.NavState{Previous: "2024/3/6", Current: "2024/3/7", Next: "2024/3/8"},
			wantLeft:    nil,
			wantRight:   nil,
		},
		{
			name:        "hidden arrows",
			contentType: types.ContentShabad,
			info:        shabadInfo(),
			nav:         types.NavState{Previous: "122", Next: "124"},
			hidden:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildMeta(MetaProps{
				Type:           tt.contentType,
				Info:           tt.info,
				Nav:            tt.nav,
				IsArrowsHidden: tt.hidden,
				Today:          testToday,
			}, UIState{})

			assert.Equal(t, tt.wantLeft, view.Left)
			assert.Equal(t, tt.wantRight, view.Right)
		})
	}
}

func TestBuildMetaHeader(t *testing.T) {
	info := shabadInfo()
	info.Source.LangText = types.LangText{}

	view := BuildMeta(MetaProps{Type: types.ContentShabad, Info: info, IsUnicode: true}, UIState{})

	require.Len(t, view.Header.Items, 3)
	assert.Equal(t, "ਰਾਗੁ ਆਸਾ - ਗੁਰੂ ਨਾਨਕ ਦੇਵ ਜੀ - ਅੰਗ 5", view.Header.Text())
	assert.True(t, view.Header.Items[0].Separator)
	assert.True(t, view.Header.Items[1].Separator)
	assert.False(t, view.Header.Items[2].Separator, "no separator after the last fragment")
	assert.Equal(t, "/ang?ang=5&source=G", view.Header.Items[2].Href)
}

func TestBuildMetaHeaderDropsNullRaag(t *testing.T) {
	info := shabadInfo()
	info.Raag.English = "null"
	info.Source.PageNo = nil

	view := BuildMeta(MetaProps{
		Type:                 types.ContentShabad,
		Info:                 info,
		TranslationLanguages: []string{"english"},
	}, UIState{})

	require.NotNil(t, view.EnglishHeader)
	assert.Equal(t, "Guru Nanak Dev Ji - Sri Guru Granth Sahib Ji", view.EnglishHeader.Text())
	assert.False(t, view.EnglishHeader.Items[len(view.EnglishHeader.Items)-1].Separator)
}

func TestBuildMetaHeaderKeepsPageZero(t *testing.T) {
	info := shabadInfo()
	info.Source.PageNo = intRef(0)

	view := BuildMeta(MetaProps{Type: types.ContentShabad, Info: info, TranslationLanguages: []string{"english"}}, UIState{})

	require.NotNil(t, view.EnglishHeader)
	assert.Equal(t, "Raag Aasaa - Guru Nanak Dev Ji - Sri Guru Granth Sahib Ji - Ang 0", view.EnglishHeader.Text())
	last := view.EnglishHeader.Items[len(view.EnglishHeader.Items)-1]
	assert.Equal(t, "/ang?ang=0&source=G", last.Href)
}

func TestBuildMetaPannaOutsideGuruGranthSahib(t *testing.T) {
	info := shabadInfo()
	info.Source = types.Source{LangText: types.LangText{English: "Dasam Granth"}, SourceID: "D", PageNo: intRef(12)}

	view := BuildMeta(MetaProps{Type: types.ContentAng, Info: info, TransliterationLanguages: []string{"english"}}, UIState{})

	require.NotNil(t, view.EnglishHeader)
	assert.Equal(t, "Raag Aasaa - Guru Nanak Dev Ji - Dasam Granth - Pannaa 12", view.EnglishHeader.Text())
}

func TestBuildMetaEnglishHeader(t *testing.T) {
	tests := []struct {
		name            string
		translation     []string
		transliteration []string
		want            bool
	}{
		{name: "translation", translation: []string{"punjabi", "english"}, want: true},
		{name: "transliteration", transliteration: []string{"english"}, want: true},
		{name: "neither", translation: []string{"punjabi"}, transliteration: []string{"hindi"}, want: false},
		{name: "empty", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildMeta(MetaProps{
				Type:                     types.ContentShabad,
				Info:                     shabadInfo(),
				TranslationLanguages:     tt.translation,
				TransliterationLanguages: tt.transliteration,
			}, UIState{})
			assert.Equal(t, tt.want, view.EnglishHeader != nil)
		})
	}
}

func TestBuildMetaHukamnamaBlock(t *testing.T) {
	props := MetaProps{
		Type:              types.ContentHukamnama,
		Info:              shabadInfo(),
		Nav:               types.NavState{Previous: "2024/3/6", Current: "2024/3/7"},
		HukamnamaAudioURL: "https://audio.example.org/hukamnama.mp3",
		Today:             testToday,
	}

	t.Run("visible player", func(t *testing.T) {
		view := BuildMeta(props, UIState{HukamnamaPlayerVisible: true, CalendarOpen: true})

		require.NotNil(t, view.Hukamnama)
		assert.Nil(t, view.Shabad)
		block := view.Hukamnama
		assert.Contains(t, block.Heading, "March 7, 2024")
		assert.Equal(t, "2002-01-01", block.MinDate)
		assert.Equal(t, "2024-03-07", block.MaxDate)
		assert.Equal(t, "2024-03-07", block.SelectedDate)
		assert.True(t, block.CalendarOpen)
		assert.Equal(t, "/shabad?id=123", block.ShabadHref)
		assert.Equal(t, "/hukamnama?date=2024%2F3%2F7&calendar=open", block.ArchiveHref)
		assert.Equal(t, "https://audio.example.org/hukamnama.mp3", block.AudioURL)
	})

	t.Run("hidden player drops the audio", func(t *testing.T) {
		view := BuildMeta(props, UIState{HukamnamaPlayerVisible: false})

		require.NotNil(t, view.Hukamnama)
		assert.False(t, view.Hukamnama.PlayerVisible)
		assert.Empty(t, view.Hukamnama.AudioURL)
	})
}

func TestBuildMetaShabadPlayer(t *testing.T) {
	tests := []struct {
		name       string
		audio      AudioSnapshot
		showPlayer bool
		want       ShabadPlayer
	}{
		{
			name:  "pending loads lazily",
			audio: AudioSnapshot{State: AudioPending},
			want:  ShabadPlayer{ShabadID: 123, State: AudioPending, LazyHref: "/shabad/audio?id=123"},
		},
		{
			name:  "unavailable shows nothing",
			audio: AudioSnapshot{State: AudioUnavailable},
			want:  ShabadPlayer{ShabadID: 123, State: AudioUnavailable},
		},
		{
			name:  "available shows the button",
			audio: AudioSnapshot{State: AudioAvailable, URL: "https://audio.example.org/123.mp3"},
			want:  ShabadPlayer{ShabadID: 123, State: AudioAvailable, URL: "https://audio.example.org/123.mp3", ShowButton: true},
		},
		{
			name:       "available with the player open",
			audio:      AudioSnapshot{State: AudioAvailable, URL: "https://audio.example.org/123.mp3"},
			showPlayer: true,
			want:       ShabadPlayer{ShabadID: 123, State: AudioAvailable, URL: "https://audio.example.org/123.mp3", ShowButton: true, ShowPlayer: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildMeta(MetaProps{
				Type:                  types.ContentShabad,
				Info:                  shabadInfo(),
				ShowShabadAudioPlayer: tt.showPlayer,
			}, UIState{Audio: tt.audio})

			require.NotNil(t, view.Shabad)
			assert.Nil(t, view.Hukamnama)
			assert.Equal(t, tt.want, *view.Shabad)
		})
	}
}

func TestMetaViewSetCSRFToken(t *testing.T) {
	view := BuildMeta(MetaProps{Type: types.ContentShabad, Info: shabadInfo()}, UIState{})
	view.SetCSRFToken("tok")
	assert.Equal(t, "tok", view.Shabad.CSRFToken)

	view = BuildMeta(MetaProps{Type: types.ContentAng, Info: shabadInfo()}, UIState{})
	assert.NotPanics(t, func() { view.SetCSRFToken("tok") })
}

type recordingNavigator struct {
	pushed []string
}

func (n *recordingNavigator) Push(url string) {
	n.pushed = append(n.pushed, url)
}

func TestGoToDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "within range", date: time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC), want: "/hukamnama?date=2020/5/17"},
		{name: "before the archive", date: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), want: "/hukamnama?date=2002/1/1"},
		{name: "future", date: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), want: "/hukamnama?date=2024/3/7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := &recordingNavigator{}
			GoToDate(nav, tt.date, testToday)
			assert.Equal(t, []string{tt.want}, nav.pushed)
		})
	}
}

func TestGoToShabad(t *testing.T) {
	nav := &recordingNavigator{}
	GoToShabad(nav, 42)
	assert.Equal(t, []string{"/shabad?id=42"}, nav.pushed)
}

func TestRedirectNavigator(t *testing.T) {
	t.Run("plain request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/hukamnama/calendar", nil)

		redirectNavigator{w: rec, r: req}.Push("/hukamnama?date=2024/3/7")

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/hukamnama?date=2024/3/7", rec.Header().Get("Location"))
	})

	t.Run("helm request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/hukamnama/calendar", nil)
		req.Header.Set("H-Request", "true")

		redirectNavigator{w: rec, r: req}.Push("/hukamnama?date=2024/3/7")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "/hukamnama?date=2024/3/7", rec.Header().Get("H-Location"))
	})
}
