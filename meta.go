package main

import (
	"net/http"
	"strconv"
	"time"

	"gurbani-server/internal/config"
	"gurbani-server/internal/gurbani"
	"gurbani-server/internal/types"
	"gurbani-server/internal/util"
)

// MetaProps is everything the meta view is rendered from. Handlers fill it
// from the route, the API response and the visitor's preferences.
type MetaProps struct {
	Type                     types.ContentType
	Info                     types.ContentInfo
	Nav                      types.NavState
	TranslationLanguages     []string
	TransliterationLanguages []string
	IsUnicode                bool
	IsArrowsHidden           bool
	ShowPinSettings          bool
	ShowShabadAudioPlayer    bool
	HukamnamaAudioURL        string
	Today                    time.Time
	CurrentURL               string
}

// UIState is the per-render local state of a meta view
type UIState struct {
	HukamnamaPlayerVisible bool
	CalendarOpen           bool
	Audio                  AudioSnapshot
}

// Arrow is one side of the sibling navigation. A nil *Arrow renders nothing.
type Arrow struct {
	Direction string // "previous" or "next"
	Href      string
	Disabled  bool
}

// HeaderItem is a header fragment with its trailing separator
type HeaderItem struct {
	Text      string
	Href      string
	Separator bool
}

// HeaderLine is one assembled header
type HeaderLine struct {
	Items []HeaderItem
}

// Text renders the header as plain text
func (h HeaderLine) Text() string {
	parts := make([]string, len(h.Items))
	for i, item := range h.Items {
		parts[i] = item.Text
	}
	return gurbani.JoinHeader(parts...)
}

// HukamnamaBlock is the calendar and fixed-source player of hukamnama pages
type HukamnamaBlock struct {
	Heading        string
	ShabadHref     string
	CalendarOpen   bool
	CalendarAction string
	ArchiveHref    string
	CloseHref      string
	MinDate        string
	MaxDate        string
	SelectedDate   string
	PlayerVisible  bool
	AudioURL       string
	CSRFToken      string
}

// ShabadPlayer is the on-demand player of shabad pages
type ShabadPlayer struct {
	ShabadID   int
	State      AudioState
	URL        string
	ShowButton bool
	ShowPlayer bool
	Visible    bool
	LazyHref   string
	CSRFToken  string
}

// MetaView is the render model of the meta template
type MetaView struct {
	Type            types.ContentType
	Left            *Arrow
	Right           *Arrow
	Header          HeaderLine
	EnglishHeader   *HeaderLine
	Hukamnama       *HukamnamaBlock
	Shabad          *ShabadPlayer
	IsUnicode       bool
	ShowPinSettings bool
}

// SetCSRFToken hands the request's form token to the blocks that post forms
func (v *MetaView) SetCSRFToken(token string) {
	if v.Hukamnama != nil {
		v.Hukamnama.CSRFToken = token
	}
	if v.Shabad != nil {
		v.Shabad.CSRFToken = token
	}
}

// BuildMeta derives the meta view from props and local state
func BuildMeta(props MetaProps, ui UIState) MetaView {
	view := MetaView{
		Type:            props.Type,
		IsUnicode:       props.IsUnicode,
		ShowPinSettings: props.ShowPinSettings,
	}

	// Hukamnama pages navigate through the calendar instead.
	if !props.IsArrowsHidden && props.Type != types.ContentHukamnama {
		navBase := gurbani.NavURL(props.Type, gurbani.SourceID(props.Info))
		view.Left = buildArrow(props.Type, navBase, "previous", props.Nav.Previous)
		view.Right = buildArrow(props.Type, navBase, "next", props.Nav.Next)
	}

	script := types.ScriptGurmukhi
	if props.IsUnicode {
		script = types.ScriptUnicode
	}
	view.Header = buildHeader(props.Info, script)

	if wantsEnglish(props.TranslationLanguages, props.TransliterationLanguages) {
		english := buildHeader(props.Info, types.ScriptEnglish)
		view.EnglishHeader = &english
	}

	if props.Type == types.ContentHukamnama {
		view.Hukamnama = buildHukamnamaBlock(props, ui)
	}

	if props.Type == types.ContentShabad {
		view.Shabad = buildShabadPlayer(props, ui)
	}

	return view
}

// buildArrow renders an active link when a sibling exists. Without one it
// renders a disabled placeholder, except for sync pages which show nothing.
func buildArrow(contentType types.ContentType, navBase, direction, sibling string) *Arrow {
	if gurbani.IsFalsy(sibling) {
		if contentType == types.ContentSync {
			return nil
		}
		return &Arrow{Direction: direction, Disabled: true}
	}
	return &Arrow{Direction: direction, Href: navBase + sibling}
}

func buildHeader(info types.ContentInfo, script types.Script) HeaderLine {
	fragments := []gurbani.Fragment{
		{Text: gurbani.RaagText(info, script)},
		{Text: gurbani.WriterText(info, script)},
		{Text: info.Source.In(script)},
	}

	if page, ok := pageNumber(info); ok {
		fragments = append(fragments, gurbani.Fragment{
			Text: pageLabel(info, script),
			Href: gurbani.AngURL(page, gurbani.SourceID(info)),
		})
	}

	compact := gurbani.CompactFragments(fragments)
	items := make([]HeaderItem, len(compact))
	for i, f := range compact {
		items[i] = HeaderItem{Text: f.Text, Href: f.Href, Separator: i < len(compact)-1}
	}
	return HeaderLine{Items: items}
}

// pageNumber reports the page a header should reference. A non-nil source
// page counts even when it is 0.
func pageNumber(info types.ContentInfo) (int, bool) {
	if info.PageNo > 0 {
		return info.PageNo, true
	}
	if info.Source.PageNo != nil {
		return *info.Source.PageNo, true
	}
	return 0, false
}

func wantsEnglish(translation, transliteration []string) bool {
	return util.Contains(translation, "english") || util.Contains(transliteration, "english")
}

func buildHukamnamaBlock(props MetaProps, ui UIState) *HukamnamaBlock {
	today := gurbani.DateOnly(props.Today)
	selected := today
	if d, err := gurbani.ParseDate(props.Nav.Current); err == nil {
		selected = gurbani.ClampDate(d, gurbani.FirstHukamnamaDate, today)
	}

	current := util.BuildURL("/hukamnama", map[string]string{"date": props.Nav.Current})
	block := &HukamnamaBlock{
		Heading:        config.I18n("hukamnama.heading") + ", " + gurbani.ExpandDate(props.Nav.Current, true),
		CalendarOpen:   ui.CalendarOpen,
		CalendarAction: "/hukamnama/calendar",
		ArchiveHref:    util.BuildURL("/hukamnama", map[string]string{"date": props.Nav.Current, "calendar": "open"}),
		CloseHref:      current,
		MinDate:        gurbani.FormatInputDate(gurbani.FirstHukamnamaDate),
		MaxDate:        gurbani.FormatInputDate(today),
		SelectedDate:   gurbani.FormatInputDate(selected),
		PlayerVisible:  ui.HukamnamaPlayerVisible,
	}
	if props.Info.ShabadID > 0 {
		block.ShabadHref = gurbani.ShabadURL(props.Info.ShabadID)
	}
	// Hidden players are not rendered at all, which stops playback
	if ui.HukamnamaPlayerVisible {
		block.AudioURL = props.HukamnamaAudioURL
	}
	return block
}

func buildShabadPlayer(props MetaProps, ui UIState) *ShabadPlayer {
	player := &ShabadPlayer{
		ShabadID: props.Info.ShabadID,
		State:    ui.Audio.State,
		Visible:  ui.HukamnamaPlayerVisible,
	}
	switch ui.Audio.State {
	case AudioPending:
		if props.Info.ShabadID > 0 {
			player.LazyHref = util.BuildURL("/shabad/audio", map[string]string{"id": strconv.Itoa(props.Info.ShabadID)})
		}
	case AudioAvailable:
		if ui.Audio.Playable() {
			player.URL = ui.Audio.URL
			player.ShowButton = true
			player.ShowPlayer = props.ShowShabadAudioPlayer
		}
	}
	return player
}

// Navigator performs route navigation on behalf of the meta view
type Navigator interface {
	Push(url string)
}

// redirectNavigator navigates by redirecting the current request. Hypermedia
// requests get a location header helm.js follows instead of a 303.
type redirectNavigator struct {
	w http.ResponseWriter
	r *http.Request
}

func (n redirectNavigator) Push(url string) {
	if isHelmRequest(n.r) {
		n.w.Header().Set("H-Location", url)
		n.w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(n.w, n.r, url, http.StatusSeeOther)
}

// GoToDate navigates to the hukamnama of a calendar date, clamped to the
// archive range
func GoToDate(nav Navigator, date, today time.Time) {
	today = gurbani.DateOnly(today)
	date = gurbani.ClampDate(gurbani.DateOnly(date), gurbani.FirstHukamnamaDate, today)
	nav.Push(gurbani.NavURL(types.ContentHukamnama, "") + gurbani.FormatRouteDate(date))
}

// GoToShabad navigates to a shabad by id
func GoToShabad(nav Navigator, id int) {
	nav.Push(gurbani.ShabadURL(id))
}
