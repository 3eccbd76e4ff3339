package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"gurbani-server/internal/config"
	"gurbani-server/internal/gurbani"
	"gurbani-server/internal/types"
	"gurbani-server/internal/util"
)

// SearchPageData is the data of the home and search pages
type SearchPageData struct {
	PageData
	Search        SearchResultsData
	SearchTypes   []SearchType
	SearchSources []SearchSourceOption
}

// SearchResultsData is the search view with its verses prepared for display
type SearchResultsData struct {
	SearchView
	ResultVerses []VerseView
}

func (a *app) searchPageData(w http.ResponseWriter, r *http.Request, title, active string, view SearchView) SearchPageData {
	data := SearchPageData{
		PageData:      a.pageData(w, r, title, active),
		Search:        SearchResultsData{SearchView: view},
		SearchTypes:   searchTypes,
		SearchSources: searchSources,
	}
	data.Query = view.Query.Q
	if view.Results != nil {
		data.Search.ResultVerses = buildResultVerses(view.Results.Verses, data.Prefs)
	}
	return data
}

func (a *app) htmlHomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		a.renderError(w, r, http.StatusNotFound, "page.not_found", "")
		return
	}
	data := a.searchPageData(w, r, "", "search", SearchView{})
	a.renderPage(w, r, a.tmpl.home, http.StatusOK, data)
}

// htmlSearchHandler renders the search page. Results come from cache when
// present; otherwise the page carries a stub that loads /search/results.
func (a *app) htmlSearchHandler(w http.ResponseWriter, r *http.Request) {
	q := ParseSearchQuery(r)

	if q.TypeID() == SearchTypeAng {
		if ang, ok := util.ParseOptionalInt(q.Q); ok && ang > 0 {
			source := q.Source
			if source == "" {
				source = gurbani.SourceGuruGranthSahib
			}
			http.Redirect(w, r, gurbani.AngURL(ang, source), http.StatusSeeOther)
			return
		}
	}

	view := BuildSearch(r.Context(), q, a.client.APIBase(), a.loaders.search, false)
	title := config.I18n("btn.search")
	if q.Q != "" {
		title = q.Q
	}
	data := a.searchPageData(w, r, title, "search", view)

	// The search form targets #search-results, so helm requests from it get
	// only the results block
	if isHelmRequest(r) && r.Header.Get("H-Target") == "#search-results" {
		a.renderTemplate(w, r, a.tmpl.search, "search-results", http.StatusOK, data.Search)
		return
	}
	a.renderPage(w, r, a.tmpl.search, http.StatusOK, data)
}

// htmlSearchResultsHandler is the lazy results fragment. It waits for the
// loader instead of rendering the stub.
func (a *app) htmlSearchResultsHandler(w http.ResponseWriter, r *http.Request) {
	q := ParseSearchQuery(r)
	view := BuildSearch(r.Context(), q, a.client.APIBase(), a.loaders.search, true)
	if view.Err != nil {
		LoggerFromContext(r.Context()).Warn("search failed", "q", q.Q, "error", view.Err)
	}
	data := a.searchPageData(w, r, q.Q, "search", view)
	a.renderTemplate(w, r, a.tmpl.search, "search-results", http.StatusOK, data.Search)
}

// ContentPageData is the data of shabad, ang, sync and hukamnama pages
type ContentPageData struct {
	PageData
	Meta   MetaView
	Verses []VerseView
	Share  *ShareView
}

func (a *app) contentPage(w http.ResponseWriter, r *http.Request, title, active string, props MetaProps, ui UIState, verses []types.Verse) ContentPageData {
	data := ContentPageData{PageData: a.pageData(w, r, title, active)}

	props = data.Prefs.MetaProps(props)
	props.HukamnamaAudioURL = a.cfg.HukamnamaAudioURL
	props.Today = a.now()
	props.CurrentURL = data.CurrentURL

	data.Meta = BuildMeta(props, ui)
	data.Meta.SetCSRFToken(data.CSRFToken)
	data.Verses = buildVerses(verses, data.Prefs)
	data.Share = buildShare(a.cfg.PublicURL, data.CurrentURL)
	return data
}

// uiState reads the local UI state carried by the request
func uiState(r *http.Request, prefs Preferences) UIState {
	return UIState{
		HukamnamaPlayerVisible: prefs.HukamnamaPlayerVisible,
		CalendarOpen:           r.URL.Query().Get("calendar") == "open",
	}
}

// upstreamFailed renders the loader's error view. A request that went away
// while loading gets nothing.
func (a *app) upstreamFailed(w http.ResponseWriter, r *http.Request, loading bool, err error, attrs ...any) {
	if loading || r.Context().Err() != nil {
		return
	}
	LoggerFromContext(r.Context()).Warn("content fetch failed", append(attrs, "error", err)...)
	a.renderError(w, r, http.StatusBadGateway, "page.upstream_error", "page.upstream_error_description")
}

func (a *app) htmlShabadHandler(w http.ResponseWriter, r *http.Request) {
	a.serveShabad(w, r, types.ContentShabad)
}

func (a *app) htmlSyncHandler(w http.ResponseWriter, r *http.Request) {
	a.serveShabad(w, r, types.ContentSync)
}

// serveShabad renders a shabad as the given content type. Shabad pages also
// warm the cached audio health check in the background so the lazy audio
// fragment is usually answered from cache; the page never waits on it.
func (a *app) serveShabad(w http.ResponseWriter, r *http.Request, contentType types.ContentType) {
	id, ok := util.ParseOptionalInt(r.URL.Query().Get("id"))
	if !ok || id <= 0 {
		util.RespondBadRequest(w, "Invalid shabad id")
		return
	}

	if contentType == types.ContentShabad {
		go a.prober.CheckAPIHealth(context.WithoutCancel(r.Context()))
	}

	result := a.loaders.shabad.Load(r.Context(), a.client.ShabadEndpoint(id))

	if result.Err != nil || result.Data == nil {
		a.upstreamFailed(w, r, result.Loading, result.Err, "shabad_id", id)
		return
	}

	shabad := result.Data
	props := MetaProps{
		Type: contentType,
		Info: shabad.ShabadInfo,
		Nav: types.NavState{
			Previous: string(shabad.Navigation.Previous),
			Current:  strconv.Itoa(id),
			Next:     string(shabad.Navigation.Next),
		},
	}
	prefs := PreferencesFromRequest(r)
	ui := uiState(r, prefs)
	ui.Audio = AudioSnapshot{State: AudioPending}

	title := "Shabad " + strconv.Itoa(id)
	data := a.contentPage(w, r, title, "", props, ui, shabad.Verses)
	a.renderPage(w, r, a.tmpl.content, http.StatusOK, data)
}

func (a *app) htmlAngHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ang, ok := util.ParseOptionalInt(q.Get("ang"))
	if !ok || ang <= 0 {
		util.RespondBadRequest(w, "Invalid ang")
		return
	}
	source := q.Get("source")
	if source == "" {
		source = gurbani.SourceGuruGranthSahib
	}

	result := a.loaders.ang.Load(r.Context(), a.client.AngEndpoint(ang, source))
	if result.Err != nil || result.Data == nil {
		a.upstreamFailed(w, r, result.Loading, result.Err, "ang", ang, "source", source)
		return
	}

	resp := result.Data
	info := types.ContentInfo{PageNo: ang, Source: resp.Source}
	if info.Source.SourceID == "" {
		info.Source.SourceID = source
	}
	props := MetaProps{
		Type: types.ContentAng,
		Info: info,
		Nav: types.NavState{
			Previous: string(resp.Navigation.Previous),
			Current:  strconv.Itoa(ang),
			Next:     string(resp.Navigation.Next),
		},
	}
	prefs := PreferencesFromRequest(r)

	title := gurbani.PageName(source, types.ScriptEnglish) + " " + strconv.Itoa(ang)
	data := a.contentPage(w, r, title, "", props, uiState(r, prefs), resp.Page)
	a.renderPage(w, r, a.tmpl.content, http.StatusOK, data)
}

// htmlHukamnamaHandler renders the hukamnama of ?date= (YYYY/M/D), or today's
func (a *app) htmlHukamnamaHandler(w http.ResponseWriter, r *http.Request) {
	today := gurbani.DateOnly(a.now())

	var date time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := gurbani.ParseDate(raw)
		if err != nil {
			util.RespondBadRequest(w, "Invalid date")
			return
		}
		date = gurbani.ClampDate(d, gurbani.FirstHukamnamaDate, today)
	}

	result := a.loaders.hukamnama.Load(r.Context(), a.client.HukamnamaEndpoint(date))
	if result.Err != nil || result.Data == nil {
		a.upstreamFailed(w, r, result.Loading, result.Err, "date", gurbani.FormatRouteDate(date))
		return
	}

	resp := result.Data
	if date.IsZero() {
		date = today
		if g := resp.Date.Gregorian; g.Year > 0 && g.Month > 0 && g.Date > 0 {
			date = time.Date(g.Year, time.Month(g.Month), g.Date, 0, 0, 0, 0, time.UTC)
		}
	}

	var info types.ContentInfo
	var verses []types.Verse
	for i, shabad := range resp.Shabads {
		if i == 0 {
			info = shabad.ShabadInfo
		}
		verses = append(verses, shabad.Verses...)
	}

	props := MetaProps{
		Type: types.ContentHukamnama,
		Info: info,
		Nav:  types.NavState{Current: gurbani.FormatRouteDate(date)},
	}
	prefs := PreferencesFromRequest(r)

	title := config.I18n("hukamnama.heading") + " " + gurbani.ExpandDate(props.Nav.Current, true)
	data := a.contentPage(w, r, title, "hukamnama", props, uiState(r, prefs), verses)
	a.renderPage(w, r, a.tmpl.content, http.StatusOK, data)
}

// htmlHukamnamaCalendarHandler navigates to the date picked in the calendar
func (a *app) htmlHukamnamaCalendarHandler(w http.ResponseWriter, r *http.Request) {
	date, err := gurbani.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		util.RespondBadRequest(w, "Invalid date")
		return
	}
	GoToDate(redirectNavigator{w: w, r: r}, date, a.now())
}

// htmlHukamnamaPlayerHandler toggles the hukamnama player. helm.js gets the
// player fragment back; plain forms are redirected to where they came from.
func (a *app) htmlHukamnamaPlayerHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		util.RespondMethodNotAllowed(w, "Method not allowed")
		return
	}
	if !a.requireCSRF(w, r) {
		return
	}

	prefs := PreferencesFromRequest(r)
	prefs.HukamnamaPlayerVisible = !prefs.HukamnamaPlayerVisible
	SetLaxCookie(w, r, prefHukamnamaPlayerCookie, boolCookie(prefs.HukamnamaPlayerVisible), prefCookieMaxAge)

	if isHelmRequest(r) {
		block := HukamnamaBlock{PlayerVisible: prefs.HukamnamaPlayerVisible}
		if block.PlayerVisible {
			block.AudioURL = a.cfg.HukamnamaAudioURL
		}
		a.renderTemplate(w, r, a.tmpl.content, "hukamnama-player", http.StatusOK, block)
		return
	}
	http.Redirect(w, r, safeReturnURL(r.FormValue("return"), "/hukamnama"), http.StatusSeeOther)
}

// htmlShabadPlayerHandler toggles the on-demand shabad player preference
func (a *app) htmlShabadPlayerHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		util.RespondMethodNotAllowed(w, "Method not allowed")
		return
	}
	if !a.requireCSRF(w, r) {
		return
	}

	id, ok := util.ParseOptionalInt(r.FormValue("id"))
	if !ok || id <= 0 {
		util.RespondBadRequest(w, "Invalid shabad id")
		return
	}

	prefs := PreferencesFromRequest(r)
	prefs.ShowShabadAudioPlayer = !prefs.ShowShabadAudioPlayer
	SetLaxCookie(w, r, prefShabadPlayerCookie, boolCookie(prefs.ShowShabadAudioPlayer), prefCookieMaxAge)
	if isHelmRequest(r) {
		a.renderShabadAudio(w, r, id, prefs)
		return
	}
	GoToShabad(redirectNavigator{w: w, r: r}, id)
}

// htmlShabadAudioHandler is the lazy audio fragment: it mounts the audio
// sequence for the shabad and renders whatever it settles to
func (a *app) htmlShabadAudioHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := util.ParseOptionalInt(r.URL.Query().Get("id"))
	if !ok || id <= 0 {
		util.RespondBadRequest(w, "Invalid shabad id")
		return
	}
	a.renderShabadAudio(w, r, id, PreferencesFromRequest(r))
}

func (a *app) renderShabadAudio(w http.ResponseWriter, r *http.Request, id int, prefs Preferences) {
	ctx, cancel := context.WithTimeout(r.Context(), a.cfg.AudioTimeout)
	defer cancel()

	audio := NewShabadAudio(a.prober)
	audio.Mount(ctx, types.ContentShabad, types.ContentInfo{ShabadID: id})
	snapshot := audio.Wait(ctx)
	audio.Unmount()

	// A sequence cut short by the timeout degrades like a failed one
	if snapshot.State == AudioPending {
		snapshot.State = AudioUnavailable
	}

	props := prefs.MetaProps(MetaProps{Type: types.ContentShabad, Info: types.ContentInfo{ShabadID: id}})
	ui := uiState(r, prefs)
	ui.Audio = snapshot
	player := buildShabadPlayer(props, ui)
	player.CSRFToken = a.csrfToken(w, r)

	a.renderTemplate(w, r, a.tmpl.content, "shabad-audio", http.StatusOK, player)
}

// SettingsPageData is the data of the settings page
type SettingsPageData struct {
	PageData
	TranslationOptions     []SettingsOption
	TransliterationOptions []SettingsOption
}

// SettingsOption is one language checkbox
type SettingsOption struct {
	Value   string
	Checked bool
}

func settingsOptions(all, selected []string) []SettingsOption {
	opts := make([]SettingsOption, len(all))
	for i, v := range all {
		opts[i] = SettingsOption{Value: v, Checked: util.Contains(selected, v)}
	}
	return opts
}

func (a *app) htmlSettingsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		a.saveSettings(w, r)
		return
	}

	data := SettingsPageData{PageData: a.pageData(w, r, config.I18n("nav.settings"), "settings")}
	data.TranslationOptions = settingsOptions(translationLanguageOptions, data.Prefs.TranslationLanguages)
	data.TransliterationOptions = settingsOptions(transliterationLanguageOptions, data.Prefs.TransliterationLanguages)
	a.renderPage(w, r, a.tmpl.settings, http.StatusOK, data)
}

func (a *app) saveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/settings", config.I18n("settings.invalid"))
		return
	}
	if !a.requireCSRF(w, r) {
		return
	}

	prefs := PreferencesFromRequest(r)
	prefs.TranslationLanguages = util.FilterSlice(r.PostForm["translation"], func(l string) bool {
		return util.Contains(translationLanguageOptions, l)
	})
	prefs.TransliterationLanguages = util.FilterSlice(r.PostForm["transliteration"], func(l string) bool {
		return util.Contains(transliterationLanguageOptions, l)
	})
	prefs.IsUnicode = r.PostForm.Get("unicode") == "1"
	prefs.ShowShabadAudioPlayer = r.PostForm.Get("shabad_audio_player") == "1"
	prefs.ShowPinSettings = r.PostForm.Get("pin_settings") == "1"
	prefs.Write(w, r)

	redirectWithSuccess(w, r, "/settings", config.I18n("settings.saved"))
}

// safeReturnURL only allows local paths as redirect targets
func safeReturnURL(returnURL, fallback string) string {
	if len(returnURL) > 1 && returnURL[0] == '/' && returnURL[1] != '/' && returnURL[1] != '\\' {
		return returnURL
	}
	if returnURL == "/" {
		return returnURL
	}
	return fallback
}
