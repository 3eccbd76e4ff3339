package main

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"gurbani-server/internal/auth"
	"gurbani-server/internal/config"
	"gurbani-server/internal/services"
	"gurbani-server/internal/util"
	"gurbani-server/templates"
)

// app holds the dependencies shared by the handlers
type app struct {
	cfg              *config.ServerConfig
	client           *services.BaniDBClient
	cacheBackend     CacheBackend
	cacheBackendType string
	cacheConfig      CacheConfig
	prober           AudioProber
	loaders          *loaders
	csrf             *auth.CSRFManager
	tmpl             *pageTemplates
	now              func() time.Time
}

// newApp wires the client, caches and templates for cfg
func newApp(cfg *config.ServerConfig, backend CacheBackend, backendType string) (*app, error) {
	csrf, err := newCSRFManager()
	if err != nil {
		return nil, err
	}

	cacheCfg := DefaultCacheConfig()
	client := services.NewBaniDBClient(cfg.APIURL, cfg.AudioAPIURL)

	return &app{
		cfg:              cfg,
		client:           client,
		cacheBackend:     backend,
		cacheBackendType: backendType,
		cacheConfig:      cacheCfg,
		prober:           newCachedAudioProber(client, backend, cacheCfg),
		loaders:          newLoaders(client, backend, cacheCfg),
		csrf:             csrf,
		tmpl:             initTemplates(),
		now:              time.Now,
	}, nil
}

// pageTemplates are the compiled template sets, one per page kind
type pageTemplates struct {
	home     *template.Template
	search   *template.Template
	content  *template.Template
	errors   *template.Template
	settings *template.Template
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"i18n":       config.I18n,
		"siteConfig": GetSiteConfig,
		"markdown": func(key string) template.HTML {
			return renderMarkdown(config.I18n(key))
		},
		"comma": func(n int) string {
			return humanize.Comma(int64(n))
		},
	}
}

// initTemplates compiles every page template. Compilation failures are fatal.
func initTemplates() *pageTemplates {
	funcs := templateFuncs()
	base := templates.GetBaseTemplates()
	return &pageTemplates{
		home:     util.MustCompileTemplate("home", funcs, base+templates.GetHomeTemplate()),
		search:   util.MustCompileTemplate("search", funcs, base+templates.GetSearchTemplate()),
		content:  util.MustCompileTemplate("content", funcs, base+templates.GetMetaTemplate()+templates.GetContentTemplate()),
		errors:   util.MustCompileTemplate("errors", funcs, base+templates.GetErrorTemplate()),
		settings: util.MustCompileTemplate("settings", funcs, base+templates.GetSettingsTemplate()),
	}
}

// PageData is embedded in every page's template data
type PageData struct {
	Title           string
	PageDescription string
	CanonicalURL    string
	CurrentURL      string
	Query           string
	NavItems        []NavItem
	Flash           FlashMessages
	CSRFToken       string
	Prefs           Preferences
}

func (a *app) pageData(w http.ResponseWriter, r *http.Request, title, activePage string) PageData {
	data := PageData{
		Title:      title,
		CurrentURL: r.URL.RequestURI(),
		NavItems:   GetNavItems(activePage),
		Flash:      getFlashMessages(w, r),
		CSRFToken:  a.csrfToken(w, r),
		Prefs:      PreferencesFromRequest(r),
	}
	if a.cfg.PublicURL != "" {
		data.CanonicalURL = a.cfg.PublicURL + r.URL.RequestURI()
	}
	return data
}

// renderPage writes a full page, or only the page-content fragment for
// helm.js requests
func (a *app) renderPage(w http.ResponseWriter, r *http.Request, tmpl *template.Template, status int, data any) {
	entry := "base"
	if isHelmRequest(r) {
		entry = "fragment"
	}
	a.renderTemplate(w, r, tmpl, entry, status, data)
}

// renderTemplate executes one named template into a buffer first so a
// template error never leaves a half-written page
func (a *app) renderTemplate(w http.ResponseWriter, r *http.Request, tmpl *template.Template, name string, status int, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		LoggerFromContext(r.Context()).Error("template render failed", "template", name, "error", err)
		util.RespondInternalError(w, "Internal server error")
		return
	}
	util.SetPrivateHTMLHeaders(w)
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// ErrorPageData is the data of the error page
type ErrorPageData struct {
	PageData
	DescriptionKey string
}

// renderError renders the error page with an i18n title and markdown description
func (a *app) renderError(w http.ResponseWriter, r *http.Request, status int, titleKey, descriptionKey string) {
	data := ErrorPageData{
		PageData:       a.pageData(w, r, config.I18n(titleKey), ""),
		DescriptionKey: descriptionKey,
	}
	a.renderPage(w, r, a.tmpl.errors, status, data)
}
