package templates

// Search template - search form, skeleton stub and paginated results.

func GetSearchTemplate() string {
	return searchContent + searchFormTemplate + skeletonTemplate + searchResultsTemplate
}

var searchContent = `{{define "content"}}
{{template "search-form" .}}
<div id="search-results">
{{template "search-results" .Search}}
</div>
{{end}}`

var searchFormTemplate = `{{define "search-form"}}
<form action="/search" method="GET" class="search-form" h-get h-target="#search-results" h-swap="inner" h-trigger="input debounce:300 from:#search-input, change from:.search-filter, submit" h-sync="abort" h-replace-url h-indicator="#search-results">
  <label for="search-input" class="sr-only">{{i18n "btn.search"}}</label>
  <input type="search" id="search-input" name="q" value="{{.Query}}" class="search-input" autocomplete="off" autofocus>
  <label for="search-type" class="sr-only">Search type</label>
  <select id="search-type" name="type" class="search-filter">
    {{range .SearchTypes}}<option value="{{.ID}}"{{if eq .ID $.Search.Query.TypeID}} selected{{end}}>{{.Title}}</option>
    {{end}}
  </select>
  <label for="search-source" class="sr-only">Source</label>
  <select id="search-source" name="source" class="search-filter">
    {{range .SearchSources}}<option value="{{.ID}}"{{if eq .ID $.Search.Query.Source}} selected{{end}}>{{.Title}}</option>
    {{end}}
  </select>
  <button type="submit" class="btn-primary">{{i18n "btn.search"}}</button>
</form>
{{end}}`

var skeletonTemplate = `{{define "skeleton"}}
<div class="skeleton-cards" aria-hidden="true">
  <div class="skeleton-card">
    <div class="skeleton-content">
      <div class="skeleton-line"></div>
      <div class="skeleton-line"></div>
    </div>
  </div>
  <div class="skeleton-card">
    <div class="skeleton-content">
      <div class="skeleton-line"></div>
      <div class="skeleton-line"></div>
      <div class="skeleton-line"></div>
    </div>
  </div>
</div>
{{end}}`

var searchResultsTemplate = `{{define "search-results"}}
{{if .EmptyQuery}}
<div class="empty-state">
  <div class="empty-state-icon">🔍</div>
  <p>{{i18n "search.empty_query"}}</p>
  <div class="empty-state-hint">{{markdown "search.empty_query_description"}}</div>
</div>
{{else if .Loading}}
<div id="search-stub" h-get="{{.LazyHref}}" h-trigger="load" h-target="#search-results" h-swap="inner">
{{template "skeleton" .}}
</div>
{{else if .Err}}
<div class="empty-state">
  <p>{{i18n "search.error"}}</p>
  <div class="empty-state-hint">{{markdown "search.error_description"}}</div>
</div>
{{else if .Results}}
  {{if .Results.Verses}}
  <div class="results-header">{{comma .Results.ResultsCount}} of {{comma .Results.TotalResults}} results for "{{.Query.Q}}"</div>
  <div id="results-list">
  {{range .ResultVerses}}
  <article class="search-result">
    <a href="{{.ShabadHref}}" h-get h-target="#page-content" h-swap="inner" h-push-url h-scroll="top" class="gurbani{{if .Unicode}} gurbani-unicode{{else}} gurbani-font{{end}}">{{.Gurbani}}</a>
    {{range .Translations}}<p class="translation translation-{{.Lang}}{{if .GurmukhiFont}} gurbani-font{{end}}">{{.Text}}</p>
    {{end}}
    {{if .Meta}}<p class="result-meta">{{.Meta}}</p>{{end}}
  </article>
  {{end}}
  </div>
  {{if gt (len .Results.Pages) 1}}
  <nav class="pagination" aria-label="Pages">
    {{range .PageLinks}}{{if .Current}}<span class="page current" aria-current="page">{{.Number}}</span>{{else}}<a href="{{.Href}}" h-get h-target="#page-content" h-swap="inner" h-push-url h-scroll="top" class="page">{{.Number}}</a>{{end}}
    {{end}}
  </nav>
  {{end}}
  {{else}}
  <div class="empty-state">
    <div class="empty-state-icon">🔍</div>
    <p>{{i18n "search.no_results"}}</p>
    <div class="empty-state-hint">{{markdown "search.no_results_description"}}</div>
  </div>
  {{end}}
{{end}}
{{end}}`

// GetHomeTemplate returns the landing page: the search form without results.
func GetHomeTemplate() string {
	return homeContent + searchFormTemplate
}

var homeContent = `{{define "content"}}
<div class="home">
  <h1 class="brand-title">{{siteConfig.Site.Name}}</h1>
  {{template "search-form" .}}
  <p class="home-links"><a href="/hukamnama" h-get h-target="#page-content" h-swap="inner" h-push-url class="text-link">{{i18n "hukamnama.listen"}}</a></p>
</div>
{{end}}`
