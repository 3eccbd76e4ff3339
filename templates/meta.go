package templates

// Meta template - navigation arrows, header lines, the hukamnama calendar and
// player, and the shabad audio player.

func GetMetaTemplate() string {
	return metaTemplate + arrowTemplate + headerLineTemplate + hukamnamaTemplate + hukamnamaPlayerTemplate + shabadAudioTemplate
}

var metaTemplate = `{{define "meta"}}
<div id="metadata" class="metadata metadata-{{.Type}}">
  {{if .Left}}{{template "arrow" .Left}}{{end}}
  <div class="meta">
    {{if .Hukamnama}}{{template "hukamnama" .Hukamnama}}{{end}}
    <h4 class="header-line{{if .IsUnicode}} gurbani-unicode{{else}} gurbani-font{{end}}">{{template "header-line" .Header}}</h4>
    {{if .EnglishHeader}}<h4 class="header-line english">{{template "header-line" .EnglishHeader}}</h4>{{end}}
  </div>
  {{if .Right}}{{template "arrow" .Right}}{{end}}
</div>
{{if .Shabad}}{{template "shabad-audio" .Shabad}}{{end}}
{{end}}`

var arrowTemplate = `{{define "arrow"}}{{if .Disabled}}<span class="arrow arrow-{{.Direction}} disabled" aria-hidden="true">{{if eq .Direction "previous"}}‹{{else}}›{{end}}</span>{{else}}<a href="{{.Href}}" h-get h-target="#page-content" h-swap="inner" h-push-url h-scroll="top" h-indicator="#nav-loading" class="arrow arrow-{{.Direction}}" rel="{{if eq .Direction "previous"}}prev{{else}}next{{end}}" aria-label="{{.Direction}}">{{if eq .Direction "previous"}}‹{{else}}›{{end}}</a>{{end}}{{end}}`

var headerLineTemplate = `{{define "header-line"}}{{range .Items}}{{if .Href}}<a href="{{.Href}}" h-get h-target="#page-content" h-swap="inner" h-push-url h-scroll="top">{{.Text}}</a>{{else}}{{.Text}}{{end}}{{if .Separator}}<span class="separator"> - </span>{{end}}{{end}}{{end}}`

var hukamnamaTemplate = `{{define "hukamnama"}}
<div class="hukamnama-meta">
  <h4 class="hukamnama-heading">{{.Heading}}</h4>
  <div class="hukamnama-links">
    {{if .CalendarOpen}}
    <form action="{{.CalendarAction}}" method="GET" class="calendar" h-get h-target="#page-content" h-swap="inner" h-push-url h-trigger="change">
      <label for="hukamnama-date" class="sr-only">{{i18n "hukamnama.past"}}</label>
      <input type="date" id="hukamnama-date" name="date" value="{{.SelectedDate}}" min="{{.MinDate}}" max="{{.MaxDate}}" required>
      <button type="submit" class="btn-primary">Go</button>
      <a href="{{.CloseHref}}" h-get h-target="#page-content" h-swap="inner" h-push-url class="ghost-btn" aria-label="{{i18n "btn.close"}}">✕</a>
    </form>
    {{else}}
    <a href="{{.ArchiveHref}}" h-get h-target="#page-content" h-swap="inner" h-push-url class="text-link">{{i18n "hukamnama.archive"}}</a>
    {{end}}
    {{if .ShabadHref}}<a href="{{.ShabadHref}}" h-get h-target="#page-content" h-swap="inner" h-push-url h-scroll="top" class="text-link">{{i18n "nav.go_to_shabad"}}</a>{{end}}
    <form action="/hukamnama/player" method="POST" class="inline-form" h-post h-target="#hukamnama-player" h-swap="outer">
      <input type="hidden" name="csrf_token" value="{{.CSRFToken}}">
      <input type="hidden" name="return" value="{{.CloseHref}}">
      <button type="submit" class="ghost-btn" title="{{i18n "hukamnama.listen_title"}}" aria-pressed="{{.PlayerVisible}}">🎧</button>
    </form>
  </div>
  {{template "hukamnama-player" .}}
</div>
{{end}}`

// Hidden players render no <audio> element, which stops playback on swap.
var hukamnamaPlayerTemplate = `{{define "hukamnama-player"}}<div id="hukamnama-player" class="hukamnama-player{{if .PlayerVisible}} visible{{end}}">{{if .AudioURL}}
  <div class="player-title">{{i18n "hukamnama.listen"}}</div>
  <audio controls preload="none" src="{{.AudioURL}}"></audio>
{{end}}</div>{{end}}`

var shabadAudioTemplate = `{{define "shabad-audio"}}<div id="shabad-audio" class="shabad-audio" data-state="{{.State}}"{{if .LazyHref}} h-get="{{.LazyHref}}" h-trigger="load" h-target="#shabad-audio" h-swap="outer"{{end}}>
{{if .ShowButton}}
  <form action="/shabad/player" method="POST" class="inline-form" h-post h-target="#shabad-audio" h-swap="outer">
    <input type="hidden" name="csrf_token" value="{{.CSRFToken}}">
    <input type="hidden" name="id" value="{{.ShabadID}}">
    <button type="submit" class="ghost-btn player-view-button" aria-pressed="{{.ShowPlayer}}">🎵 {{i18n "shabad.listen"}}</button>
  </form>
  {{if .ShowPlayer}}
  <div class="shabad-player{{if .Visible}} visible{{end}}">
    <div class="player-title">{{i18n "shabad.player_title"}}</div>
    <audio controls preload="none" src="{{.URL}}"></audio>
    <div class="player-courtesy">{{i18n "shabad.player_courtesy"}}</div>
  </div>
  {{end}}
{{end}}
</div>{{end}}`
