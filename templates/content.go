package templates

// Content template - shabad, ang, hukamnama and sync pages: the meta block
// followed by the verses.

func GetContentTemplate() string {
	return contentTemplate + versesTemplate + shareTemplate
}

var contentTemplate = `{{define "content"}}
<h1 class="sr-only">{{.Title}}</h1>
{{template "meta" .Meta}}
{{template "verses" .}}
{{if .Share}}{{template "share" .Share}}{{end}}
{{end}}`

var versesTemplate = `{{define "verses"}}
<div id="verses" class="verses">
{{range .Verses}}
  <div class="verse" id="verse-{{.ID}}">
    <p class="gurbani{{if .Unicode}} gurbani-unicode{{else}} gurbani-font{{end}}">{{.Gurbani}}</p>
    {{range .Transliterations}}<p class="transliteration transliteration-{{.Lang}}">{{.Text}}</p>
    {{end}}{{range .Translations}}<p class="translation translation-{{.Lang}}{{if .GurmukhiFont}} gurbani-font{{end}}">{{.Text}}</p>
    {{end}}
  </div>
{{else}}
  <p class="empty-state-hint">{{i18n "search.no_results"}}</p>
{{end}}
</div>
{{end}}`

var shareTemplate = `{{define "share"}}
<details class="share">
  <summary>{{i18n "share.title"}}</summary>
  <input type="text" readonly value="{{.URL}}" aria-label="{{i18n "share.title"}}">
  {{if .QRDataURL}}<img src="{{.QRDataURL}}" alt="QR code" width="256" height="256" loading="lazy">{{end}}
</details>
{{end}}`
