package templates

// Error template - upstream failures and missing pages.

func GetErrorTemplate() string {
	return errorContent
}

var errorContent = `{{define "content"}}
<div class="empty-state error-state">
  <h1>{{.Title}}</h1>
  {{if .DescriptionKey}}<div class="empty-state-hint">{{markdown .DescriptionKey}}</div>{{end}}
  <p><a href="/" class="text-link">{{i18n "btn.search"}}</a> · <a href="/hukamnama" class="text-link">{{i18n "hukamnama.heading"}}</a></p>
</div>
{{end}}`
