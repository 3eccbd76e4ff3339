package templates

// Base template - shared structure for all HTML pages.
// Page templates define the "content" block.

func GetBaseTemplates() string {
	return baseTemplate + headerTemplate + footerTemplate + fragmentTemplate + flashTemplate
}

var baseTemplate = `{{define "base"}}{{$site := siteConfig}}<!DOCTYPE html>
<html lang="{{$site.Site.Language}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="theme-color" content="{{$site.Theme.Light}}" media="(prefers-color-scheme: light)">
  <meta name="theme-color" content="{{$site.Theme.Dark}}" media="(prefers-color-scheme: dark)">
  <meta name="description" content="{{$site.GetDescription .PageDescription}}">
  <meta property="og:title" content="{{$site.FormatTitle .Title}}">
  <meta property="og:description" content="{{$site.GetDescription .PageDescription}}">
  {{if .CanonicalURL}}<meta property="og:url" content="{{.CanonicalURL}}">
  <link rel="canonical" href="{{.CanonicalURL}}">{{end}}
  <title>{{$site.FormatTitle .Title}}</title>
  <link rel="icon" href="{{$site.Links.Favicon}}">
  {{range $site.Links.Preconnect}}<link rel="preconnect" href="{{.}}">
  {{end}}<link rel="stylesheet" href="{{$site.Links.Stylesheet}}">
  {{range $site.Links.Fonts}}<link rel="stylesheet" href="{{.}}">
  {{end}}{{range $site.Scripts}}<script src="{{.Src}}"{{if .Defer}} defer{{end}}></script>
  {{end}}
</head>
<body id="top">
  <a href="#main-content" class="skip-link">{{i18n "a11y.skip_to_main"}}</a>
  <div class="container">
    {{template "header" .}}
    <div id="page-content">
      {{template "flash" .}}
      <main id="main-content">
        {{template "content" .}}
      </main>
    </div>
    {{template "footer" .}}
  </div>
</body>
</html>{{end}}
`

var headerTemplate = `{{define "header"}}
<header class="sticky-section">
  <nav id="main-nav">
    <a href="/" class="brand">{{siteConfig.Site.Name}}</a>
    <form action="/search" method="GET" class="header-search" role="search">
      <label for="header-q" class="sr-only">{{i18n "btn.search"}}</label>
      <input type="search" id="header-q" name="q" value="{{.Query}}" autocomplete="off">
      <button type="submit" class="sr-only">{{i18n "btn.search"}}</button>
    </form>
    <span id="nav-loading" class="h-indicator"><span class="h-spinner"></span></span>
    <div class="ml-auto flex-center gap-sm">
      {{range .NavItems}}<a href="{{.Href}}" h-get h-target="#page-content" h-swap="inner" h-push-url h-scroll="top" h-indicator="#nav-loading" class="nav-tab{{if .Active}} active{{end}}"{{if .Active}} aria-current="page"{{end}}>{{if .Icon}}{{.Icon}} {{end}}{{.Title}}</a>
      {{end}}
    </div>
  </nav>
</header>
{{end}}`

var footerTemplate = `{{define "footer"}}
<footer>
<a href="#top" class="scroll-top" aria-label="Scroll to top">↑</a>
</footer>
{{end}}`

// fragmentTemplate renders the page-content for helm.js navigation, with an
// out-of-band update of the nav so active states follow.
var fragmentTemplate = `{{define "fragment"}}<title>{{siteConfig.FormatTitle .Title}}</title>
{{template "flash" .}}
<main id="main-content">
  {{template "content" .}}
</main>
<nav id="main-nav" h-oob="morph">{{template "nav-items" .}}</nav>{{end}}

{{define "nav-items"}}<a href="/" class="brand">{{siteConfig.Site.Name}}</a>
<span id="nav-loading" class="h-indicator"><span class="h-spinner"></span></span>
<div class="ml-auto flex-center gap-sm">
{{range .NavItems}}<a href="{{.Href}}" h-get h-target="#page-content" h-swap="inner" h-push-url h-scroll="top" h-indicator="#nav-loading" class="nav-tab{{if .Active}} active{{end}}"{{if .Active}} aria-current="page"{{end}}>{{if .Icon}}{{.Icon}} {{end}}{{.Title}}</a>
{{end}}</div>{{end}}`

var flashTemplate = `{{define "flash"}}<div id="flash" role="status" aria-live="polite">{{if .Flash.Success}}<div class="flash flash-success">{{.Flash.Success}}</div>{{end}}{{if .Flash.Error}}<div class="flash flash-error">{{.Flash.Error}}</div>{{end}}</div>{{end}}`
