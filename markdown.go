package main

import (
	"bytes"
	"html/template"
	"log/slog"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
	markdownPolicy   = bluemonday.UGCPolicy()

	// i18n descriptions are a small fixed set, so rendered output is kept
	markdownCache sync.Map
)

// renderMarkdown converts markdown to sanitized HTML for templates
func renderMarkdown(src string) template.HTML {
	if src == "" {
		return ""
	}
	if cached, ok := markdownCache.Load(src); ok {
		return cached.(template.HTML)
	}

	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(src), &buf); err != nil {
		slog.Warn("failed to render markdown", "error", err)
		return template.HTML(template.HTMLEscapeString(src))
	}

	html := template.HTML(markdownPolicy.SanitizeBytes(buf.Bytes()))
	markdownCache.Store(src, html)
	return html
}
