package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSource(t *testing.T) {
	src := "var x = `<p>{{i18n \"btn.search\"}}</p>{{markdown \"search.error_description\"}}`\n" +
		"title := config.I18n(\"hukamnama.heading\")\n" +
		"a.renderError(w, r, http.StatusBadGateway, \"page.upstream_error\", \"page.upstream_error_description\")\n"

	uses := scanSource("x.go", src)
	keys := make([]string, len(uses))
	for i, u := range uses {
		keys[i] = u.Key
	}

	assert.Equal(t, []string{
		"btn.search",
		"search.error_description",
		"hukamnama.heading",
		"page.upstream_error",
		"page.upstream_error_description",
	}, keys)
	require.Len(t, uses, 5)
	assert.Equal(t, 2, uses[2].Line)
}

func TestScanSourceSkipsEmptyDescriptionKey(t *testing.T) {
	uses := scanSource("x.go", `a.renderError(w, r, http.StatusNotFound, "page.not_found", "")`)
	require.Len(t, uses, 1)
	assert.Equal(t, "page.not_found", uses[0].Key)
}

func TestMissingKeys(t *testing.T) {
	known := map[string]bool{"a.b": true}
	uses := []KeyUse{
		{Key: "z.z", File: "b.go", Line: 1},
		{Key: "a.b", File: "a.go", Line: 2},
		{Key: "c.d", File: "a.go", Line: 3},
	}

	missing := missingKeys(uses, func(k string) bool { return known[k] })

	require.Len(t, missing, 2)
	assert.Equal(t, "c.d", missing[0].Key)
	assert.Equal(t, "z.z", missing[1].Key)
}
