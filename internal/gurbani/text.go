// Package gurbani holds the pure lookups used when rendering Gurbani metadata:
// falsy checks, raag/writer/source accessors, page names, header assembly,
// route building and hukamnama date arithmetic.
package gurbani

import (
	"strings"

	"gurbani-server/internal/types"
)

// HeaderSeparator joins populated header fragments
const HeaderSeparator = " - "

// SourceGuruGranthSahib is the only source whose pages are called "Ang"
const SourceGuruGranthSahib = "G"

var pageNames = map[string]types.LangText{
	"ang":   {Unicode: "ਅੰਗ", Gurmukhi: "AMg", English: "Ang"},
	"panna": {Unicode: "ਪੰਨਾ", Gurmukhi: "pMnw", English: "Pannaa"},
}

// IsFalsy reports whether an upstream value should be treated as missing.
// The content API emits absent values as empty strings, "null" or 0.
func IsFalsy(value string) bool {
	switch strings.TrimSpace(value) {
	case "", "null", "undefined", "false", "0", "NaN":
		return true
	}
	return false
}

// Raag returns the raag of a content item, or nil
func Raag(info types.ContentInfo) *types.Raag {
	return info.Raag
}

// Writer returns the writer of a content item, or nil
func Writer(info types.ContentInfo) *types.Writer {
	return info.Writer
}

// SourceID returns the scripture id ("G", "D", ...) of a content item
func SourceID(info types.ContentInfo) string {
	return info.Source.SourceID
}

// RaagText returns the raag in the given script, empty if missing or "null"
func RaagText(info types.ContentInfo, script types.Script) string {
	raag := Raag(info)
	if raag == nil {
		return ""
	}
	text := raag.In(script)
	if IsFalsy(text) {
		return ""
	}
	return text
}

// WriterText returns the writer in the given script
func WriterText(info types.ContentInfo, script types.Script) string {
	writer := Writer(info)
	if writer == nil {
		return ""
	}
	return writer.In(script)
}

// PageName returns "Ang" for Guru Granth Sahib and "Panna" for every other
// source, in the requested script.
func PageName(sourceID string, script types.Script) string {
	if sourceID == SourceGuruGranthSahib {
		return pageNames["ang"].In(script)
	}
	return pageNames["panna"].In(script)
}

// Fragment is one piece of a header line, optionally linked
type Fragment struct {
	Text string
	Href string
}

// CompactFragments drops falsy fragments, keeping order
func CompactFragments(fragments []Fragment) []Fragment {
	out := make([]Fragment, 0, len(fragments))
	for _, f := range fragments {
		if IsFalsy(f.Text) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// JoinHeader joins the populated fragments with HeaderSeparator.
// ["Raag", "Writer", "", "Ang 5"] becomes "Raag - Writer - Ang 5".
func JoinHeader(parts ...string) string {
	fragments := make([]Fragment, len(parts))
	for i, p := range parts {
		fragments[i] = Fragment{Text: p}
	}
	compact := CompactFragments(fragments)
	texts := make([]string, len(compact))
	for i, f := range compact {
		texts[i] = f.Text
	}
	return strings.Join(texts, HeaderSeparator)
}
