package main

import (
	"strconv"

	"gurbani-server/internal/gurbani"
	"gurbani-server/internal/types"
)

// LangLine is a translation or transliteration in one language
type LangLine struct {
	Lang         string
	Text         string
	GurmukhiFont bool // ASCII Gurmukhi that needs the Gurbani font
}

// VerseView is a verse prepared for the visitor's preferences
type VerseView struct {
	ID               int
	Gurbani          string
	Unicode          bool
	Translations     []LangLine
	Transliterations []LangLine
	ShabadHref       string
	Meta             string
}

// buildVerses renders verses in the preferred script and languages
func buildVerses(verses []types.Verse, prefs Preferences) []VerseView {
	out := make([]VerseView, 0, len(verses))
	for _, v := range verses {
		out = append(out, buildVerse(v, prefs))
	}
	return out
}

func buildVerse(v types.Verse, prefs Preferences) VerseView {
	script := types.ScriptGurmukhi
	if prefs.IsUnicode {
		script = types.ScriptUnicode
	}

	view := VerseView{
		ID:      v.VerseID,
		Gurbani: v.Verse.In(script),
		Unicode: prefs.IsUnicode,
	}
	if v.ShabadID > 0 {
		view.ShabadHref = gurbani.ShabadURL(v.ShabadID)
	}

	for _, lang := range prefs.TranslationLanguages {
		if line, ok := translationLine(v.Translation, lang, script); ok {
			view.Translations = append(view.Translations, line)
		}
	}
	for _, lang := range prefs.TransliterationLanguages {
		if text := transliteration(v.Transliteration, lang); !gurbani.IsFalsy(text) {
			view.Transliterations = append(view.Transliterations, LangLine{Lang: lang, Text: text})
		}
	}
	return view
}

// translationLine picks the preferred translator for a language, falling
// back through the alternatives the API carries
func translationLine(t types.Translation, lang string, script types.Script) (LangLine, bool) {
	var text string
	gurmukhiFont := false
	switch lang {
	case "english":
		text = firstPopulated(t.English.BDB, t.English.SSK, t.English.MS)
	case "punjabi":
		text = firstPopulated(t.Punjabi.SS.In(script), t.Punjabi.FT.In(script))
		gurmukhiFont = script == types.ScriptGurmukhi
	case "spanish":
		text = t.Spanish.SN
	case "hindi":
		text = firstPopulated(t.Hindi.SS, t.Hindi.STS)
	}
	if gurbani.IsFalsy(text) {
		return LangLine{}, false
	}
	return LangLine{Lang: lang, Text: text, GurmukhiFont: gurmukhiFont}, true
}

func transliteration(t types.Transliteration, lang string) string {
	switch lang {
	case "english":
		return t.English
	case "hindi":
		return t.Hindi
	case "ipa":
		return t.IPA
	case "shahmukhi":
		return t.Shahmukhi
	}
	return ""
}

func firstPopulated(values ...string) string {
	for _, v := range values {
		if !gurbani.IsFalsy(v) {
			return v
		}
	}
	return ""
}

// buildResultVerses renders search hits with their source and page
func buildResultVerses(verses []types.Verse, prefs Preferences) []VerseView {
	out := buildVerses(verses, prefs)
	for i, v := range verses {
		if v.Source == nil {
			continue
		}
		info := types.ContentInfo{ShabadID: v.ShabadID, PageNo: v.PageNo, Source: *v.Source, Writer: v.Writer, Raag: v.Raag}
		out[i].Meta = gurbani.JoinHeader(
			gurbani.WriterText(info, types.ScriptEnglish),
			info.Source.English,
			pageLabel(info, types.ScriptEnglish),
		)
	}
	return out
}

func pageLabel(info types.ContentInfo, script types.Script) string {
	page, ok := pageNumber(info)
	if !ok {
		return ""
	}
	return gurbani.PageName(gurbani.SourceID(info), script) + " " + strconv.Itoa(page)
}
