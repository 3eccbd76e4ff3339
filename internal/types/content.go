// Package types provides shared type definitions used across internal packages.
package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ContentType identifies which kind of page a meta block belongs to
type ContentType string

const (
	ContentShabad    ContentType = "shabad"
	ContentAng       ContentType = "ang"
	ContentHukamnama ContentType = "hukamnama"
	ContentSync      ContentType = "sync"
)

// Script selects which rendering of a Gurmukhi string to use
type Script string

const (
	ScriptUnicode  Script = "unicode"
	ScriptGurmukhi Script = "gurmukhi"
	ScriptEnglish  Script = "english"
)

// LangText holds the same label in each supported script.
// Any field may be empty or the literal string "null" upstream.
type LangText struct {
	Gurmukhi string `json:"gurmukhi"`
	Unicode  string `json:"unicode"`
	English  string `json:"english"`
}

// In returns the text for the given script
func (t LangText) In(script Script) string {
	switch script {
	case ScriptUnicode:
		return t.Unicode
	case ScriptGurmukhi:
		return t.Gurmukhi
	case ScriptEnglish:
		return t.English
	}
	return ""
}

// Source describes the scripture a verse comes from
type Source struct {
	LangText
	SourceID string `json:"sourceId"`
	PageNo   *int   `json:"pageNo"` // nil when the API sends null
}

// Writer is the author of a shabad
type Writer struct {
	LangText
	WriterID int `json:"writerId"`
}

// Raag is the musical mode of a shabad
type Raag struct {
	LangText
	RaagID       int    `json:"raagId"`
	RaagWithPage string `json:"raagWithPage"`
}

// ContentInfo describes a displayed text unit (shabad, ang or hukamnama)
type ContentInfo struct {
	ShabadID int     `json:"shabadId"`
	PageNo   int     `json:"pageNo,omitempty"`
	Source   Source  `json:"source"`
	Writer   *Writer `json:"writer,omitempty"`
	Raag     *Raag   `json:"raag,omitempty"`
}

// NavState holds sibling navigation targets. Values are numeric ids or
// date strings; empty means absent.
type NavState struct {
	Previous string
	Current  string
	Next     string
}

// FlexString decodes a JSON string, number or null into a string
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Int parses the value as an integer, returning 0 when it is not numeric
func (f FlexString) Int() int {
	n, err := strconv.Atoi(string(f))
	if err != nil {
		return 0
	}
	return n
}
