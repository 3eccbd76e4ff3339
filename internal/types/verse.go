package types

// Verse is a single line of Gurbani as returned by the content API
type Verse struct {
	VerseID         int             `json:"verseId"`
	ShabadID        int             `json:"shabadId"`
	Verse           LangText        `json:"verse"`
	Larivaar        LangText        `json:"larivaar"`
	Translation     Translation     `json:"translation"`
	Transliteration Transliteration `json:"transliteration"`
	PageNo          int             `json:"pageNo"`
	LineNo          int             `json:"lineNo"`
	Writer          *Writer         `json:"writer,omitempty"`
	Source          *Source         `json:"source,omitempty"`
	Raag            *Raag           `json:"raag,omitempty"`
}

// Translation groups the available translations of a verse
type Translation struct {
	English EnglishTranslation `json:"en"`
	Punjabi PunjabiTranslation `json:"pu"`
	Spanish SpanishTranslation `json:"es"`
	Hindi   HindiTranslation   `json:"hi"`
}

type EnglishTranslation struct {
	BDB string `json:"bdb"`
	MS  string `json:"ms"`
	SSK string `json:"ssk"`
}

type PunjabiTranslation struct {
	SS LangText `json:"ss"`
	FT LangText `json:"ft"`
}

type SpanishTranslation struct {
	SN string `json:"sn"`
}

type HindiTranslation struct {
	SS  string `json:"ss"`
	STS string `json:"sts"`
}

// Transliteration groups the available transliterations of a verse
type Transliteration struct {
	English   string `json:"english"`
	Hindi     string `json:"hindi"`
	IPA       string `json:"ipa"`
	Shahmukhi string `json:"ur"`
}
