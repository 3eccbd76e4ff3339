package gurbani

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gurbani-server/internal/types"
)

func TestIsFalsy(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"null", true},
		{" null ", true},
		{"0", true},
		{"undefined", true},
		{"1", false},
		{"2024/3/7", false},
		{"Raag Gauri", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFalsy(tt.value))
		})
	}
}

func TestJoinHeader(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"drops empty fragment", []string{"Raag", "Writer", "", "Ang 5"}, "Raag - Writer - Ang 5"},
		{"all populated", []string{"Raag", "Writer", "Sri Guru Granth Sahib Ji", "Ang 5"}, "Raag - Writer - Sri Guru Granth Sahib Ji - Ang 5"},
		{"null raag", []string{"null", "Writer", "Source", "Ang 1"}, "Writer - Source - Ang 1"},
		{"no separator after last populated", []string{"Raag", "Writer", "", ""}, "Raag - Writer"},
		{"nothing populated", []string{"", "null"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinHeader(tt.parts...))
		})
	}
}

func TestPageName(t *testing.T) {
	assert.Equal(t, "Ang", PageName("G", types.ScriptEnglish))
	assert.Equal(t, "ਅੰਗ", PageName("G", types.ScriptUnicode))
	assert.Equal(t, "AMg", PageName("G", types.ScriptGurmukhi))
	assert.Equal(t, "Pannaa", PageName("D", types.ScriptEnglish))
	assert.Equal(t, "ਪੰਨਾ", PageName("B", types.ScriptUnicode))
}

func TestRaagText(t *testing.T) {
	info := types.ContentInfo{
		Raag: &types.Raag{LangText: types.LangText{Unicode: "null", English: "Raag Gauri"}},
	}

	assert.Empty(t, RaagText(info, types.ScriptUnicode))
	assert.Equal(t, "Raag Gauri", RaagText(info, types.ScriptEnglish))
	assert.Empty(t, RaagText(types.ContentInfo{}, types.ScriptEnglish))
}

func TestWriterText(t *testing.T) {
	info := types.ContentInfo{
		Writer: &types.Writer{LangText: types.LangText{English: "Guru Nanak Dev Ji"}},
	}

	assert.Equal(t, "Guru Nanak Dev Ji", WriterText(info, types.ScriptEnglish))
	assert.Empty(t, WriterText(types.ContentInfo{}, types.ScriptEnglish))
}
