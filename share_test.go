package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildShare(t *testing.T) {
	share := buildShare("https://gurbani.example.org/", "/shabad?id=123")
	assert.Equal(t, "https://gurbani.example.org/shabad?id=123", share.URL)
	assert.True(t, strings.HasPrefix(string(share.QRDataURL), "data:image/png;base64,"))

	share = buildShare("", "/shabad?id=123")
	assert.Equal(t, "/shabad?id=123", share.URL)
	assert.Empty(t, share.QRDataURL)
}
