package main

import (
	"encoding/base64"
	"html/template"
	"log/slog"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// ShareView is the share box of content pages
type ShareView struct {
	URL       string
	QRDataURL template.URL // inline PNG, trusted because it is generated here
}

// buildShare makes the absolute share URL for a route and its QR code.
// Without a configured public URL the route is shared relative and no QR
// code is drawn.
func buildShare(publicURL, route string) *ShareView {
	if publicURL == "" {
		return &ShareView{URL: route}
	}
	full := strings.TrimSuffix(publicURL, "/") + route
	return &ShareView{URL: full, QRDataURL: generateQRCodeDataURL(full)}
}

func generateQRCodeDataURL(content string) template.URL {
	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		slog.Error("failed to generate QR code", "error", err)
		return ""
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
