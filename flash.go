package main

import (
	"net/http"
	"net/url"
)

// Flash message cookie names
const (
	flashSuccessCookie = "flash_success"
	flashErrorCookie   = "flash_error"
)

// setFlash sets a short-lived flash message cookie
func setFlash(w http.ResponseWriter, r *http.Request, name, message string) {
	// 1 minute is plenty of time for the redirect
	SetLaxCookie(w, r, name, url.QueryEscape(message), 60)
}

// FlashMessages holds success and error messages read from cookies
type FlashMessages struct {
	Success string
	Error   string
}

// getFlashMessages reads and clears flash message cookies.
// Call this once per request, early in the handler.
func getFlashMessages(w http.ResponseWriter, r *http.Request) FlashMessages {
	var messages FlashMessages

	if v := cookieValue(r, flashSuccessCookie); v != "" {
		if decoded, err := url.QueryUnescape(v); err == nil {
			messages.Success = decoded
		}
		DeleteCookie(w, r, flashSuccessCookie)
	}

	if v := cookieValue(r, flashErrorCookie); v != "" {
		if decoded, err := url.QueryUnescape(v); err == nil {
			messages.Error = decoded
		}
		DeleteCookie(w, r, flashErrorCookie)
	}

	return messages
}

// redirectWithSuccess redirects to a URL and sets a success flash message
func redirectWithSuccess(w http.ResponseWriter, r *http.Request, url string, message string) {
	setFlash(w, r, flashSuccessCookie, message)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// redirectWithError redirects to a URL and sets an error flash message
func redirectWithError(w http.ResponseWriter, r *http.Request, url string, message string) {
	setFlash(w, r, flashErrorCookie, message)
	http.Redirect(w, r, url, http.StatusSeeOther)
}
