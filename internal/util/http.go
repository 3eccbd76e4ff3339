package util

import "net/http"

// =============================================================================
// HTTP Response Helpers
// =============================================================================

// HelmRequestHeader is sent by helm.js on every hypermedia request
const HelmRequestHeader = "H-Request"

// IsHelmRequest reports whether the request came from helm.js and expects a
// fragment rather than a full page
func IsHelmRequest(r *http.Request) bool {
	return r.Header.Get(HelmRequestHeader) == "true"
}

// SetPrivateHTMLHeaders sets headers for HTML that depends on visitor cookies
func SetPrivateHTMLHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "private, no-cache")
	w.Header().Add("Vary", HelmRequestHeader)
}

// =============================================================================
// HTTP Error Helpers
// =============================================================================

// RespondBadRequest sends a 400 Bad Request error response.
func RespondBadRequest(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusBadRequest)
}

// RespondForbidden sends a 403 Forbidden error response.
func RespondForbidden(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusForbidden)
}

// RespondMethodNotAllowed sends a 405 Method Not Allowed error response.
func RespondMethodNotAllowed(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusMethodNotAllowed)
}

// RespondInternalError sends a 500 Internal Server Error response.
func RespondInternalError(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusInternalServerError)
}
