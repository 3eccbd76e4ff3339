package main

import (
	"net/http"

	"gurbani-server/internal/util"
)

// =============================================================================
// Cookie Helpers
// =============================================================================

// shouldSecureCookie reports whether cookies for this request need the Secure
// flag: direct TLS, or TLS terminated at a proxy.
func shouldSecureCookie(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}

// isHelmRequest reports whether helm.js sent the request and wants a fragment
func isHelmRequest(r *http.Request) bool {
	return util.IsHelmRequest(r)
}

// SetCookie sets an HTTP cookie with standard security defaults.
// Uses the request to determine if the Secure flag should be set.
// Parameters:
//   - name: cookie name
//   - value: cookie value
//   - path: cookie path (use "/" for site-wide)
//   - maxAge: cookie lifetime in seconds (-1 to delete)
//   - sameSite: SameSite policy (http.SameSiteLaxMode or http.SameSiteStrictMode)
func SetCookie(w http.ResponseWriter, r *http.Request, name, value, path string, maxAge int, sameSite http.SameSite) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   shouldSecureCookie(r),
		SameSite: sameSite,
	})
}

// SetLaxCookie sets a cookie with lax security (allows cross-site top-level navigation).
// Uses SameSiteLaxMode and "/" path. Suitable for flash messages and preferences.
func SetLaxCookie(w http.ResponseWriter, r *http.Request, name, value string, maxAge int) {
	SetCookie(w, r, name, value, "/", maxAge, http.SameSiteLaxMode)
}

// DeleteCookie deletes a cookie by setting MaxAge to -1.
func DeleteCookie(w http.ResponseWriter, r *http.Request, name string) {
	SetCookie(w, r, name, "", "/", -1, http.SameSiteLaxMode)
}

// cookieValue returns the value of a cookie, or "" when absent
func cookieValue(r *http.Request, name string) string {
	if c, err := r.Cookie(name); err == nil {
		return c.Value
	}
	return ""
}
