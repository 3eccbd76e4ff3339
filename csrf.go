package main

import (
	"net/http"
	"os"

	"github.com/google/uuid"

	"gurbani-server/internal/auth"
	"gurbani-server/internal/util"
)

const (
	visitorCookie       = "visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60
	csrfFormField       = "csrf_token"
)

// newCSRFManager uses CSRF_SECRET when set, otherwise a per-process secret
func newCSRFManager() (*auth.CSRFManager, error) {
	if secret := os.Getenv("CSRF_SECRET"); secret != "" {
		return auth.NewCSRFManager([]byte(secret)), nil
	}
	return auth.NewCSRFManagerWithRandomSecret()
}

// visitorID returns the visitor cookie, issuing a new one if missing or invalid.
// It is the key CSRF tokens are bound to.
func visitorID(w http.ResponseWriter, r *http.Request) string {
	if v := cookieValue(r, visitorCookie); v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	id := uuid.NewString()
	SetCookie(w, r, visitorCookie, id, "/", visitorCookieMaxAge, http.SameSiteStrictMode)
	// Make the new id visible to the rest of this request
	r.AddCookie(&http.Cookie{Name: visitorCookie, Value: id})
	return id
}

// csrfToken issues a token for the visitor of this request
func (a *app) csrfToken(w http.ResponseWriter, r *http.Request) string {
	return a.csrf.GenerateToken(visitorID(w, r))
}

// requireCSRF validates the form token of a POST. It writes 403 and returns
// false on failure.
func (a *app) requireCSRF(w http.ResponseWriter, r *http.Request) bool {
	id := cookieValue(r, visitorCookie)
	if !a.csrf.ValidateToken(id, r.FormValue(csrfFormField)) {
		LoggerFromContext(r.Context()).Warn("csrf validation failed", "path", r.URL.Path)
		util.RespondForbidden(w, "Invalid or expired form, please reload the page")
		return false
	}
	return true
}
