// Package auth guards the preference forms against cross-site submission.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// CSRFTokenMaxAge is the maximum age of a CSRF token before it expires.
	// Pages stay open for a long time while listening, so this is generous.
	CSRFTokenMaxAge = 12 * time.Hour
)

// CSRFManager handles CSRF token generation and validation.
// Tokens are bound to the visitor id cookie.
type CSRFManager struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewCSRFManager creates a new CSRF manager with the given secret
func NewCSRFManager(secret []byte) *CSRFManager {
	return &CSRFManager{secret: secret, maxAge: CSRFTokenMaxAge, now: time.Now}
}

// NewCSRFManagerWithRandomSecret creates a new CSRF manager with a random secret
func NewCSRFManagerWithRandomSecret() (*CSRFManager, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate CSRF secret: %w", err)
	}
	return NewCSRFManager(secret), nil
}

// GenerateToken creates a signed CSRF token for the given visitor ID
// Format: timestamp.signature (base64 encoded)
func (m *CSRFManager) GenerateToken(visitorID string) string {
	timestamp := m.now().Unix()
	signature := m.computeSignature(visitorID, timestamp)
	return fmt.Sprintf("%d.%s", timestamp, signature)
}

// ValidateToken checks if a CSRF token is valid for the given visitor ID
func (m *CSRFManager) ValidateToken(visitorID string, token string) bool {
	if visitorID == "" {
		return false
	}
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return false
	}

	timestamp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return false
	}

	if m.now().Unix()-timestamp > int64(m.maxAge.Seconds()) {
		return false
	}

	expectedSignature := m.computeSignature(visitorID, timestamp)
	return hmac.Equal([]byte(parts[1]), []byte(expectedSignature))
}

func (m *CSRFManager) computeSignature(visitorID string, timestamp int64) string {
	data := fmt.Sprintf("%s.%d", visitorID, timestamp)

	h := hmac.New(sha256.New, m.secret)
	h.Write([]byte(data))
	return base64.URLEncoding.EncodeToString(h.Sum(nil))
}
