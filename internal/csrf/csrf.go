// Package csrf generates and checks the random tokens used for the
// double-submit cookie pattern: the token travels both as a cookie and as a
// hidden form field, and a mutating request is accepted only when the two
// match.
package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
)

const tokenBytes = 32

// GenerateToken returns a fresh random token, URL-safe base64 encoded so it
// can live in a cookie and a form field unchanged.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}

// ValidateToken reports whether the form token matches the cookie token.
// The comparison is constant-time; an empty value on either side never
// matches.
func ValidateToken(cookieToken, formToken string) bool {
	if cookieToken == "" || formToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookieToken), []byte(formToken)) == 1
}
