package middleware

import (
	"context"
	"net/http"

	"github.com/cylin-dev/guestbook/internal/csrf"
	"github.com/cylin-dev/guestbook/internal/logger"
)

const (
	csrfCookieName = "csrf_token"
	csrfFormField  = "csrf_token"
)

type csrfContextKey string

const csrfTokenContextKey csrfContextKey = "csrf_token"

// GenerateCSRFToken middleware generates and sets the CSRF token cookie and
// exposes the token to templates via the request context.
func GenerateCSRFToken(secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(csrfCookieName)
			var token string

			if err != nil || cookie.Value == "" {
				token, err = csrf.GenerateToken()
				if err != nil {
					logger.Log.Error("failed to generate CSRF token", "error", err)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
					return
				}

				http.SetCookie(w, &http.Cookie{
					Name:     csrfCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   secureCookies,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   86400,
				})
			} else {
				token = cookie.Value
			}

			ctx := context.WithValue(r.Context(), csrfTokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ValidateCSRFToken middleware validates the double-submit token on
// mutating requests.
func ValidateCSRFToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost && r.Method != http.MethodPut &&
				r.Method != http.MethodPatch && r.Method != http.MethodDelete {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(csrfCookieName)
			if err != nil {
				logger.Log.Warn("CSRF token cookie missing", "path", r.URL.Path)
				http.Error(w, "CSRF token missing", http.StatusForbidden)
				return
			}

			if r.Form == nil {
				if err := r.ParseForm(); err != nil {
					logger.Log.Error("failed to parse form", "error", err)
					http.Error(w, "Invalid form data", http.StatusBadRequest)
					return
				}
			}

			if !csrf.ValidateToken(cookie.Value, r.FormValue(csrfFormField)) {
				logger.Log.Warn("CSRF token validation failed", "path", r.URL.Path)
				http.Error(w, "CSRF token invalid", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetCSRFTokenFromContext returns the token set by GenerateCSRFToken.
func GetCSRFTokenFromContext(r *http.Request) string {
	token, ok := r.Context().Value(csrfTokenContextKey).(string)
	if !ok {
		return ""
	}
	return token
}
