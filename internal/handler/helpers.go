package handler

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
)

const (
	flashCookieError   = "flash_error"
	flashCookieSuccess = "flash_success"
)

// setFlash stores a one-shot message that survives a redirect.
// base64 so arbitrary message characters are cookie-safe.
func (h *Handler) setFlash(w http.ResponseWriter, name, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    base64.StdEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads a flash cookie and expires it.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.StdEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, targetURL, cookieName, msg string) {
	h.setFlash(w, cookieName, msg)
	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}

// parseIdParam parses an entry id from a form or query value.
func parseIdParam(param string) (int64, error) {
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: must be an integer")
	}
	return id, nil
}
