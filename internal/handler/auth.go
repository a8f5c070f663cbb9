package handler

import (
	"net/http"

	"github.com/cylin-dev/guestbook/internal/domain"
	internal_errors "github.com/cylin-dev/guestbook/internal/errors"
	"github.com/cylin-dev/guestbook/internal/middleware"
)

// AdminGetHandler renders the login form.
func (h *Handler) AdminGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "login.html", nil)
}

// LoginPostHandler verifies credentials and establishes the session cookie.
// The three failure causes keep distinct messages and status codes.
func (h *Handler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderTemplateStatus(w, r, "login.html", nil, "Invalid form data.", http.StatusBadRequest)
		return
	}

	creds := domain.Credentials{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	token, _, err := h.auth.Login(creds)
	if err != nil {
		h.renderTemplateStatus(w, r, "login.html", nil, err.Error(), internal_errors.StatusCode(err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/list", http.StatusSeeOther)
}

// LogoutHandler invalidates the session cookie.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		MaxAge:   -1, // Expire immediately
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
