package handler

import (
	"html/template"
	"net/http"

	"github.com/cylin-dev/guestbook/internal/config"
	"github.com/cylin-dev/guestbook/internal/service"
)

type Handler struct {
	Templates map[string]*template.Template
	guestbook service.GuestbookService
	auth      service.AuthService
	cfg       *config.Config
}

func New(templates map[string]*template.Template, guestbook service.GuestbookService, auth service.AuthService, cfg *config.Config) *Handler {
	return &Handler{
		Templates: templates,
		guestbook: guestbook,
		auth:      auth,
		cfg:       cfg,
	}
}

func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "static/favicon.ico")
}
