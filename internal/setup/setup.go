package setup

import (
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/cylin-dev/guestbook/internal/config"
	"github.com/cylin-dev/guestbook/internal/handler"
	"github.com/cylin-dev/guestbook/internal/jwt"
	"github.com/cylin-dev/guestbook/internal/middleware"
	"github.com/cylin-dev/guestbook/internal/service"
	"github.com/cylin-dev/guestbook/internal/storage/pg"
	"github.com/cylin-dev/guestbook/internal/textfmt"
	"github.com/cylin-dev/guestbook/internal/utils"
)

const (
	baseTemplate           = "base.html"
	tmplPath               = "templates"
	templateReloadInterval = 5 * time.Second
)

type Dependencies struct {
	Handler *handler.Handler
	Auth    *middleware.Auth
	Config  *config.Config
	Storage *pg.Storage
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	store, err := pg.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	jwtSvc := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	guestbookSvc := service.NewGuestbook(store, utils.NewEntryValidator())
	authSvc := service.NewAuth(store, jwtSvc)

	templates := mustLoadTemplates(tmplPath)
	h := handler.New(templates, guestbookSvc, authSvc, cfg)
	startTemplateReloader(h, tmplPath)

	return &Dependencies{
		Handler: h,
		Auth:    middleware.NewAuth(jwtSvc, cfg.Public.SecureCookies),
		Config:  cfg,
		Storage: store,
	}, nil
}

func mustLoadTemplates(tmplPath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		panic(err)
	}

	funcs := template.FuncMap{
		"datetime": textfmt.FormatTime,
		"nl2br":    textfmt.Paragraphs,
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) == ".html" && f.Name() != baseTemplate {
			templates[f.Name()] = template.Must(template.New(baseTemplate).Funcs(funcs).ParseFiles(
				path.Join(tmplPath, baseTemplate),
				path.Join(tmplPath, f.Name()),
			))
		}
	}
	return templates
}

func startTemplateReloader(h *handler.Handler, tmplPath string) {
	if os.Getenv("ENV") == "development" {
		ticker := time.NewTicker(templateReloadInterval)
		go func() {
			for range ticker.C {
				h.Templates = mustLoadTemplates(tmplPath)
			}
		}()
	}
}
