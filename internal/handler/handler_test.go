package handler

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/cylin-dev/guestbook/internal/config"
	"github.com/cylin-dev/guestbook/internal/domain"
	"github.com/cylin-dev/guestbook/internal/middleware"
	"github.com/cylin-dev/guestbook/internal/textfmt"
)

// Mock services with overridable func fields and permissive defaults.

type MockGuestbookService struct {
	ListFunc   func() ([]domain.Entry, error)
	CreateFunc func(name, email, message, icon string) (domain.Entry, error)
	GetFunc    func(id domain.EntryId) (domain.Entry, error)
	UpdateFunc func(id domain.EntryId, name, email, message, icon string) (domain.Entry, error)
	DeleteFunc func(id domain.EntryId) error
}

func (m *MockGuestbookService) List() ([]domain.Entry, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *MockGuestbookService) Create(name, email, message, icon string) (domain.Entry, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(name, email, message, icon)
	}
	return domain.Entry{Id: 1, Name: name, Email: email, Message: message, Icon: icon}, nil
}

func (m *MockGuestbookService) Get(id domain.EntryId) (domain.Entry, error) {
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return domain.Entry{Id: id}, nil
}

func (m *MockGuestbookService) Update(id domain.EntryId, name, email, message, icon string) (domain.Entry, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, name, email, message, icon)
	}
	return domain.Entry{Id: id, Name: name, Email: email, Message: message, Icon: icon}, nil
}

func (m *MockGuestbookService) Delete(id domain.EntryId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

type MockAuthService struct {
	LoginFunc      func(creds domain.Credentials) (string, domain.User, error)
	CreateUserFunc func(name, email, password string, admin bool) (domain.UserId, error)
}

func (m *MockAuthService) Login(creds domain.Credentials) (string, domain.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(creds)
	}
	return "token", domain.User{Id: 1, Name: "admin", Admin: true}, nil
}

func (m *MockAuthService) CreateUser(name, email, password string, admin bool) (domain.UserId, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(name, email, password, admin)
	}
	return 1, nil
}

// testTemplates builds small stand-ins for the real page files so handler
// tests can assert on rendered output without the full layout.
func testTemplates(t *testing.T) map[string]*template.Template {
	t.Helper()
	funcs := template.FuncMap{
		"datetime": textfmt.FormatTime,
		"nl2br":    textfmt.Paragraphs,
	}
	pages := map[string]string{
		"index.html":  `entries:{{len .Data.Entries}} error:{{.Common.Error}}`,
		"login.html":  `login error:{{.Common.Error}}`,
		"list.html":   `entries:{{len .Data.Entries}} user:{{with .Common.User}}{{.Name}}{{end}}`,
		"update.html": `entry:{{.Data.Entry.Name}}`,
	}
	templates := make(map[string]*template.Template, len(pages))
	for name, text := range pages {
		templates[name] = template.Must(template.New(name).Funcs(funcs).Parse(text))
	}
	return templates
}

func newTestHandler(t *testing.T, guestbook *MockGuestbookService, auth *MockAuthService) *Handler {
	t.Helper()
	cfg := &config.Config{Public: config.Public{JwtTTL: time.Hour}}
	return New(testTemplates(t), guestbook, auth, cfg)
}

func newTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.IndexGetHandler).Methods("GET")
	r.HandleFunc("/add_msg", h.AddMessageHandler).Methods("POST")
	r.HandleFunc("/admin", h.AdminGetHandler).Methods("GET")
	r.HandleFunc("/login", h.LoginPostHandler).Methods("POST")
	r.HandleFunc("/list", h.ListGetHandler).Methods("GET")
	r.HandleFunc("/delete", h.DeleteHandler).Methods("POST")
	r.HandleFunc("/update", h.UpdateGetHandler).Methods("GET")
	r.HandleFunc("/update_msg", h.UpdateMessageHandler).Methods("POST")
	r.HandleFunc("/logout", h.LogoutHandler).Methods("GET")
	return r
}

func postForm(t *testing.T, router *mux.Router, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// requestWithUser simulates what the auth middleware puts on the context.
func requestWithUser(req *http.Request, user *domain.User) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserClaimsKey, user)
	return req.WithContext(ctx)
}

func flashValue(t *testing.T, rr *httptest.ResponseRecorder, name string) string {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == name && c.MaxAge >= 0 {
			return c.Value
		}
	}
	return ""
}
