package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cylin-dev/guestbook/internal/domain"
	internal_errors "github.com/cylin-dev/guestbook/internal/errors"
)

func TestIndexGetHandler(t *testing.T) {
	guestbook := &MockGuestbookService{
		ListFunc: func() ([]domain.Entry, error) {
			return []domain.Entry{{Id: 1, Name: "Alice"}, {Id: 2, Name: "Bob"}}, nil
		},
	}
	router := newTestRouter(newTestHandler(t, guestbook, &MockAuthService{}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "entries:2")
}

func TestAddMessageHandler(t *testing.T) {
	form := url.Values{
		"guestname": {"Alice"},
		"email":     {"a@x.com"},
		"message":   {"hi"},
		"icon":      {"ico1.png"},
	}

	t.Run("success redirects to index", func(t *testing.T) {
		var gotName, gotIcon string
		guestbook := &MockGuestbookService{
			CreateFunc: func(name, email, message, icon string) (domain.Entry, error) {
				gotName, gotIcon = name, icon
				return domain.Entry{Id: 1}, nil
			},
		}
		router := newTestRouter(newTestHandler(t, guestbook, &MockAuthService{}))

		rr := postForm(t, router, "/add_msg", form)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
		assert.Equal(t, "Alice", gotName)
		assert.Equal(t, "ico1.png", gotIcon)
	})

	t.Run("duplicate email surfaces flash error", func(t *testing.T) {
		guestbook := &MockGuestbookService{
			CreateFunc: func(name, email, message, icon string) (domain.Entry, error) {
				return domain.Entry{}, internal_errors.Conflict("An entry with this email already exists")
			},
		}
		router := newTestRouter(newTestHandler(t, guestbook, &MockAuthService{}))

		rr := postForm(t, router, "/add_msg", form)

		// still a redirect, but the error travels along as a flash
		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
		assert.NotEmpty(t, flashValue(t, rr, "flash_error"))
	})
}

func TestListGetHandler(t *testing.T) {
	guestbook := &MockGuestbookService{
		ListFunc: func() ([]domain.Entry, error) {
			return []domain.Entry{{Id: 1, Name: "Alice"}}, nil
		},
	}
	h := newTestHandler(t, guestbook, &MockAuthService{})

	// the admin user arrives via request context (set by auth middleware)
	req := httptest.NewRequest(http.MethodGet, "/list", nil)
	req = requestWithUser(req, &domain.User{Id: 1, Name: "admin", Admin: true})
	rr := httptest.NewRecorder()
	newTestRouter(h).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "entries:1")
	assert.Contains(t, rr.Body.String(), "user:admin")
}

func TestDeleteHandler(t *testing.T) {
	t.Run("success returns ok!", func(t *testing.T) {
		var gotId domain.EntryId
		guestbook := &MockGuestbookService{
			DeleteFunc: func(id domain.EntryId) error {
				gotId = id
				return nil
			},
		}
		router := newTestRouter(newTestHandler(t, guestbook, &MockAuthService{}))

		rr := postForm(t, router, "/delete", url.Values{"id": {"3"}})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok!", rr.Body.String())
		assert.Equal(t, int64(3), gotId)
	})

	t.Run("non-integer id is a bad request", func(t *testing.T) {
		router := newTestRouter(newTestHandler(t, &MockGuestbookService{}, &MockAuthService{}))

		rr := postForm(t, router, "/delete", url.Values{"id": {"abc"}})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing entry is not found", func(t *testing.T) {
		guestbook := &MockGuestbookService{
			DeleteFunc: func(id domain.EntryId) error {
				return internal_errors.NotFound("Entry not found")
			},
		}
		router := newTestRouter(newTestHandler(t, guestbook, &MockAuthService{}))

		rr := postForm(t, router, "/delete", url.Values{"id": {"42"}})

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateGetHandler(t *testing.T) {
	t.Run("renders pre-filled form", func(t *testing.T) {
		guestbook := &MockGuestbookService{
			GetFunc: func(id domain.EntryId) (domain.Entry, error) {
				require.Equal(t, int64(5), id)
				return domain.Entry{Id: id, Name: "Alice"}, nil
			},
		}
		router := newTestRouter(newTestHandler(t, guestbook, &MockAuthService{}))

		req := httptest.NewRequest(http.MethodGet, "/update?id=5", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "entry:Alice")
	})

	t.Run("missing entry is not found", func(t *testing.T) {
		guestbook := &MockGuestbookService{
			GetFunc: func(id domain.EntryId) (domain.Entry, error) {
				return domain.Entry{}, internal_errors.NotFound("Entry not found")
			},
		}
		router := newTestRouter(newTestHandler(t, guestbook, &MockAuthService{}))

		req := httptest.NewRequest(http.MethodGet, "/update?id=42", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateMessageHandler(t *testing.T) {
	form := url.Values{
		"id":        {"5"},
		"guestname": {"Alicia"},
		"email":     {"alicia@x.com"},
		"message":   {"hello"},
		"icon":      {"ico2.png"},
	}

	t.Run("success redirects to list", func(t *testing.T) {
		var gotId domain.EntryId
		var gotEmail string
		guestbook := &MockGuestbookService{
			UpdateFunc: func(id domain.EntryId, name, email, message, icon string) (domain.Entry, error) {
				gotId, gotEmail = id, email
				return domain.Entry{Id: id}, nil
			},
		}
		router := newTestRouter(newTestHandler(t, guestbook, &MockAuthService{}))

		rr := postForm(t, router, "/update_msg", form)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/list", rr.Header().Get("Location"))
		assert.Equal(t, int64(5), gotId)
		assert.Equal(t, "alicia@x.com", gotEmail)
	})

	t.Run("email collision goes back to the edit form with flash", func(t *testing.T) {
		guestbook := &MockGuestbookService{
			UpdateFunc: func(id domain.EntryId, name, email, message, icon string) (domain.Entry, error) {
				return domain.Entry{}, internal_errors.Conflict("Another entry already uses this email")
			},
		}
		router := newTestRouter(newTestHandler(t, guestbook, &MockAuthService{}))

		rr := postForm(t, router, "/update_msg", form)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/update?id=5", rr.Header().Get("Location"))
		assert.NotEmpty(t, flashValue(t, rr, "flash_error"))
	})
}
