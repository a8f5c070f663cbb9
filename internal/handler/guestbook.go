package handler

import (
	"html/template"
	"net/http"

	"github.com/cylin-dev/guestbook/internal/domain"
	"github.com/cylin-dev/guestbook/internal/logger"
	"github.com/cylin-dev/guestbook/internal/utils"
)

type entriesPageData struct {
	Entries []domain.Entry
}

type updatePageData struct {
	Entry domain.Entry
}

// IndexGetHandler renders the public listing page.
func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.guestbook.List()
	if err != nil {
		logger.Log.Error("listing entries", "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.renderTemplate(w, r, "index.html", entriesPageData{Entries: entries})
}

// AddMessageHandler handles visitor submissions. Failures are surfaced back
// on the index page instead of silently dropped.
func (h *Handler) AddMessageHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/"

	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, targetURL, flashCookieError, "Invalid form data.")
		return
	}

	_, err := h.guestbook.Create(
		r.FormValue("guestname"),
		r.FormValue("email"),
		r.FormValue("message"),
		r.FormValue("icon"),
	)
	if err != nil {
		logger.Log.Error("creating entry", "error", err)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}

// ListGetHandler renders the admin listing with edit/delete affordances.
func (h *Handler) ListGetHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.guestbook.List()
	if err != nil {
		logger.Log.Error("listing entries", "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.renderTemplate(w, r, "list.html", entriesPageData{Entries: entries})
}

// DeleteHandler removes an entry. The literal "ok!" body is relied on by
// the list page script.
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r.FormValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.guestbook.Delete(id); err != nil {
		logger.Log.Error("deleting entry", "id", id, "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.Write([]byte("ok!"))
}

// UpdateGetHandler renders the edit form pre-filled with the entry.
func (h *Handler) UpdateGetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.guestbook.Get(id)
	if err != nil {
		logger.Log.Error("fetching entry", "id", id, "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.renderTemplate(w, r, "update.html", updatePageData{Entry: entry})
}

// UpdateMessageHandler replaces all mutable fields of an entry, then sends
// the admin back to the listing.
func (h *Handler) UpdateMessageHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/list", flashCookieError, "Invalid form data.")
		return
	}

	id, err := parseIdParam(r.FormValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = h.guestbook.Update(
		id,
		r.FormValue("guestname"),
		r.FormValue("email"),
		r.FormValue("message"),
		r.FormValue("icon"),
	)
	if err != nil {
		logger.Log.Error("updating entry", "id", id, "error", err)
		// back to the edit form so the admin can correct and retry
		h.redirectWithFlash(w, r, "/update?id="+r.FormValue("id"), flashCookieError, template.HTMLEscapeString(err.Error()))
		return
	}

	http.Redirect(w, r, "/list", http.StatusSeeOther)
}
