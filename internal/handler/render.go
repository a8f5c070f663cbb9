package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/cylin-dev/guestbook/internal/domain"
	"github.com/cylin-dev/guestbook/internal/logger"
	"github.com/cylin-dev/guestbook/internal/middleware"
)

// CommonTemplateData holds fields that are common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	Error     string
	Success   string
	User      *domain.User
	CSRFToken string
}

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

func (h *Handler) initCommonTemplateData(w http.ResponseWriter, r *http.Request) CommonTemplateData {
	return CommonTemplateData{
		Error:     h.popFlash(w, r, flashCookieError),
		Success:   h.popFlash(w, r, flashCookieSuccess),
		User:      middleware.GetUserFromContext(r),
		CSRFToken: middleware.GetCSRFTokenFromContext(r),
	}
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateStatus(w, r, name, data, "", http.StatusOK)
}

// renderTemplateStatus renders buffered so a template failure can still
// produce a clean 500 instead of a half-written page.
func (h *Handler) renderTemplateStatus(w http.ResponseWriter, r *http.Request, name string, data any, errMsg string, statusCode int) {
	tmpl, ok := h.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	common := h.initCommonTemplateData(w, r)
	if errMsg != "" {
		common.Error = errMsg
	}

	wrapped := TemplateData{
		Data:   data,
		Common: common,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	_, _ = buf.WriteTo(w)
}
