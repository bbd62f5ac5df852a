package httpapi

import (
	"bytes"
	"io"
	"net/http"

	"jobportal-engine/internal/apply"
	"jobportal-engine/internal/export"
	"jobportal-engine/internal/metrics"
	"jobportal-engine/internal/ratelimit"
	"jobportal-engine/internal/session"
)

type SessionHandler struct {
	Session *session.Store
	Metrics *metrics.Metrics
	Limiter *ratelimit.ClientLimiter
	PDF     *export.PDFRenderer
}

type selectReq struct {
	ID int `json:"id"`
}

func (h SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Session.Snapshot())
}

func (h SessionHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req selectReq
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID <= 0 {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	if _, err := h.Session.SelectJob(req.ID); err != nil {
		writeSessionError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, h.Session.Snapshot())
}

func (h SessionHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if h.Limiter != nil && !h.Limiter.AllowRequest(r) {
		h.reject("rate_limited")
		w.Header().Set("Retry-After", "1")
		WriteError(w, r, http.StatusTooManyRequests, "rate_limited", "too many submissions, slow down")
		return
	}

	var f apply.Fields
	if !decodeJSON(w, r, &f) {
		h.reject("invalid_json")
		return
	}
	if _, err := h.Session.SubmitApplication(f); err != nil {
		h.reject(writeSessionError(w, r, err))
		return
	}
	WriteJSON(w, http.StatusOK, h.Session.Snapshot())
}

func (h SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.Session.Close()
	WriteJSON(w, http.StatusOK, h.Session.Snapshot())
}

func (h SessionHandler) reject(reason string) {
	if h.Metrics != nil {
		h.Metrics.Rejected(reason)
	}
}

// summary writes the "nothing to show" error when there is no summary yet.
func (h SessionHandler) summary(w http.ResponseWriter, r *http.Request) (session.Summary, bool) {
	sum, ok := h.Session.Summary()
	if !ok {
		WriteError(w, r, http.StatusNotFound, "nothing_to_show", "nothing to show")
	}
	return sum, ok
}

func (h SessionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, ok := h.summary(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, sum)
}

func (h SessionHandler) SummaryHTML(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "html", "text/html; charset=utf-8", "", export.WriteHTML)
}

func (h SessionHandler) SummaryText(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "text", "text/plain; charset=utf-8", "", export.WriteText)
}

func (h SessionHandler) SummaryPDF(w http.ResponseWriter, r *http.Request) {
	var write func(io.Writer, export.Document) error
	if h.PDF != nil {
		write = h.PDF.Write
	}
	h.render(w, r, "pdf", "application/pdf", export.PDFFilename, write)
}

// render buffers the export so a failed render still gets a JSON error. A
// nil write means the format is not configured; that is only reported once
// there is a summary to export.
func (h SessionHandler) render(w http.ResponseWriter, r *http.Request, format, contentType, filename string, write func(w io.Writer, doc export.Document) error) {
	sum, ok := h.summary(w, r)
	if !ok {
		return
	}
	if write == nil {
		WriteError(w, r, http.StatusNotImplemented, format+"_disabled", format+" export is not configured")
		return
	}

	var buf bytes.Buffer
	err := write(&buf, export.Build(sum))
	if h.Metrics != nil {
		h.Metrics.Exported(format, err)
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "export_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	if filename != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	_, _ = w.Write(buf.Bytes())
}
