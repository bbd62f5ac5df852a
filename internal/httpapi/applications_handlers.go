package httpapi

import (
	"net/http"

	"jobportal-engine/internal/apply"
	"jobportal-engine/internal/session"
)

type ApplicationsHandler struct {
	Session   *session.Store
	Validator *apply.Validator
}

type validateReq struct {
	Fields  apply.Fields `json:"fields"`
	Touched []string     `json:"touched"`
}

type validateResp struct {
	Valid  bool              `json:"valid"`
	Errors apply.FieldErrors `json:"errors"`
}

// Get returns the form submitted for a job during this session.
func (h ApplicationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "jobID")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}
	if _, err := h.Session.Job(id); err != nil {
		writeSessionError(w, r, err)
		return
	}
	fd, ok := h.Session.Application(id)
	if !ok {
		WriteError(w, r, http.StatusNotFound, "not_applied", "no application for this job")
		return
	}
	WriteJSON(w, http.StatusOK, fd)
}

// Validate checks a form in progress. Errors are limited to the touched
// fields; valid reports whether the whole form would be accepted.
func (h ApplicationsHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if !decodeJSON(w, r, &req) {
		return
	}
	_, err := h.Validator.Validate(req.Fields)
	WriteJSON(w, http.StatusOK, validateResp{
		Valid:  err == nil,
		Errors: h.Validator.ValidateTouched(req.Fields, req.Touched),
	})
}
