package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobportal-engine/internal/apply"
	"jobportal-engine/internal/session"
)

type APIError struct {
	Error struct {
		Code      string            `json:"code"`
		Message   string            `json:"message"`
		RequestID string            `json:"request_id,omitempty"`
		Fields    apply.FieldErrors `json:"fields,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeError(w, r, status, code, message, nil)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, fields apply.FieldErrors) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	e.Error.Fields = fields
	WriteJSON(w, status, e)
}

// writeSessionError maps store errors onto the envelope. It reports the code
// it wrote so callers can count rejections.
func writeSessionError(w http.ResponseWriter, r *http.Request, err error) string {
	var fe apply.FieldErrors
	switch {
	case errors.As(err, &fe):
		writeError(w, r, http.StatusUnprocessableEntity, "validation_failed", "the application form has errors", fe)
		return "validation_failed"
	case errors.Is(err, session.ErrJobNotFound):
		WriteError(w, r, http.StatusNotFound, "job_not_found", err.Error())
		return "job_not_found"
	case errors.Is(err, session.ErrAlreadyApplied):
		WriteError(w, r, http.StatusConflict, "already_applied", err.Error())
		return "already_applied"
	case errors.Is(err, session.ErrNoJobSelected):
		WriteError(w, r, http.StatusConflict, "no_job_selected", err.Error())
		return "no_job_selected"
	case errors.Is(err, session.ErrInvalidTransition):
		WriteError(w, r, http.StatusConflict, "invalid_transition", err.Error())
		return "invalid_transition"
	default:
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
		return "internal_error"
	}
}

// decodeJSON reads exactly one JSON value and rejects unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return false
	}
	if dec.More() {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: trailing data")
		return false
	}
	return true
}

const maxBodyBytes = 256 << 10
