package httpapi

import (
	"errors"
	"net/http"

	"jobportal-engine/internal/catalog"
	"jobportal-engine/internal/session"
)

type JobsHandler struct {
	Session *session.Store
}

// List returns the postings whose title contains ?q=, or all of them.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs := h.Session.Search(r.URL.Query().Get("q"))
	WriteJSON(w, http.StatusOK, jobs)
}

func (h JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	job, err := h.Session.Job(id)
	if errors.Is(err, session.ErrJobNotFound) {
		WriteError(w, r, http.StatusNotFound, "job_not_found", err.Error())
		return
	}
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

func (h JobsHandler) Skills(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, catalog.Skills())
}
