package httpapi

import (
	"net/http"

	"jobportal-engine/internal/events"
)

type HealthHandler struct {
	Hub *events.Hub
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"ok": true}
	if h.Hub != nil {
		body["subscribers"] = h.Hub.Subscribers()
	}
	WriteJSON(w, http.StatusOK, body)
}
