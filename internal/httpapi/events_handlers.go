package httpapi

import (
	"fmt"
	"net/http"

	"jobportal-engine/internal/events"
	"jobportal-engine/internal/session"
)

// EventSnapshot is sent once per connection, right after subscribing, so a
// client starts from the current session and applies later events by seq.
const EventSnapshot = "session_snapshot"

type EventsHandler struct {
	Hub     *events.Hub
	Session *session.Store
}

func (h EventsHandler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, r, http.StatusInternalServerError, "stream_unsupported", "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(ch)

	reqID := RequestIDFrom(r.Context())
	fmt.Fprintf(w, "event: message\ndata: %s\n\n", events.MakeEvent(reqID, "ping", nil))
	if h.Session != nil {
		// Subscribed first: any transition after this snapshot is also queued
		// on ch, and its seq is higher than snap.Seq.
		snap := h.Session.Snapshot()
		fmt.Fprintf(w, "event: message\ndata: %s\n\n", events.MakeEvent(reqID, EventSnapshot, snap))
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
