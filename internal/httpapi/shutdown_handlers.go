package httpapi

import (
	"crypto/subtle"
	"net"
	"net/http"
)

// ShutdownHandler stops the engine on request from a local caller holding
// the per-process token.
type ShutdownHandler struct {
	Token    string
	Shutdown func()
}

func (h ShutdownHandler) Post(w http.ResponseWriter, r *http.Request) {
	if !isLoopback(r.RemoteAddr) {
		WriteError(w, r, http.StatusForbidden, "forbidden", "forbidden")
		return
	}

	got := r.Header.Get("X-Shutdown-Token")
	if h.Token == "" || got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.Token)) != 1 {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
	if h.Shutdown != nil {
		go h.Shutdown()
	}
}

func isLoopback(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// MountShutdown attaches POST /shutdown to mux.
func MountShutdown(mux *http.ServeMux, h ShutdownHandler) {
	mux.HandleFunc("/shutdown", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: h.Post,
	}))
}
