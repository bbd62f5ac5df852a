package httpapi

import (
	"net/http"

	"jobportal-engine/internal/config"
)

// ConfigHandler shows the effective configuration. Secrets are never
// serialized.
type ConfigHandler struct {
	Config config.Config
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Config)
}

func (h ConfigHandler) Validate(w http.ResponseWriter, r *http.Request) {
	_, vr := config.NormalizeAndValidate(h.Config)
	WriteJSON(w, http.StatusOK, vr)
}
