package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"jobportal-engine/internal/store"
)

type LogosHandler struct {
	Logos LogoSource
}

func (h LogosHandler) Get(w http.ResponseWriter, r *http.Request) {
	ref := strings.TrimSpace(r.PathValue("ref"))
	if ref == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_ref", "missing logo ref")
		return
	}
	if h.Logos == nil {
		WriteError(w, r, http.StatusNotFound, "logo_not_found", "logo not found")
		return
	}

	logo, err := h.Logos.GetLogo(r.Context(), ref)
	if errors.Is(err, store.ErrLogoNotFound) {
		WriteError(w, r, http.StatusNotFound, "logo_not_found", "logo not found")
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	w.Header().Set("Content-Type", logo.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=604800")
	_, _ = w.Write(logo.Bytes)
}
