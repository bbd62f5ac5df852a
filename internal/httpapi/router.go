package httpapi

import (
	"net/http"

	"jobportal-engine/internal/apply"
)

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{Hub: d.Hub}.Health,
	}))

	// Catalog
	jh := JobsHandler{Session: d.Session}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/{id}", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Get,
	}))
	mux.HandleFunc("/skills", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Skills,
	}))

	// Session
	sh := SessionHandler{
		Session: d.Session,
		Metrics: d.Metrics,
		Limiter: d.Limiter,
		PDF:     d.PDF,
	}
	mux.HandleFunc("/session", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Get,
	}))
	mux.HandleFunc("/session/select", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Select,
	}))
	mux.HandleFunc("/session/apply", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Apply,
	}))
	mux.HandleFunc("/session/close", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Close,
	}))
	mux.HandleFunc("/session/summary", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Summary,
	}))
	mux.HandleFunc("/session/summary.html", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.SummaryHTML,
	}))
	mux.HandleFunc("/session/summary.pdf", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.SummaryPDF,
	}))
	mux.HandleFunc("/session/summary.txt", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.SummaryText,
	}))

	// Applications
	v := d.Validator
	if v == nil {
		v = apply.NewValidator()
	}
	ah := ApplicationsHandler{Session: d.Session, Validator: v}
	mux.HandleFunc("/applications/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Validate,
	}))
	mux.HandleFunc("/applications/{jobID}", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.Get,
	}))

	// Config
	ch := ConfigHandler{Config: d.Config}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// SSE events
	if d.Hub != nil {
		eh := EventsHandler{Hub: d.Hub, Session: d.Session}
		mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
			http.MethodGet: eh.ServeSSE,
		}))
	}

	// Logos
	lh := LogosHandler{Logos: d.Logos}
	mux.HandleFunc("/logo/{ref}", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.Get,
	}))

	if d.Metrics != nil {
		mux.Handle("/metrics", d.Metrics.Handler())
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, "not_found", "not found")
	})

	return mux
}

// Handler wraps h in the standard middleware chain.
func Handler(h http.Handler, d Deps) http.Handler {
	log := d.logger()
	return Chain(h,
		RequestID,
		Recover(log),
		AccessLog(log),
		Instrument(d.Metrics),
		Cors,
	)
}
