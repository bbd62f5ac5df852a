package httpapi

import (
	"context"
	"log/slog"

	"jobportal-engine/internal/apply"
	"jobportal-engine/internal/config"
	"jobportal-engine/internal/events"
	"jobportal-engine/internal/export"
	"jobportal-engine/internal/metrics"
	"jobportal-engine/internal/ratelimit"
	"jobportal-engine/internal/session"
	"jobportal-engine/internal/store"
)

// LogoSource serves logo bytes by reference.
type LogoSource interface {
	GetLogo(ctx context.Context, ref string) (store.Logo, error)
}

type Deps struct {
	Session *session.Store
	Hub     *events.Hub
	Logos   LogoSource

	// Optional; nil disables the feature.
	Validator *apply.Validator
	Metrics   *metrics.Metrics
	Limiter   *ratelimit.ClientLimiter
	PDF       *export.PDFRenderer

	// Config is the effective configuration shown at GET /config.
	Config config.Config

	Log *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Log != nil {
		return d.Log
	}
	return slog.Default()
}
