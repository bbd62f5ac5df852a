package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"jobportal-engine/internal/apply"
	"jobportal-engine/internal/catalog"
	"jobportal-engine/internal/config"
	"jobportal-engine/internal/events"
	"jobportal-engine/internal/export"
	"jobportal-engine/internal/httpapi"
	"jobportal-engine/internal/metrics"
	"jobportal-engine/internal/ratelimit"
	"jobportal-engine/internal/scheduler"
	"jobportal-engine/internal/secrets"
	"jobportal-engine/internal/session"
	"jobportal-engine/internal/store"
)

const (
	lockName        = "engine.lock"
	dbName          = "jobportal.db"
	shutdownTimeout = 5 * time.Second
	sweepInterval   = time.Minute
)

func serveCmd(f *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgPath, err := loadConfig(f)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.App.Addr = addr
			}
			return serve(cmd.Context(), cfg, cfgPath)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

func serve(parent context.Context, cfg config.Config, cfgPath string) error {
	cfg, vr := config.NormalizeAndValidate(cfg)
	log := newLogger(os.Stderr, cfg.App.LogLevel)
	slog.SetDefault(log)
	for _, w := range vr.Warnings {
		log.Warn("config", "path", cfgPath, "warning", w)
	}
	if !vr.OK() {
		return fmt.Errorf("invalid config %s: %v", cfgPath, vr.Errors)
	}
	dataDir := cfg.App.DataDir

	lock := flock.New(filepath.Join(dataDir, lockName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock data dir: %w", err)
	}
	if !locked {
		return fmt.Errorf("another engine is already using %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs, err := catalog.Load(inDataDir(dataDir, cfg.Catalog.SeedFile))
	if err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, dbName)
	db, err := store.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if dir := inDataDir(dataDir, cfg.Catalog.AssetsDir); dir == "" {
		log.Info("logo import disabled")
	} else if _, err := os.Stat(dir); err != nil {
		log.Info("logo import skipped", "dir", dir, "err", err)
	} else {
		refs := make([]string, 0, len(jobs))
		for _, j := range jobs {
			refs = append(refs, j.LogoRef)
		}
		n, err := db.ImportLogos(ctx, dir, refs, log)
		if err != nil {
			return err
		}
		log.Info("logos imported", "dir", dir, "count", n)
	}

	hub := events.NewHub(log)
	m := metrics.New()
	validator := apply.NewValidator()

	sess, err := session.New(jobs,
		session.WithLogger(log),
		session.WithValidator(validator),
		session.WithNotifier(session.Notifiers{hub, m}),
	)
	if err != nil {
		return err
	}

	token := cfg.App.ShutdownToken
	if token == "" {
		if token, err = randomToken(32); err != nil {
			return fmt.Errorf("shutdown token: %w", err)
		}
	}

	licenseKey, licenseSource := secrets.ResolveLicenseKey(os.Getenv(config.EnvUnidoc), cfg.Export.UnidocLicenseKey)
	if licenseSource == secrets.SourceConfig {
		log.Warn("pdf license key is stored in config.yml; move it with `engine config set-license`")
	}

	limiter := ratelimit.New(cfg.Limits.SubmitPerSecond, cfg.Limits.SubmitBurst)

	deps := httpapi.Deps{
		Session:   sess,
		Hub:       hub,
		Logos:     db,
		Validator: validator,
		Metrics:   m,
		Limiter:   limiter,
		PDF:       newPDFRenderer(licenseKey, licenseSource, log),
		Config:    cfg,
		Log:       log,
	}
	mux := httpapi.NewMux(deps)
	httpapi.MountShutdown(mux, httpapi.ShutdownHandler{Token: token, Shutdown: cancel})

	ln, err := net.Listen("tcp", cfg.App.Addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           httpapi.Handler(mux, deps),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	// The parent process reads this line to learn the token.
	fmt.Printf("ENGINE_SHUTDOWN_TOKEN=%s\n", token)
	log.Info("engine listening", "addr", "http://"+ln.Addr().String(), "db", dbPath, "jobs", len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		scheduler.Every(gctx, sweepInterval, "limiter-sweep", log, func(context.Context) error {
			log.Debug("rate limiter swept", "clients", limiter.Sweep())
			return nil
		})
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer scancel()
		log.Info("engine shutting down")
		if err := srv.Shutdown(sctx); err != nil {
			return srv.Close()
		}
		return nil
	})
	return g.Wait()
}

// newPDFRenderer returns nil without a license key, which turns PDF export
// off instead of failing every render.
func newPDFRenderer(key, source string, log *slog.Logger) *export.PDFRenderer {
	if key == "" {
		log.Info("pdf export disabled: no license key")
		return nil
	}
	log.Info("pdf export enabled", "license_source", source)
	return export.NewPDFRenderer(key, log)
}
