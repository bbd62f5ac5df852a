package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"jobportal-engine/internal/config"
)

// resolveDataDir picks the flag, then the environment, then the working
// directory.
func resolveDataDir(flag string) string {
	if d := strings.TrimSpace(flag); d != "" {
		return d
	}
	if d := strings.TrimSpace(os.Getenv(config.EnvDataDir)); d != "" {
		return d
	}
	return "."
}

// loadConfig bootstraps config.yml in dataDir and returns it with
// environment and flag overrides applied. The data directory itself always
// comes from resolveDataDir.
func loadConfig(f *rootFlags) (config.Config, string, error) {
	dataDir := resolveDataDir(f.dataDir)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return config.Config{}, "", fmt.Errorf("create data dir: %w", err)
	}

	path, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("config bootstrap failed: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, path, err
	}
	config.OverlayEnv(&cfg, os.Getenv)
	cfg.App.DataDir = dataDir
	if f.logLevel != "" {
		cfg.App.LogLevel = f.logLevel
	}
	return cfg, path, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, ok := config.ParseLevel(level)
	if !ok {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// inDataDir resolves relative paths against the data directory.
func inDataDir(dataDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dataDir, p)
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
