package config

import (
	"strings"
)

// Environment variables that override the config file.
const (
	EnvDataDir  = "JOBPORTAL_DATA_DIR"
	EnvAddr     = "JOBPORTAL_ADDR"
	EnvLogLevel = "JOBPORTAL_LOG_LEVEL"
	EnvSeedFile = "JOBPORTAL_SEED_FILE"
	EnvUnidoc   = "UNIDOC_LICENSE_API_KEY"
)

// OverlayEnv applies non-empty environment overrides to cfg.
func OverlayEnv(cfg *Config, getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&cfg.App.DataDir, EnvDataDir)
	set(&cfg.App.Addr, EnvAddr)
	set(&cfg.App.LogLevel, EnvLogLevel)
	set(&cfg.Catalog.SeedFile, EnvSeedFile)
	set(&cfg.Export.UnidocLicenseKey, EnvUnidoc)
}
