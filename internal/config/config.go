package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Addr          string `yaml:"addr" json:"addr"`
		DataDir       string `yaml:"data_dir" json:"data_dir"`
		LogLevel      string `yaml:"log_level" json:"log_level"`
		ShutdownToken string `yaml:"shutdown_token,omitempty" json:"-"`
	} `yaml:"app" json:"app"`

	Catalog struct {
		// SeedFile replaces the built-in postings when set.
		SeedFile  string `yaml:"seed_file" json:"seed_file"`
		AssetsDir string `yaml:"assets_dir" json:"assets_dir"`
	} `yaml:"catalog" json:"catalog"`

	Limits struct {
		SubmitPerSecond float64 `yaml:"submit_per_second" json:"submit_per_second"`
		SubmitBurst     int     `yaml:"submit_burst" json:"submit_burst"`
	} `yaml:"limits" json:"limits"`

	Export struct {
		UnidocLicenseKey string `yaml:"unidoc_license_key,omitempty" json:"-"`
	} `yaml:"export" json:"export"`
}

// Default returns the configuration written on first run.
func Default() Config {
	var c Config
	c.App.Addr = "127.0.0.1:38471"
	c.App.DataDir = "."
	c.App.LogLevel = "info"
	c.Catalog.AssetsDir = "assets"
	c.Limits.SubmitPerSecond = 1
	c.Limits.SubmitBurst = 5
	return c
}

// Load reads a YAML config on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
