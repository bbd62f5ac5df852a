package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const FileName = "config.yml"

// EnsureUserConfig returns the path of the config file in dataDir, writing
// the defaults there first if it does not exist yet.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, FileName)

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config: %w", err)
	}

	cfg := Default()
	cfg.App.DataDir = dataDir
	if err := SaveAtomic(userPath, cfg); err != nil {
		return "", fmt.Errorf("write default config: %w", err)
	}
	return userPath, nil
}
