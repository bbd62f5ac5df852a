// Package secrets keeps the engine's credentials in the OS keychain instead
// of config.yml.
package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups the engine's secrets in the OS keychain.
	KeyringService = "jobportal"

	licenseAccount = "jobportal:unidoc:license"
)

// Where a resolved license key came from.
const (
	SourceKeyring = "keyring"
	SourceEnv     = "env"
	SourceConfig  = "config"
	SourceNone    = ""
)

func GetLicenseKey() (string, error) {
	key, err := keyring.Get(KeyringService, licenseAccount)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(key) == "" {
		return "", keyring.ErrNotFound
	}
	return key, nil
}

func SetLicenseKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("license key is empty")
	}
	return keyring.Set(KeyringService, licenseAccount, key)
}

// DeleteLicenseKey removes the stored key. Deleting a key that is not there
// is not an error.
func DeleteLicenseKey() error {
	err := keyring.Delete(KeyringService, licenseAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// ResolveLicenseKey looks in the keychain first, then the environment value,
// then the value from config.yml. An unreachable keychain counts as empty.
func ResolveLicenseKey(fromEnv, fromConfig string) (key, source string) {
	if k, err := GetLicenseKey(); err == nil {
		return k, SourceKeyring
	}
	if k := strings.TrimSpace(fromEnv); k != "" {
		return k, SourceEnv
	}
	if k := strings.TrimSpace(fromConfig); k != "" {
		return k, SourceConfig
	}
	return "", SourceNone
}
