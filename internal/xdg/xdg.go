// Package xdg resolves XDG Base Directory paths for baro.
//
// Only non-secret files live here; credentials are kept in the OS keychain.
// When XDG environment variables are unset it falls back to the traditional
// locations under the user's home directory.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under every XDG base directory.
const AppName = "baro"

// ConfigDir returns the XDG config directory for baro.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/baro when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
