// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; secrets go to the OS keychain.
//
// Values are layered: built-in defaults, then config.json, then an optional
// .env file in the working directory, then BARO_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"baro/cli/internal/xdg"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	APIBaseURL      string    `json:"api_base_url" env:"BARO_API_URL"`
	LogLevel        string    `json:"log_level" env:"BARO_LOG_LEVEL"`
	HTTPTimeout     int       `json:"http_timeout" env:"BARO_HTTP_TIMEOUT"` // seconds
	KeychainService string    `json:"keychain_service" env:"BARO_KEYCHAIN_SERVICE"`
	Endpoints       Endpoints `json:"endpoints"`
}

// Endpoints contains REST API endpoint paths of the identity service.
type Endpoints struct {
	Login       string `json:"login"`        // e.g., "/login"
	VerifyToken string `json:"verify_token"` // e.g., "/api/verify-token"
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		APIBaseURL:      "http://localhost:8080",
		LogLevel:        "info",
		HTTPTimeout:     10,
		KeychainService: "baro",
		Endpoints: Endpoints{
			Login:       "/login",
			VerifyToken: "/api/verify-token",
		},
	}
}

// Timeout returns the HTTP timeout as a duration, falling back to the default.
func (c Config) Timeout() time.Duration {
	if c.HTTPTimeout <= 0 {
		return time.Duration(Defaults().HTTPTimeout) * time.Second
	}
	return time.Duration(c.HTTPTimeout) * time.Second
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
// Environment variables (and a .env file, when present) override file values.
func Load() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		return c, err
	}

	// A missing .env is the common case, not an error.
	_ = godotenv.Load()
	if err := env.Parse(&c); err != nil {
		return c, err
	}
	fillEmpty(&c)
	return c, nil
}

// LoadFile reads only defaults and config.json, without the environment
// overlay. Use it before Save so environment values are not persisted.
func LoadFile() (Config, error) {
	c := Defaults()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, err
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, err
		}
	}
	fillEmpty(&c)
	return c, nil
}

// Keys lists the setting names accepted by Set, in display order.
var Keys = []string{"api_base_url", "log_level", "http_timeout", "keychain_service", "endpoints.login", "endpoints.verify_token"}

// Get returns the value of a setting by name.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "api_base_url":
		return c.APIBaseURL, nil
	case "log_level":
		return c.LogLevel, nil
	case "http_timeout":
		return strconv.Itoa(c.HTTPTimeout), nil
	case "keychain_service":
		return c.KeychainService, nil
	case "endpoints.login":
		return c.Endpoints.Login, nil
	case "endpoints.verify_token":
		return c.Endpoints.VerifyToken, nil
	}
	return "", fmt.Errorf("unknown setting %q", key)
}

// Set validates value and assigns it to the named setting.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "api_base_url":
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("api_base_url must be an http(s) URL, got %q", value)
		}
		c.APIBaseURL = value
	case "log_level":
		switch strings.ToLower(value) {
		case "trace", "debug", "info", "warn", "warning", "error":
			c.LogLevel = strings.ToLower(value)
		default:
			return fmt.Errorf("unknown log level %q", value)
		}
	case "http_timeout":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("http_timeout must be a positive number of seconds, got %q", value)
		}
		c.HTTPTimeout = n
	case "keychain_service":
		if value == "" {
			return errors.New("keychain_service must not be empty")
		}
		c.KeychainService = value
	case "endpoints.login", "endpoints.verify_token":
		if !strings.HasPrefix(value, "/") {
			return fmt.Errorf("%s must start with '/', got %q", key, value)
		}
		if key == "endpoints.login" {
			c.Endpoints.Login = value
		} else {
			c.Endpoints.VerifyToken = value
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// fillEmpty restores defaults for fields a partial config file left blank.
func fillEmpty(c *Config) {
	d := Defaults()
	if c.APIBaseURL == "" {
		c.APIBaseURL = d.APIBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.KeychainService == "" {
		c.KeychainService = d.KeychainService
	}
	if c.Endpoints.Login == "" {
		c.Endpoints.Login = d.Endpoints.Login
	}
	if c.Endpoints.VerifyToken == "" {
		c.Endpoints.VerifyToken = d.Endpoints.VerifyToken
	}
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
