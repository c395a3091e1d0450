package backend

import (
	"time"

	"baro/cli/internal/config"
)

// New creates a backend API implementation for the configured identity service.
func New(baseURL string, endpoints config.Endpoints, timeout time.Duration, version string) API {
	return newHTTP(baseURL, endpoints, timeout, version)
}
