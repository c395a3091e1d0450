package backend

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"baro/cli/internal/config"
	"baro/cli/internal/logging"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// HTTP implements API over the identity service's REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://baro.example.com")
	baseURL string
	// endpoints contains the URL paths for the identity endpoints
	endpoints config.Endpoints
	// client is the underlying HTTP client with configured timeout
	client    *http.Client
	userAgent string

	mu sync.RWMutex
	// authToken is attached as a bearer credential when non-empty
	authToken string
}

// StatusError reports a non-2xx response from the identity service.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %d %s", e.Op, e.Code, logging.Mask(e.Body))
}

// newHTTP creates a new HTTP client with the given base URL and endpoints.
func newHTTP(baseURL string, endpoints config.Endpoints, timeout time.Duration, version string) *HTTP {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if version == "" {
		version = "dev"
	}
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		client:    &http.Client{Timeout: timeout},
		userAgent: "baro-cli/" + version,
	}
}

// SetAuthToken configures the default bearer credential for later requests.
func (h *HTTP) SetAuthToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.authToken = token
}

// AuthToken returns the currently attached bearer credential.
func (h *HTTP) AuthToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.authToken
}

// do sets the standard headers and executes req.
// An Authorization header already present on req wins over the attached token.
func (h *HTTP) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if req.Header.Get("Authorization") == "" {
		if t := h.AuthToken(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}
	return h.client.Do(req)
}

// statusError drains up to maxBodyBytes of resp into a StatusError.
func statusError(op string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	return &StatusError{Op: op, Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
}
