package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// ParseLevel maps a config log level name to a pterm log level.
// Unknown names fall back to info.
func ParseLevel(name string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "off", "disabled", "none":
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelInfo
	}
}

// New builds the diagnostics logger. A nil writer means stderr.
func New(level string, w io.Writer) *pterm.Logger {
	if w == nil {
		w = os.Stderr
	}
	return pterm.DefaultLogger.
		WithLevel(ParseLevel(level)).
		WithWriter(w)
}

// Discard returns a logger that drops everything; used by tests and by
// callers that construct collaborators without a logger.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
}
