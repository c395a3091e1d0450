// Package logging provides utilities for secure logging and error presentation.
// It includes functions for masking sensitive information in log messages,
// formatting errors for user-friendly display, and building the structured
// logger used for diagnostics.
//
// Tokens, passwords and API keys must never reach logs or the terminal in
// clear text; every diagnostic that may contain server or credential data is
// passed through Mask first.
package logging

import (
	"regexp"
	"strings"
)

var (
	reJWT      = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)
	rePassword = regexp.MustCompile(`(?i)(password"?\s*[=:]\s*"?)([^\s;",}]+)`)
	reToken    = regexp.MustCompile(`(?i)(token"?\s*[=:]\s*"?|bearer\s+)([A-Za-z0-9._-]+)`)
	reAPIKey   = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;]+)`)
)

// Mask replaces sensitive values in the input string with "*".
// Bare JWTs are replaced entirely.
func Mask(s string) string {
	out := s
	out = reJWT.ReplaceAllString(out, "***")
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	// Basic env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"BARO_TOKEN", "ACCESS_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
