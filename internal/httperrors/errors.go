// Package httperrors provides user-friendly error handling for HTTP requests.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Category is the broad class of a network failure.
type Category int

const (
	Generic Category = iota
	Timeout
	DNS
	ConnectionRefused
	TLS
)

// FormatNetworkError shows troubleshooting hints for a network error that
// happened while doing context against host, and returns the error wrapped.
func FormatNetworkError(err error, context, host string) error {
	if err == nil {
		return nil
	}
	displayErrorMessage(Classify(err), context, host)
	return fmt.Errorf("network error: %w", err)
}

// Classify returns the Category of err.
func Classify(err error) Category {
	switch {
	case isTimeoutError(err):
		return Timeout
	case isDNSError(err):
		return DNS
	case isConnectionRefusedError(err):
		return ConnectionRefused
	case isSSLError(err):
		return TLS
	default:
		return Generic
	}
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

func displayErrorMessage(c Category, context, host string) {
	switch c {
	case Timeout:
		pterm.Printf("⏱️  Connection timeout while %s\n", context)
		pterm.Println()
		pterm.Println("The identity service took too long to respond. This could mean:")
		pterm.Println("  • Slow internet connection")
		pterm.Println("  • The service is under heavy load")
		pterm.Println("  • A firewall is blocking the connection")
	case DNS:
		pterm.Printf("🌐 Cannot resolve server address while %s\n", context)
		pterm.Println()
		pterm.Printf("Unable to look up %s. Please check:\n", host)
		pterm.Println("  • Your internet connection is working")
		pterm.Println("  • The api_base_url setting (or BARO_API_URL) is correct")
	case ConnectionRefused:
		pterm.Printf("🚫 Connection refused while %s\n", context)
		pterm.Println()
		pterm.Printf("%s is not accepting connections. This could mean:\n", host)
		pterm.Println("  • The service is temporarily down")
		pterm.Println("  • Wrong server address or port")
	case TLS:
		pterm.Printf("🔒 Secure connection failed while %s\n", context)
		pterm.Println()
		pterm.Println("Cannot establish a secure HTTPS connection. Try:")
		pterm.Println("  • Check your system date and time")
		pterm.Println("  • Verify network proxy settings")
	default:
		pterm.Printf("❌ Cannot connect to %s while %s\n", host, context)
		pterm.Println()
		pterm.Println("Please check your internet connection and firewall settings.")
	}
	pterm.Println()
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
