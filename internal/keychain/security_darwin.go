//go:build darwin

package keychain

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// securityBackend implements keychain operations using the macOS security command.
// Items are stored as generic passwords with the account set to the service name
// and the service set to the credential key.
type securityBackend struct {
	account string
}

// newSecurityBackend creates a new macOS security command backend.
func newSecurityBackend(serviceName string) (*securityBackend, error) {
	if _, err := exec.LookPath("security"); err != nil {
		return nil, fmt.Errorf("security command not found: %w", err)
	}
	return &securityBackend{account: serviceName}, nil
}

// Set stores a key-value pair in macOS keychain.
func (s *securityBackend) Set(key, value string) error {
	// -U updates in place when the item already exists
	_, err := s.run("add-generic-password", "-a", s.account, "-s", key, "-w", value, "-U")
	if err != nil {
		return fmt.Errorf("failed to store '%s' in keychain: %w", key, err)
	}
	return nil
}

// Get retrieves a value from macOS keychain.
func (s *securityBackend) Get(key string) (string, error) {
	out, err := s.run("find-generic-password", "-a", s.account, "-s", key, "-w")
	if err != nil {
		if isNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to retrieve from keychain: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Delete removes a key from macOS keychain. Missing keys are ignored.
func (s *securityBackend) Delete(key string) error {
	if _, err := s.run("delete-generic-password", "-a", s.account, "-s", key); err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete from keychain: %w", err)
	}
	return nil
}

func (s *securityBackend) run(args ...string) (string, error) {
	cmd := exec.Command("security", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w", strings.TrimSpace(stderr.String()), err)
	}
	return stdout.String(), nil
}

func isNotFound(err error) bool {
	return strings.Contains(err.Error(), "could not be found")
}
