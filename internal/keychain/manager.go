// Package keychain provides thread-safe credential storage for baro.
// It is the Credential Store of the session: a synchronous key/value store of
// string secrets (the auth token, the user's role and the user id) backed by
// the OS keychain/credential store.
//
// On macOS the native `security` command is preferred; everywhere else the
// 99designs/keyring library selects a platform backend. Tests use an
// in-memory keyring via NewWithKeyring.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("key not found")

// Keys of the persisted credential record.
const (
	KeyAuthToken = "authToken"
	KeyUserRole  = "userRole"
	KeyUserID    = "userId"
)

// CredentialKeys lists every key owned by the session, in write order.
var CredentialKeys = []string{KeyAuthToken, KeyUserRole, KeyUserID}

// Manager provides thread-safe operations on the OS keychain.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend keychainBackend
}

// keychainBackend defines the interface for native keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// NewManager creates a keychain manager scoped to serviceName.
func NewManager(serviceName string) (*Manager, error) {
	// Try native security backend first on macOS
	if runtime.GOOS == "darwin" {
		backend, err := newSecurityBackend(serviceName)
		if err == nil {
			return &Manager{backend: backend}, nil
		}
		// Fall through to keyring library if security command fails
	}

	ring, err := openRing(serviceName)
	if err != nil {
		return nil, err
	}
	return NewWithKeyring(ring), nil
}

// NewWithKeyring wraps an already opened keyring.
func NewWithKeyring(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// openRing opens the OS keyring using native platform backends only.
// There is deliberately no encrypted-file fallback.
func openRing(serviceName string) (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	case "linux":
		allowedBackends = []keyring.BackendType{keyring.SecretServiceBackend, keyring.KWalletBackend, keyring.PassBackend}
	default:
		return nil, errors.New("secure storage not supported on this OS")
	}

	cfg := keyring.Config{
		ServiceName:     serviceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      serviceName,
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = serviceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if runtime.GOOS == "darwin" {
			return nil, errors.New("macOS Keychain unavailable. On macOS 26.0+, install 'pass': brew install pass gnupg && gpg --generate-key && pass init <gpg-key-id>")
		}
		return nil, err
	}
	return ring, nil
}

// Get returns the value stored under key, or ErrNotFound.
// An empty stored value is reported as absent.
func (m *Manager) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		v, err := m.backend.Get(key)
		if err != nil {
			return "", err
		}
		if v == "" {
			return "", ErrNotFound
		}
		return v, nil
	}

	it, err := m.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if len(it.Data) == 0 {
		return "", ErrNotFound
	}
	return string(it.Data), nil
}

// Set stores value under key, replacing any previous value.
func (m *Manager) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Set(key, value)
	}
	return m.ring.Set(keyring.Item{Key: key, Data: []byte(value)})
}

// Remove deletes key. Removing an absent key is not an error.
func (m *Manager) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remove(key)
}

func (m *Manager) remove(key string) error {
	if m.backend != nil {
		return m.backend.Delete(key)
	}
	if err := m.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

// ClearAuth removes every credential key, attempting all of them even when
// one fails. The first error is returned.
func (m *Manager) ClearAuth() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var first error
	for _, k := range CredentialKeys {
		if err := m.remove(k); err != nil && first == nil {
			first = err
		}
	}
	return first
}
