package auth

import (
	"errors"

	"baro/cli/internal/keychain"
)

// Store is the credential store the session persists through.
// Get reports a missing key with any error (typically keychain.ErrNotFound).
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Credentials is the persisted credential record.
type Credentials struct {
	Token  string
	Role   string
	UserID string
}

// loadToken returns the persisted token, if any.
func (m *Manager) loadToken() (string, bool) {
	token, err := m.store.Get(keychain.KeyAuthToken)
	if err != nil {
		if !errors.Is(err, keychain.ErrNotFound) {
			m.logger.Warn("reading stored token failed", m.logger.Args("error", err.Error()))
		}
		return "", false
	}
	return token, token != ""
}

// saveCredentials writes the whole record. On a partial write the record is
// removed again so no half-written credential survives.
func (m *Manager) saveCredentials(c Credentials) error {
	values := map[string]string{
		keychain.KeyAuthToken: c.Token,
		keychain.KeyUserRole:  c.Role,
		keychain.KeyUserID:    c.UserID,
	}
	for _, k := range keychain.CredentialKeys {
		if err := m.store.Set(k, values[k]); err != nil {
			m.clearCredentials()
			return err
		}
	}
	return nil
}

// authClearer is implemented by stores that drop the whole record in one call.
type authClearer interface {
	ClearAuth() error
}

// clearCredentials removes every credential key. Failures are logged; the
// remaining keys are still attempted.
func (m *Manager) clearCredentials() {
	if c, ok := m.store.(authClearer); ok {
		if err := c.ClearAuth(); err != nil {
			m.logger.Warn("clearing stored credentials failed", m.logger.Args("error", err.Error()))
		}
		return
	}
	for _, k := range keychain.CredentialKeys {
		if err := m.store.Remove(k); err != nil {
			m.logger.Warn("removing stored credential failed", m.logger.Args("key", k, "error", err.Error()))
		}
	}
}
