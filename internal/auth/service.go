package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/pterm/pterm"

	"baro/cli/internal/backend"
	"baro/cli/internal/claims"
	apperrors "baro/cli/internal/errors"
	"baro/cli/internal/keychain"
	"baro/cli/internal/logging"
)

// Decoder turns a token into its claims.
type Decoder interface {
	Decode(token string) (map[string]any, error)
}

// Manager owns the session state and mediates every read and write of the
// persisted credential record.
//
// Initialize, Login and Logout are serialized against each other. Accessors
// only take a read lock on the state and never wait for network calls.
type Manager struct {
	store   Store
	be      backend.API
	decoder Decoder
	logger  *pterm.Logger

	// opMu serializes state transitions.
	opMu     sync.Mutex
	initOnce sync.Once

	mu    sync.RWMutex
	state State
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the diagnostics logger.
func WithLogger(l *pterm.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager constructs a Manager in the Initializing state.
// Call Initialize to validate any persisted credential.
func NewManager(store Store, be backend.API, decoder Decoder, opts ...Option) *Manager {
	if store == nil || be == nil || decoder == nil {
		panic(apperrors.New(apperrors.UsageError, "auth.NewManager requires a store, an identity client and a decoder"))
	}
	m := &Manager{
		store:   store,
		be:      be,
		decoder: decoder,
		logger:  logging.Discard(),
		state:   State{Loading: true},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// active panics with a UsageError when m was not built by NewManager.
func (m *Manager) active() {
	if m == nil || m.store == nil {
		panic(apperrors.New(apperrors.UsageError, "session accessed outside an active manager"))
	}
}

// Initialize validates the persisted token, if any, and ends the loading
// phase. It runs at most once per Manager; later calls return immediately.
// Verification failures are absorbed: they leave the session logged out.
func (m *Manager) Initialize(ctx context.Context) {
	m.active()
	m.initOnce.Do(func() { m.initialize(ctx) })
}

func (m *Manager) initialize(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	defer m.finishLoading()

	token, ok := m.loadToken()
	if !ok {
		m.logger.Debug("no stored session")
		// role and user id never outlive the token
		m.clearCredentials()
		return
	}

	role, err := m.verify(ctx, token)
	if err != nil {
		m.logger.Debug("stored session rejected", m.logger.Args("reason", logging.Mask(err.Error())))
		m.clearCredentials()
		m.be.SetAuthToken("")
		m.update(func(s *State) {
			s.Authenticated = false
			s.Role = ""
		})
		return
	}

	if err := m.store.Set(keychain.KeyUserRole, role); err != nil {
		m.logger.Warn("persisting verified role failed", m.logger.Args("error", err.Error()))
	}
	m.update(func(s *State) {
		s.Authenticated = true
		s.Role = role
		s.LastError = ""
	})
	m.logger.Debug("stored session verified", m.logger.Args("role", role))
}

// verify asks the identity service about token and returns the holder's role.
// Every failure is a VerificationFailed error.
func (m *Manager) verify(ctx context.Context, token string) (string, error) {
	res, err := m.be.VerifyToken(ctx, token)
	if err != nil {
		return "", apperrors.Wrap(apperrors.VerificationFailed, "verify-token request failed", err)
	}
	if res.Status != backend.SuccessStatus {
		return "", apperrors.New(apperrors.VerificationFailed, fmt.Sprintf("unexpected status %q", res.Status))
	}
	if !ValidRole(res.Role) {
		return "", apperrors.New(apperrors.VerificationFailed, fmt.Sprintf("invalid role %q", res.Role))
	}
	return res.Role, nil
}

func (m *Manager) finishLoading() {
	m.update(func(s *State) { s.Loading = false })
}

// Login authenticates with email and password and returns the resolved role.
//
// Failures are returned as *errors.E of kind NoToken or LoginFailed and set
// LastError to GenericLoginError. A failed login leaves the previous session
// and the persisted record untouched, except when persisting the new record
// itself fails, in which case the session ends logged out.
func (m *Manager) Login(ctx context.Context, email, password string) (string, error) {
	m.active()
	m.opMu.Lock()
	defer m.opMu.Unlock()

	res, err := m.be.Login(ctx, email, password)
	if err != nil {
		return "", m.loginFailed(apperrors.Wrap(apperrors.LoginFailed, "login request failed", err))
	}
	if res.Token == "" {
		return "", m.loginFailed(apperrors.New(apperrors.NoToken, "no token in response"))
	}

	role := res.Role
	if role == "" {
		role = DefaultRole
	}
	if !ValidRole(role) {
		return "", m.loginFailed(apperrors.New(apperrors.LoginFailed, fmt.Sprintf("invalid role %q", role)))
	}

	c, err := m.decoder.Decode(res.Token)
	if err != nil {
		return "", m.loginFailed(apperrors.Wrap(apperrors.LoginFailed, "decode token", err))
	}
	userID, err := claims.UserID(c)
	if err != nil {
		return "", m.loginFailed(apperrors.Wrap(apperrors.LoginFailed, "decode token", err))
	}

	if err := m.saveCredentials(Credentials{Token: res.Token, Role: role, UserID: userID}); err != nil {
		m.be.SetAuthToken("")
		m.update(func(s *State) {
			s.Authenticated = false
			s.Role = ""
		})
		return "", m.loginFailed(apperrors.Wrap(apperrors.LoginFailed, "persist credentials", err))
	}

	m.be.SetAuthToken(res.Token)
	m.update(func(s *State) {
		s.Authenticated = true
		s.Role = role
		s.LastError = ""
	})
	m.logger.Debug("login succeeded", m.logger.Args("role", role, "user_id", userID))
	return role, nil
}

func (m *Manager) loginFailed(err *apperrors.E) error {
	m.logger.Debug("login failed", m.logger.Args("error", logging.Mask(err.Error())))
	m.update(func(s *State) { s.LastError = GenericLoginError })
	return err
}

// Logout removes the persisted credential record and resets the session.
// It makes no network call and cannot fail.
func (m *Manager) Logout() {
	m.active()
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.clearCredentials()
	m.be.SetAuthToken("")
	m.update(func(s *State) {
		s.Authenticated = false
		s.Role = ""
		s.LastError = ""
	})
	m.logger.Debug("logged out")
}

func (m *Manager) update(fn func(*State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.state)
}

// Snapshot returns the whole session state at once.
func (m *Manager) Snapshot() State {
	m.active()
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Authenticated reports whether a validated credential is held.
func (m *Manager) Authenticated() bool { return m.Snapshot().Authenticated }

// Role returns the session role, or "" when logged out.
func (m *Manager) Role() string { return m.Snapshot().Role }

// LastError returns the last user-facing failure, or "".
func (m *Manager) LastError() string { return m.Snapshot().LastError }

// Loading reports whether the initial verification is still pending.
func (m *Manager) Loading() bool { return m.Snapshot().Loading }
