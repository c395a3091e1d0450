package cmd

import (
	"context"
	"os"

	"baro/cli/internal/auth"
	"baro/cli/internal/backend"
	"baro/cli/internal/claims"
	"baro/cli/internal/config"
	"baro/cli/internal/keychain"
	"baro/cli/internal/logging"
)

// openSession wires the session manager from configuration, flags and the
// OS keychain. The manager is returned still loading; see initializeSession.
func openSession() (*auth.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger := logging.New(level, os.Stderr)

	store, err := keychain.NewManager(cfg.KeychainService)
	if err != nil {
		return nil, err
	}
	be := backend.New(cfg.APIBaseURL, cfg.Endpoints, cfg.Timeout(), Version)
	logger.Debug("session configured", logger.Args("api", cfg.APIBaseURL, "keychain", cfg.KeychainService))

	return auth.NewManager(store, be, claims.NewDecoder(), auth.WithLogger(logger)), nil
}

// initializeSession verifies any stored credential while showing a spinner.
func initializeSession(ctx context.Context, mgr *auth.Manager) {
	stop := startInlineSpinner(os.Stderr, "Checking session", spinnerFrames, spinnerInterval)
	defer stop()
	mgr.Initialize(ctx)
}
