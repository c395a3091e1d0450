// Package auth provides the session manager for the CLI.
// It tracks whether the user is authenticated and which role they hold,
// validates a persisted credential on startup, and performs login and logout
// against the identity service while keeping the in-memory session and the
// persisted credential record in agreement.
//
// The session is owned explicitly: construct a Manager with NewManager and
// hand it to callers directly or through a context (WithManager/FromContext).
package auth

// Role values with special meaning.
const (
	// DefaultRole is assumed when a login response carries no role.
	DefaultRole = "learner"
	// InvalidRole is the sentinel the identity service returns for an unusable role.
	InvalidRole = "invalidRole"
)

// GenericLoginError is the only failure text ever exposed through LastError.
const GenericLoginError = "Login failed. Please check your credentials."

// State is a point-in-time view of the session.
// Empty Role and LastError mean absent.
type State struct {
	Authenticated bool
	Role          string
	LastError     string
	Loading       bool
}

// ValidRole reports whether role may back an authenticated session.
func ValidRole(role string) bool {
	return role != "" && role != InvalidRole
}
