// Package backend provides the client for the remote identity service.
// It defines the API contract used by the session manager (login and token
// verification) together with an HTTP implementation. Implementations may
// call real HTTP endpoints or provide fakes for tests.
package backend

import "context"

// SuccessStatus is the status marker a trusted verify-token response carries.
const SuccessStatus = "success"

// LoginResult is the payload of a login response.
// Token is empty when the server answered without one.
type LoginResult struct {
	Token string
	Role  string
}

// VerifyResult is the payload of a verify-token response.
type VerifyResult struct {
	Status string
	Role   string
}

// API defines identity service operations the CLI depends on.
type API interface {
	// Login exchanges email and password for a token and, optionally, a role.
	Login(ctx context.Context, email, password string) (LoginResult, error)
	// VerifyToken validates token with the service and returns the holder's role.
	VerifyToken(ctx context.Context, token string) (VerifyResult, error)
	// SetAuthToken attaches token as the bearer credential of subsequent
	// requests. An empty token detaches it.
	SetAuthToken(token string)
}
