// Package errors defines typed errors with categories for user-friendly reporting.
// Each error carries a machine-readable Kind, a human-friendly message and an
// optional wrapped cause, so callers can branch on the category while the CLI
// shows a message that never leaks server-side detail.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// VerificationFailed indicates the stored token could not be verified on startup.
	// It is always recovered locally and never shown to the user.
	VerificationFailed Kind = "verification_failed"
	// NoToken indicates the login response did not carry a token.
	NoToken Kind = "no_token"
	// LoginFailed indicates any other login failure (credentials, network, decoding).
	LoginFailed Kind = "login_failed"
	// UsageError indicates session state was accessed outside an active manager.
	UsageError Kind = "usage_error"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *E) Unwrap() error { return e.Err }

// Is reports whether target is an *E of the same Kind.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Wrap returns an *E of kind with msg that wraps the cause err.
func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }

// New returns an *E of kind with msg and no cause.
func New(kind Kind, msg string) *E { return &E{Kind: kind, Message: msg} }

// KindOf returns the Kind of the first *E in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
