package auth

import (
	"context"

	apperrors "baro/cli/internal/errors"
)

type ctxKey struct{}

// WithManager returns a copy of ctx carrying m.
func WithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// FromContext returns the Manager attached to ctx.
// It panics with a UsageError when none is attached; that is a wiring bug,
// not a runtime condition.
func FromContext(ctx context.Context) *Manager {
	m, ok := ctx.Value(ctxKey{}).(*Manager)
	if !ok || m == nil {
		panic(apperrors.New(apperrors.UsageError, "auth.FromContext called without a session manager in context"))
	}
	return m
}
