package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned when a context has no session installed. Reaching
// for the session outside a provider is a programming error; callers check
// this precondition instead of panicking on a nil dereference later.
var ErrNoSession = errors.New("session: no session in context; use NewContext to install one")

type ctxKey struct{}

// NewContext installs s as the context's session provider.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session installed in ctx, or ErrNoSession.
func FromContext(ctx context.Context) (*Session, error) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	if !ok || s == nil {
		return nil, ErrNoSession
	}
	return s, nil
}

// MustFromContext is FromContext for call sites where a missing provider is
// unrecoverable. It fails loudly so misuse surfaces during development.
func MustFromContext(ctx context.Context) *Session {
	s, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}
