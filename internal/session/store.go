// Package session holds the binding between opaque session tokens and
// authenticated identities. The binding is injected into the core; no
// package-level state carries the "current user".
package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned when a token has no live binding.
var ErrNoSession = errors.New("session: no such token")

// Identity is what a valid token resolves to.
type Identity struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// Store maps session tokens to identities. Implementations must be safe
// under concurrent access from many connections; no call should block
// longer than one entry's read or write.
type Store interface {
	Put(ctx context.Context, token string, id Identity) error
	Get(ctx context.Context, token string) (Identity, error)
	Delete(ctx context.Context, token string) error
}
