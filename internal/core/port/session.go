package port

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned when a bearer token is missing, expired,
// malformed or signed out.
var ErrNoSession = errors.New("no active session")

// Session identifies an authenticated caller. It is resolved once at the
// HTTP boundary and passed explicitly into every ledger operation.
type Session struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

// SessionResolver is the collaborator interface for session handling. The
// ledger consumes it; issuing credentials is owned by the external auth
// provider.
type SessionResolver interface {
	// Resolve validates a bearer token and returns the session it carries,
	// or ErrNoSession.
	Resolve(ctx context.Context, token string) (*Session, error)
	// SignOut invalidates the session until its natural expiry.
	SignOut(ctx context.Context, s Session) error
}
