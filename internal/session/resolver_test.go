package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adex/internal/core/port"
)

func TestIssueResolveRoundTrip(t *testing.T) {
	r := NewResolver("secret", time.Hour, nil)

	token, err := r.Issue("user-1")
	require.NoError(t, err)

	sess, err := r.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sess.UserID)
	assert.NotEmpty(t, sess.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)
}

func TestResolveRejectsWrongSecret(t *testing.T) {
	issuer := NewResolver("secret-a", time.Hour, nil)
	verifier := NewResolver("secret-b", time.Hour, nil)

	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = verifier.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, port.ErrNoSession)
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	r := NewResolver("secret", -time.Minute, nil)

	token, err := r.Issue("user-1")
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, port.ErrNoSession)
}

func TestResolveRejectsGarbage(t *testing.T) {
	r := NewResolver("secret", time.Hour, nil)

	_, err := r.Resolve(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, port.ErrNoSession)
}

func TestSignOutWithoutStoreIsNoop(t *testing.T) {
	r := NewResolver("secret", time.Hour, nil)
	err := r.SignOut(context.Background(), port.Session{TokenID: "x", ExpiresAt: time.Now().Add(time.Hour)})
	assert.NoError(t, err)
}
