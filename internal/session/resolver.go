package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"adex/internal/core/port"
)

const deniedKeyPrefix = "session:denied:"

// Resolver validates HMAC-signed bearer tokens and tracks signed-out token
// ids in Redis until their natural expiry. A nil Redis client disables the
// denylist, which is acceptable for tests only.
type Resolver struct {
	secret []byte
	ttl    time.Duration
	rdb    *redis.Client
}

// NewResolver creates a resolver with the given signing secret, token
// lifetime and denylist store.
func NewResolver(secret string, ttl time.Duration, rdb *redis.Client) *Resolver {
	return &Resolver{secret: []byte(secret), ttl: ttl, rdb: rdb}
}

// Resolve parses and validates a bearer token, rejecting tokens on the
// sign-out denylist. It returns port.ErrNoSession for anything that does
// not prove an active session.
func (r *Resolver) Resolve(ctx context.Context, token string) (*port.Session, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return r.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, port.ErrNoSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, port.ErrNoSession
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, port.ErrNoSession
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, port.ErrNoSession
	}
	tokenID, _ := claims["jti"].(string)

	if r.rdb != nil && tokenID != "" {
		denied, err := r.rdb.Exists(ctx, deniedKeyPrefix+tokenID).Result()
		if err != nil {
			return nil, fmt.Errorf("denylist lookup: %w", err)
		}
		if denied > 0 {
			return nil, port.ErrNoSession
		}
	}

	return &port.Session{
		UserID:    sub,
		TokenID:   tokenID,
		ExpiresAt: exp.Time,
	}, nil
}

// SignOut places the session's token id on the denylist until the token
// would have expired anyway.
func (r *Resolver) SignOut(ctx context.Context, s port.Session) error {
	if r.rdb == nil || s.TokenID == "" {
		return nil
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, deniedKeyPrefix+s.TokenID, 1, ttl).Err()
}

// Issue signs a token for the given user. The service itself does not
// expose registration or login; this exists for the dev seeder and tests.
func (r *Resolver) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(r.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
}
