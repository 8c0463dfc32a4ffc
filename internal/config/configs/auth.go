package configs

import "time"

// Auth configures verification of bearer tokens presented by the view
// layer. Tokens are HMAC-signed JWTs carrying the user id in the subject
// claim.
type Auth struct {
	// JWTSecret is the HMAC signing key. The default exists only so local
	// development works out of the box; production deployments must set it.
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	// TokenTTL bounds the lifetime of tokens issued by this service.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}
