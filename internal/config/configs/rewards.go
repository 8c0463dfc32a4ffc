package configs

import "strings"

// Reward policy variants. ClickLifetime rewards every interaction with one
// token and permits a click once per (ad, user) pair, ever. PerKind rewards
// views with one token and clicks with five, de-duplicating views only.
const (
	PolicyClickLifetime = "click_lifetime"
	PolicyPerKind       = "per_kind"
)

// Rewards configures the token reward policy applied by the ledger.
type Rewards struct {
	Policy string `env:"POLICY" envDefault:"click_lifetime"`
	// CooldownSeconds is the minimum interval between interaction attempts
	// that clients are asked to enforce. It is advertised via the meta
	// endpoint only; the ledger itself does not rate-limit.
	CooldownSeconds int `env:"COOLDOWN_SECONDS" envDefault:"10"`
}

// Variant validates and normalises the configured policy. Unknown values
// fall back to PolicyClickLifetime.
func (c Rewards) Variant() string {
	switch strings.ToLower(c.Policy) {
	case PolicyPerKind:
		return PolicyPerKind
	default:
		return PolicyClickLifetime
	}
}
