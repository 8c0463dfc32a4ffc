package port

import (
	"context"

	"adex/internal/core/domain"
)

// LedgerUseCase defines the business operations of the token ledger. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type LedgerUseCase interface {
	// RecordInteraction logs a view or click by userID on adID and credits
	// the reward configured for the active policy. Duplicate clicks fail
	// with ErrAlreadyInteracted where the policy forbids them; duplicate
	// views are a silent no-op with Duplicate set on the result.
	RecordInteraction(ctx context.Context, adID int64, userID string, kind domain.InteractionKind) (*InteractionResult, error)

	// CreateAd posts a new ad for userID, debiting req.TokensToSpend from
	// the balance. It fails with ErrInsufficientTokens when the balance
	// cannot cover the spend, leaving the store untouched.
	CreateAd(ctx context.Context, userID string, req CreateAdReq) (*domain.Ad, error)

	// ListAvailableAds returns ads userID may interact with: never the
	// user's own, newest first, minus ads excluded by the active policy's
	// de-duplication window.
	ListAvailableAds(ctx context.Context, userID string) ([]domain.Ad, error)

	// ListOwnAds returns the user's ads, newest first.
	ListOwnAds(ctx context.Context, userID string) ([]domain.Ad, error)

	// GetProfile returns the profile backing the displayed balance.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)

	// Rewards describes the active reward policy for clients.
	Rewards() RewardsInfo
}

// CreateAdReq carries the fields of a new ad. Link is required; the title
// and description are optional display strings.
type CreateAdReq struct {
	Title         string
	Description   string
	Link          string
	TokensToSpend int64
}

// InteractionResult is the outcome of a recorded interaction. Balance is
// the updated token balance so callers need not re-query the profile.
type InteractionResult struct {
	Balance int64
	Reward  int64
	// Duplicate is set when the interaction was de-duplicated and nothing
	// was recorded or credited.
	Duplicate bool
}

// RewardsInfo describes the active reward policy. It is served to clients
// so the view layer can render reward amounts and enforce its cooldown.
type RewardsInfo struct {
	Policy          string `json:"reward_policy"`
	ViewReward      int64  `json:"view_reward"`
	ClickReward     int64  `json:"click_reward"`
	CooldownSeconds int    `json:"interaction_cooldown_seconds"`
}
