package port

import (
	"context"
	"errors"
	"time"

	"adex/internal/core/domain"
)

var (
	ErrAlreadyInteracted  = errors.New("ad already interacted by this user")
	ErrInsufficientTokens = errors.New("insufficient tokens")
	ErrAdNotFound         = errors.New("ad not found")
	ErrProfileNotFound    = errors.New("profile not found")
)

// AvailableFilter narrows the available-ads listing by prior interactions
// of the requesting user. A zero value excludes nothing beyond the user's
// own ads.
type AvailableFilter struct {
	// ExcludeKind limits the exclusion to interactions of one kind. Empty
	// matches any kind.
	ExcludeKind domain.InteractionKind
	// Since limits the exclusion to interactions at or after this instant.
	// The zero time means the exclusion spans the full history.
	Since time.Time
}

// LedgerRepository defines the persistence layer for the token ledger. It
// is an outbound port in hexagonal architecture. Implementations must make
// the insert-and-credit and insert-and-debit pairs atomic.
type LedgerRepository interface {
	// GetProfile returns a profile by id, or ErrProfileNotFound.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	// GetAd returns an ad by id. It returns nil when the ad does not exist.
	GetAd(ctx context.Context, adID int64) (*domain.Ad, error)
	// HasInteraction reports whether an interaction matching (adID, userID)
	// exists, optionally restricted to one kind and to interactions at or
	// after since. A zero since spans the full history.
	HasInteraction(ctx context.Context, adID int64, userID string, kind domain.InteractionKind, since time.Time) (bool, error)
	// InsertInteractionAndCredit stores the interaction and credits the
	// user's balance by reward in a single transaction. It returns the
	// updated balance.
	InsertInteractionAndCredit(ctx context.Context, in domain.AdInteraction, reward int64) (int64, error)
	// InsertAdAndDebit debits the owner by ad.TokensSpent and stores the ad
	// in a single transaction. ErrInsufficientTokens is returned, with no
	// writes, when the balance cannot cover the spend. On success the
	// stored ad (with id and created_at) and the updated balance are
	// returned.
	InsertAdAndDebit(ctx context.Context, ad domain.Ad) (*domain.Ad, int64, error)
	// ListAvailableAds returns ads not owned by userID, newest first,
	// annotated with the owner's username and filtered per f.
	ListAvailableAds(ctx context.Context, userID string, f AvailableFilter) ([]domain.Ad, error)
	// ListOwnAds returns the user's ads, newest first.
	ListOwnAds(ctx context.Context, userID string) ([]domain.Ad, error)
}
