package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"adex/internal/config/configs"
	"adex/internal/core/domain"
	"adex/internal/core/port"
)

// Reward amounts per policy variant. Under click_lifetime every recorded
// interaction is worth one token; under per_kind views and clicks are
// rewarded separately.
const (
	lifetimeReward     = 1
	perKindViewReward  = 1
	perKindClickReward = 5
)

// LedgerService implements port.LedgerUseCase. It enforces the reward
// policy's de-duplication rules and delegates the atomic balance mutations
// to the repository. Completed mutations are announced on the event bus
// best-effort.
type LedgerService struct {
	repo    port.LedgerRepository
	events  port.EventPublisher
	policy  string
	rewards configs.Rewards
	logger  *slog.Logger
}

// NewLedgerService creates a ledger service with the provided repository,
// event publisher and reward configuration.
func NewLedgerService(repo port.LedgerRepository, events port.EventPublisher, rw configs.Rewards, logger *slog.Logger) *LedgerService {
	return &LedgerService{
		repo:    repo,
		events:  events,
		policy:  rw.Variant(),
		rewards: rw,
		logger:  logger,
	}
}

// RecordInteraction logs a view or click and credits the configured reward.
func (s *LedgerService) RecordInteraction(ctx context.Context, adID int64, userID string, kind domain.InteractionKind) (*port.InteractionResult, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown interaction kind %q", kind)
	}

	ad, err := s.repo.GetAd(ctx, adID)
	if err != nil {
		return nil, fmt.Errorf("load ad: %w", err)
	}
	if ad == nil {
		return nil, port.ErrAdNotFound
	}

	reward, dedupe, err := s.interactionPolicy(ctx, adID, userID, kind)
	if err != nil {
		return nil, err
	}
	if dedupe {
		// Duplicate view: nothing recorded, current balance returned so the
		// caller can still refresh its display.
		profile, err := s.repo.GetProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &port.InteractionResult{Balance: profile.Tokens, Duplicate: true}, nil
	}

	balance, err := s.repo.InsertInteractionAndCredit(ctx, domain.AdInteraction{
		AdID:   adID,
		UserID: userID,
		Kind:   kind,
	}, reward)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.LedgerEvent{
		Kind:      domain.EventInteraction,
		UserID:    userID,
		AdID:      adID,
		Delta:     reward,
		Balance:   balance,
		CreatedAt: time.Now().UTC(),
	})
	return &port.InteractionResult{Balance: balance, Reward: reward}, nil
}

// interactionPolicy resolves the reward and de-duplication outcome for one
// interaction attempt. It returns the reward to credit, or dedupe=true when
// the attempt is a silent no-op, or ErrAlreadyInteracted for a forbidden
// repeat click.
func (s *LedgerService) interactionPolicy(ctx context.Context, adID int64, userID string, kind domain.InteractionKind) (reward int64, dedupe bool, err error) {
	switch s.policy {
	case configs.PolicyPerKind:
		if kind == domain.InteractionClick {
			// Clicks are never de-duplicated under per_kind.
			return perKindClickReward, false, nil
		}
		seen, err := s.repo.HasInteraction(ctx, adID, userID, domain.InteractionView, time.Time{})
		if err != nil {
			return 0, false, err
		}
		return perKindViewReward, seen, nil

	default: // click_lifetime
		if kind == domain.InteractionClick {
			seen, err := s.repo.HasInteraction(ctx, adID, userID, domain.InteractionClick, time.Time{})
			if err != nil {
				return 0, false, err
			}
			if seen {
				return 0, false, port.ErrAlreadyInteracted
			}
			return lifetimeReward, false, nil
		}
		// Views repeat at most once per UTC day.
		seen, err := s.repo.HasInteraction(ctx, adID, userID, domain.InteractionView, startOfDayUTC(time.Now()))
		if err != nil {
			return 0, false, err
		}
		return lifetimeReward, seen, nil
	}
}

// CreateAd posts a new ad, debiting the spend from the owner's balance.
func (s *LedgerService) CreateAd(ctx context.Context, userID string, req port.CreateAdReq) (*domain.Ad, error) {
	if req.Link == "" {
		return nil, errors.New("ad link is required")
	}
	if req.TokensToSpend < 0 {
		return nil, errors.New("tokens to spend must be non-negative")
	}

	ad, balance, err := s.repo.InsertAdAndDebit(ctx, domain.Ad{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		TokensSpent: req.TokensToSpend,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.LedgerEvent{
		Kind:      domain.EventAdCreated,
		UserID:    userID,
		AdID:      ad.ID,
		Delta:     -req.TokensToSpend,
		Balance:   balance,
		CreatedAt: time.Now().UTC(),
	})
	return ad, nil
}

// ListAvailableAds returns ads the user may interact with under the active
// policy.
func (s *LedgerService) ListAvailableAds(ctx context.Context, userID string) ([]domain.Ad, error) {
	var f port.AvailableFilter
	switch s.policy {
	case configs.PolicyPerKind:
		// Repeat views are worthless; hide ads the user has already viewed.
		f.ExcludeKind = domain.InteractionView
	default:
		// Hide ads the user has already seen today, any kind.
		f.Since = startOfDayUTC(time.Now())
	}
	return s.repo.ListAvailableAds(ctx, userID, f)
}

// ListOwnAds returns the user's ads, newest first.
func (s *LedgerService) ListOwnAds(ctx context.Context, userID string) ([]domain.Ad, error) {
	return s.repo.ListOwnAds(ctx, userID)
}

// GetProfile returns the profile backing the displayed balance.
func (s *LedgerService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// Rewards describes the active reward policy.
func (s *LedgerService) Rewards() port.RewardsInfo {
	info := port.RewardsInfo{
		Policy:          s.policy,
		CooldownSeconds: s.rewards.CooldownSeconds,
	}
	switch s.policy {
	case configs.PolicyPerKind:
		info.ViewReward = perKindViewReward
		info.ClickReward = perKindClickReward
	default:
		info.ViewReward = lifetimeReward
		info.ClickReward = lifetimeReward
	}
	return info
}

func (s *LedgerService) publish(ctx context.Context, ev domain.LedgerEvent) {
	if err := s.events.PublishLedgerEvent(ctx, ev); err != nil {
		s.logger.Warn("publish ledger event", slog.Any("error", err), slog.String("kind", ev.Kind))
	}
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
