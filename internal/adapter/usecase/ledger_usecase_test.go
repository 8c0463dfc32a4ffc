package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adex/internal/config/configs"
	"adex/internal/core/domain"
	"adex/internal/core/port"
	"adex/internal/core/port/mocks"
)

func newTestService(t *testing.T, policy string) (*LedgerService, *mocks.MockLedgerRepository, *mocks.MockEventPublisher) {
	repo := mocks.NewMockLedgerRepository(t)
	events := mocks.NewMockEventPublisher(t)
	svc := NewLedgerService(repo, events, configs.Rewards{Policy: policy, CooldownSeconds: 10}, slog.New(slog.DiscardHandler))
	return svc, repo, events
}

// TestClickFromZeroBalance covers the lifetime policy's base case: a first
// click on someone else's ad credits one token.
func TestClickFromZeroBalance(t *testing.T) {
	svc, repo, events := newTestService(t, configs.PolicyClickLifetime)

	ad := &domain.Ad{ID: 7, UserID: "owner", Link: "https://example.com"}
	repo.EXPECT().GetAd(mock.Anything, int64(7)).Return(ad, nil)
	repo.EXPECT().
		HasInteraction(mock.Anything, int64(7), "viewer", domain.InteractionClick, time.Time{}).
		Return(false, nil)
	repo.EXPECT().
		InsertInteractionAndCredit(mock.Anything, mock.AnythingOfType("domain.AdInteraction"), int64(1)).
		Return(1, nil)
	events.EXPECT().
		PublishLedgerEvent(mock.Anything, mock.MatchedBy(func(ev domain.LedgerEvent) bool {
			return ev.Kind == domain.EventInteraction && ev.Delta == 1 && ev.Balance == 1
		})).
		Return(nil)

	res, err := svc.RecordInteraction(context.Background(), 7, "viewer", domain.InteractionClick)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Balance)
	assert.Equal(t, int64(1), res.Reward)
	assert.False(t, res.Duplicate)
}

// TestRepeatClickRejected ensures a second click for the same (ad, user)
// pair fails under the lifetime policy and credits nothing.
func TestRepeatClickRejected(t *testing.T) {
	svc, repo, _ := newTestService(t, configs.PolicyClickLifetime)

	ad := &domain.Ad{ID: 7, UserID: "owner", Link: "https://example.com"}
	repo.EXPECT().GetAd(mock.Anything, int64(7)).Return(ad, nil)
	repo.EXPECT().
		HasInteraction(mock.Anything, int64(7), "viewer", domain.InteractionClick, time.Time{}).
		Return(true, nil)

	res, err := svc.RecordInteraction(context.Background(), 7, "viewer", domain.InteractionClick)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, port.ErrAlreadyInteracted)
}

// TestViewRewardedOncePerDay: under the lifetime policy a view earns one
// token, and a repeat view the same day is a silent no-op.
func TestViewRewardedOncePerDay(t *testing.T) {
	svc, repo, events := newTestService(t, configs.PolicyClickLifetime)

	ad := &domain.Ad{ID: 3, UserID: "owner", Link: "https://example.com"}
	repo.EXPECT().GetAd(mock.Anything, int64(3)).Return(ad, nil).Twice()
	repo.EXPECT().
		HasInteraction(mock.Anything, int64(3), "viewer", domain.InteractionView, mock.AnythingOfType("time.Time")).
		Return(false, nil).
		Once()
	repo.EXPECT().
		InsertInteractionAndCredit(mock.Anything, mock.AnythingOfType("domain.AdInteraction"), int64(1)).
		Return(11, nil).
		Once()
	events.EXPECT().PublishLedgerEvent(mock.Anything, mock.Anything).Return(nil).Once()

	res, err := svc.RecordInteraction(context.Background(), 3, "viewer", domain.InteractionView)
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.Balance)

	// second view the same day: nothing recorded, balance unchanged
	repo.EXPECT().
		HasInteraction(mock.Anything, int64(3), "viewer", domain.InteractionView, mock.AnythingOfType("time.Time")).
		Return(true, nil).
		Once()
	repo.EXPECT().GetProfile(mock.Anything, "viewer").Return(&domain.Profile{ID: "viewer", Tokens: 11}, nil)

	res, err = svc.RecordInteraction(context.Background(), 3, "viewer", domain.InteractionView)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Equal(t, int64(11), res.Balance)
	assert.Zero(t, res.Reward)
}

// TestPerKindRewards checks the alternative policy: views earn 1 and are
// de-duplicated for life, clicks earn 5 and always insert.
func TestPerKindRewards(t *testing.T) {
	svc, repo, events := newTestService(t, configs.PolicyPerKind)

	ad := &domain.Ad{ID: 9, UserID: "owner", Link: "https://example.com"}
	repo.EXPECT().GetAd(mock.Anything, int64(9)).Return(ad, nil)
	repo.EXPECT().
		InsertInteractionAndCredit(mock.Anything, mock.AnythingOfType("domain.AdInteraction"), int64(5)).
		Return(5, nil)
	events.EXPECT().
		PublishLedgerEvent(mock.Anything, mock.MatchedBy(func(ev domain.LedgerEvent) bool {
			return ev.Delta == 5
		})).
		Return(nil)

	res, err := svc.RecordInteraction(context.Background(), 9, "viewer", domain.InteractionClick)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Reward)
}

func TestPerKindDuplicateViewIsNoop(t *testing.T) {
	svc, repo, _ := newTestService(t, configs.PolicyPerKind)

	ad := &domain.Ad{ID: 9, UserID: "owner", Link: "https://example.com"}
	repo.EXPECT().GetAd(mock.Anything, int64(9)).Return(ad, nil)
	repo.EXPECT().
		HasInteraction(mock.Anything, int64(9), "viewer", domain.InteractionView, time.Time{}).
		Return(true, nil)
	repo.EXPECT().GetProfile(mock.Anything, "viewer").Return(&domain.Profile{ID: "viewer", Tokens: 2}, nil)

	res, err := svc.RecordInteraction(context.Background(), 9, "viewer", domain.InteractionView)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Equal(t, int64(2), res.Balance)
}

func TestRecordInteractionUnknownAd(t *testing.T) {
	svc, repo, _ := newTestService(t, configs.PolicyClickLifetime)

	repo.EXPECT().GetAd(mock.Anything, int64(404)).Return(nil, nil)

	_, err := svc.RecordInteraction(context.Background(), 404, "viewer", domain.InteractionClick)
	assert.ErrorIs(t, err, port.ErrAdNotFound)
}

func TestRecordInteractionUnknownKind(t *testing.T) {
	svc, _, _ := newTestService(t, configs.PolicyClickLifetime)

	_, err := svc.RecordInteraction(context.Background(), 1, "viewer", "hover")
	assert.Error(t, err)
}

// TestCreateAdDebitsSpend covers the 10 -> 5 scenario: posting an ad with a
// spend of 5 leaves the balance at 5 and records the spend on the ad.
func TestCreateAdDebitsSpend(t *testing.T) {
	svc, repo, events := newTestService(t, configs.PolicyClickLifetime)

	created := &domain.Ad{ID: 42, UserID: "poster", Link: "https://example.com", TokensSpent: 5, CreatedAt: time.Now()}
	repo.EXPECT().
		InsertAdAndDebit(mock.Anything, mock.MatchedBy(func(ad domain.Ad) bool {
			return ad.UserID == "poster" && ad.TokensSpent == 5 && ad.Link == "https://example.com"
		})).
		Return(created, 5, nil)
	events.EXPECT().
		PublishLedgerEvent(mock.Anything, mock.MatchedBy(func(ev domain.LedgerEvent) bool {
			return ev.Kind == domain.EventAdCreated && ev.Delta == -5 && ev.Balance == 5 && ev.AdID == 42
		})).
		Return(nil)

	ad, err := svc.CreateAd(context.Background(), "poster", port.CreateAdReq{
		Link:          "https://example.com",
		TokensToSpend: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), ad.ID)
	assert.Equal(t, int64(5), ad.TokensSpent)
}

func TestCreateAdInsufficientTokens(t *testing.T) {
	svc, repo, _ := newTestService(t, configs.PolicyClickLifetime)

	repo.EXPECT().
		InsertAdAndDebit(mock.Anything, mock.AnythingOfType("domain.Ad")).
		Return(nil, 0, port.ErrInsufficientTokens)

	_, err := svc.CreateAd(context.Background(), "poster", port.CreateAdReq{
		Link:          "https://example.com",
		TokensToSpend: 50,
	})
	assert.ErrorIs(t, err, port.ErrInsufficientTokens)
}

func TestCreateAdValidation(t *testing.T) {
	svc, _, _ := newTestService(t, configs.PolicyClickLifetime)

	_, err := svc.CreateAd(context.Background(), "poster", port.CreateAdReq{TokensToSpend: 1})
	assert.Error(t, err, "missing link must be rejected before any store call")

	_, err = svc.CreateAd(context.Background(), "poster", port.CreateAdReq{Link: "https://example.com", TokensToSpend: -1})
	assert.Error(t, err)
}

// TestAvailableAdsFilterPerPolicy checks that each policy narrows the
// listing with its own de-duplication window.
func TestAvailableAdsFilterPerPolicy(t *testing.T) {
	t.Run("click_lifetime hides ads seen today", func(t *testing.T) {
		svc, repo, _ := newTestService(t, configs.PolicyClickLifetime)

		var got port.AvailableFilter
		repo.EXPECT().
			ListAvailableAds(mock.Anything, "viewer", mock.AnythingOfType("port.AvailableFilter")).
			Run(func(_ context.Context, _ string, f port.AvailableFilter) {
				got = f
			}).
			Return(nil, nil)

		_, err := svc.ListAvailableAds(context.Background(), "viewer")
		require.NoError(t, err)
		assert.Empty(t, got.ExcludeKind)
		assert.False(t, got.Since.IsZero())
		assert.Equal(t, time.UTC, got.Since.Location())
		assert.Zero(t, got.Since.Hour())
	})

	t.Run("per_kind hides viewed ads for life", func(t *testing.T) {
		svc, repo, _ := newTestService(t, configs.PolicyPerKind)

		var got port.AvailableFilter
		repo.EXPECT().
			ListAvailableAds(mock.Anything, "viewer", mock.AnythingOfType("port.AvailableFilter")).
			Run(func(_ context.Context, _ string, f port.AvailableFilter) {
				got = f
			}).
			Return(nil, nil)

		_, err := svc.ListAvailableAds(context.Background(), "viewer")
		require.NoError(t, err)
		assert.Equal(t, domain.InteractionView, got.ExcludeKind)
		assert.True(t, got.Since.IsZero())
	})
}

// TestPublishFailureDoesNotFailRequest: the bus is best-effort.
func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	svc, repo, events := newTestService(t, configs.PolicyClickLifetime)

	ad := &domain.Ad{ID: 7, UserID: "owner", Link: "https://example.com"}
	repo.EXPECT().GetAd(mock.Anything, int64(7)).Return(ad, nil)
	repo.EXPECT().
		HasInteraction(mock.Anything, int64(7), "viewer", domain.InteractionClick, time.Time{}).
		Return(false, nil)
	repo.EXPECT().
		InsertInteractionAndCredit(mock.Anything, mock.AnythingOfType("domain.AdInteraction"), int64(1)).
		Return(1, nil)
	events.EXPECT().PublishLedgerEvent(mock.Anything, mock.Anything).Return(errors.New("bus down"))

	res, err := svc.RecordInteraction(context.Background(), 7, "viewer", domain.InteractionClick)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Balance)
}

func TestRewardsInfo(t *testing.T) {
	svc, _, _ := newTestService(t, configs.PolicyClickLifetime)
	info := svc.Rewards()
	assert.Equal(t, configs.PolicyClickLifetime, info.Policy)
	assert.Equal(t, int64(1), info.ViewReward)
	assert.Equal(t, int64(1), info.ClickReward)
	assert.Equal(t, 10, info.CooldownSeconds)

	svc, _, _ = newTestService(t, configs.PolicyPerKind)
	info = svc.Rewards()
	assert.Equal(t, int64(1), info.ViewReward)
	assert.Equal(t, int64(5), info.ClickReward)
}
