package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adex/internal/core/domain"
	"adex/internal/core/port"
	"adex/internal/core/port/mocks"
)

const testToken = "token-abc"

var testSession = port.Session{UserID: "u1", TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

func newTestHandler(t *testing.T) (*Handler, *mocks.MockLedgerUseCase, *mocks.MockSessionResolver) {
	svc := mocks.NewMockLedgerUseCase(t)
	sessions := mocks.NewMockSessionResolver(t)
	h := NewHandler(svc, sessions, slog.New(slog.DiscardHandler))
	return h, svc, sessions
}

func doRequest(h *Handler, method, target, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func expectSession(sessions *mocks.MockSessionResolver) {
	s := testSession
	sessions.EXPECT().Resolve(mock.Anything, testToken).Return(&s, nil)
}

func TestMissingBearerToken(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/v1/profile", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInvalidSession(t *testing.T) {
	h, _, sessions := newTestHandler(t)
	sessions.EXPECT().Resolve(mock.Anything, testToken).Return(nil, port.ErrNoSession)

	rec := doRequest(h, http.MethodGet, "/api/v1/profile", "", true)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfile(t *testing.T) {
	h, svc, sessions := newTestHandler(t)
	expectSession(sessions)
	svc.EXPECT().GetProfile(mock.Anything, "u1").
		Return(&domain.Profile{ID: "u1", Username: "alice", Tokens: 12}, nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/profile", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp profileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, int64(12), resp.Tokens)
}

func TestAvailableAdsAnnotatesOwner(t *testing.T) {
	h, svc, sessions := newTestHandler(t)
	expectSession(sessions)
	svc.EXPECT().ListAvailableAds(mock.Anything, "u1").Return([]domain.Ad{
		{ID: 2, UserID: "u2", Link: "https://b.example", CreatedAt: time.Now(), OwnerUsername: "bob"},
		{ID: 1, UserID: "u3", Link: "https://c.example", CreatedAt: time.Now().Add(-time.Hour), OwnerUsername: "carol"},
	}, nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/ads/available", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []adResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "bob", resp[0].Username)
	assert.Equal(t, int64(2), resp[0].ID)
}

func TestOwnAds(t *testing.T) {
	h, svc, sessions := newTestHandler(t)
	expectSession(sessions)
	svc.EXPECT().ListOwnAds(mock.Anything, "u1").Return([]domain.Ad{
		{ID: 5, UserID: "u1", Link: "https://a.example", TokensSpent: 3},
	}, nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/ads/mine", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []adResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "u1", resp[0].UserID)
}

func TestCreateAd(t *testing.T) {
	h, svc, sessions := newTestHandler(t)
	expectSession(sessions)
	svc.EXPECT().
		CreateAd(mock.Anything, "u1", port.CreateAdReq{
			Title:         "hello",
			Link:          "https://a.example",
			TokensToSpend: 5,
		}).
		Return(&domain.Ad{ID: 9, UserID: "u1", Title: "hello", Link: "https://a.example", TokensSpent: 5, CreatedAt: time.Now()}, nil)

	body := `{"title":"hello","link":"https://a.example","tokens_to_spend":5}`
	rec := doRequest(h, http.MethodPost, "/api/v1/ads", body, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp adResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, int64(5), resp.TokensSpent)
}

func TestCreateAdInsufficientTokens(t *testing.T) {
	h, svc, sessions := newTestHandler(t)
	expectSession(sessions)
	svc.EXPECT().
		CreateAd(mock.Anything, "u1", mock.AnythingOfType("port.CreateAdReq")).
		Return(nil, port.ErrInsufficientTokens)

	body := `{"link":"https://a.example","tokens_to_spend":500}`
	rec := doRequest(h, http.MethodPost, "/api/v1/ads", body, true)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestCreateAdValidation(t *testing.T) {
	h, _, sessions := newTestHandler(t)
	expectSession(sessions)

	// link missing: rejected before the use case is touched
	rec := doRequest(h, http.MethodPost, "/api/v1/ads", `{"tokens_to_spend":5}`, true)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRecordInteraction(t *testing.T) {
	h, svc, sessions := newTestHandler(t)
	expectSession(sessions)
	svc.EXPECT().
		RecordInteraction(mock.Anything, int64(7), "u1", domain.InteractionClick).
		Return(&port.InteractionResult{Balance: 6, Reward: 1}, nil)

	rec := doRequest(h, http.MethodPost, "/api/v1/ads/7/interactions", `{"type":"click"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp interactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(6), resp.Tokens)
	assert.Equal(t, int64(1), resp.Reward)
}

func TestRecordInteractionDuplicateClick(t *testing.T) {
	h, svc, sessions := newTestHandler(t)
	expectSession(sessions)
	svc.EXPECT().
		RecordInteraction(mock.Anything, int64(7), "u1", domain.InteractionClick).
		Return(nil, port.ErrAlreadyInteracted)

	rec := doRequest(h, http.MethodPost, "/api/v1/ads/7/interactions", `{"type":"click"}`, true)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecordInteractionDuplicateView(t *testing.T) {
	h, svc, sessions := newTestHandler(t)
	expectSession(sessions)
	svc.EXPECT().
		RecordInteraction(mock.Anything, int64(7), "u1", domain.InteractionView).
		Return(&port.InteractionResult{Balance: 6, Duplicate: true}, nil)

	rec := doRequest(h, http.MethodPost, "/api/v1/ads/7/interactions", `{"type":"view"}`, true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRecordInteractionBadInput(t *testing.T) {
	h, _, sessions := newTestHandler(t)
	expectSession(sessions)

	rec := doRequest(h, http.MethodPost, "/api/v1/ads/not-a-number/interactions", `{"type":"click"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, http.MethodPost, "/api/v1/ads/7/interactions", `{"type":"hover"}`, true)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLogout(t *testing.T) {
	h, _, sessions := newTestHandler(t)
	expectSession(sessions)
	sessions.EXPECT().
		SignOut(mock.Anything, mock.MatchedBy(func(s port.Session) bool {
			return s.UserID == "u1" && s.TokenID == "jti-1"
		})).
		Return(nil)

	rec := doRequest(h, http.MethodPost, "/api/v1/auth/logout", "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMetaIsPublic(t *testing.T) {
	h, svc, _ := newTestHandler(t)
	svc.EXPECT().Rewards().Return(port.RewardsInfo{
		Policy:          "click_lifetime",
		ViewReward:      1,
		ClickReward:     1,
		CooldownSeconds: 10,
	})

	rec := doRequest(h, http.MethodGet, "/api/v1/meta", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp port.RewardsInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.CooldownSeconds)
	assert.Equal(t, "click_lifetime", resp.Policy)
}

func TestHealthz(t *testing.T) {
	h, _, _ := newTestHandler(t)
	rec := doRequest(h, http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}
