package httpadapter

import (
	"encoding/json"
	"net/http"

	"adex/internal/core/port"
)

type createAdRequest struct {
	Title         string `json:"title" validate:"max=200"`
	Description   string `json:"description" validate:"max=2000"`
	Link          string `json:"link" validate:"required,url"`
	TokensToSpend int64  `json:"tokens_to_spend" validate:"min=0"`
}

// handleAvailableAds lists ads the caller may interact with.
func (h *Handler) handleAvailableAds(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	ads, err := h.svc.ListAvailableAds(r.Context(), sess.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAdResponses(ads))
}

// handleOwnAds lists the caller's own ads.
func (h *Handler) handleOwnAds(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	ads, err := h.svc.ListOwnAds(r.Context(), sess.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAdResponses(ads))
}

// handleCreateAd posts a new ad, debiting the requested spend from the
// caller's balance. Validation failures produce 422, an uncovered spend 402.
func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var req createAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	sess := sessionFrom(r)
	ad, err := h.svc.CreateAd(r.Context(), sess.UserID, port.CreateAdReq{
		Title:         req.Title,
		Description:   req.Description,
		Link:          req.Link,
		TokensToSpend: req.TokensToSpend,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toAdResponse(*ad))
}
