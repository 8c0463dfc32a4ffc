package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adex/internal/core/domain"
)

type interactionRequest struct {
	Type string `json:"type" validate:"required,oneof=view click"`
}

type interactionResponse struct {
	Tokens int64 `json:"tokens"`
	Reward int64 `json:"reward"`
}

// handleRecordInteraction logs a view or click on the ad named in the path
// and returns the caller's updated balance. A de-duplicated view produces
// 204, a forbidden repeat click 409.
func (h *Handler) handleRecordInteraction(w http.ResponseWriter, r *http.Request) {
	adID, err := strconv.ParseInt(chi.URLParam(r, "adID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid ad id", http.StatusBadRequest)
		return
	}

	var req interactionRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err = h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	sess := sessionFrom(r)
	res, err := h.svc.RecordInteraction(r.Context(), adID, sess.UserID, domain.InteractionKind(req.Type))
	if err != nil {
		h.writeError(w, err)
		return
	}
	if res.Duplicate {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, interactionResponse{Tokens: res.Balance, Reward: res.Reward})
}
