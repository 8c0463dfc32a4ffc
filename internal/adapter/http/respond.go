package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"adex/internal/core/domain"
	"adex/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

type adResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	TokensSpent int64     `json:"tokens_spent"`
	CreatedAt   time.Time `json:"created_at"`
	Username    string    `json:"username,omitempty"`
}

func toAdResponse(a domain.Ad) adResponse {
	return adResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Title:       a.Title,
		Description: a.Description,
		Link:        a.Link,
		TokensSpent: a.TokensSpent,
		CreatedAt:   a.CreatedAt,
		Username:    a.OwnerUsername,
	}
}

func toAdResponses(ads []domain.Ad) []adResponse {
	out := make([]adResponse, 0, len(ads))
	for _, a := range ads {
		out = append(out, toAdResponse(a))
	}
	return out
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps ledger errors onto HTTP statuses. Anything outside the
// ledger's error taxonomy is an undifferentiated store failure: logged and
// reported as 500 without detail.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrAlreadyInteracted):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrInsufficientTokens):
		h.writeJSON(w, http.StatusPaymentRequired, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrAdNotFound), errors.Is(err, port.ErrProfileNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("ledger operation failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
