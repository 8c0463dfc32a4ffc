package httpadapter

import (
	"log/slog"
	"net/http"
)

type profileResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Tokens   int64  `json:"tokens"`
}

// handleProfile serves the caller's profile for balance display.
func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	p, err := h.svc.GetProfile(r.Context(), sess.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, profileResponse{ID: p.ID, Username: p.Username, Tokens: p.Tokens})
}

// handleLogout invalidates the presented session.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if err := h.sessions.SignOut(r.Context(), *sess); err != nil {
		h.logger.Error("sign out", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
