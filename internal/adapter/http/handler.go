package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"adex/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the ledger use case, a session resolver for the auth
// boundary and a logger for structured logging. Routes are registered on a
// chi.Router for convenient method handling.
type Handler struct {
	svc      port.LedgerUseCase
	sessions port.SessionResolver
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Everything under
// /api/v1 except the meta endpoint requires a resolved session.
func NewHandler(svc port.LedgerUseCase, sessions port.SessionResolver, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		sessions: sessions,
		logger:   logger,
		validate: validator.New(),
	}
	r := chi.NewRouter()

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/meta", h.handleMeta)
		r.Group(func(r chi.Router) {
			r.Use(h.withSession)
			r.Get("/profile", h.handleProfile)
			r.Get("/ads/available", h.handleAvailableAds)
			r.Get("/ads/mine", h.handleOwnAds)
			r.Post("/ads", h.handleCreateAd)
			r.Post("/ads/{adID}/interactions", h.handleRecordInteraction)
			r.Post("/auth/logout", h.handleLogout)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleMeta serves the active reward policy and the interaction cooldown
// the view layer is asked to enforce client-side.
func (h *Handler) handleMeta(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Rewards())
}
