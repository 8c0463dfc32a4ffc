package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"adex/internal/core/port"
)

type ctxKey int

const sessionKey ctxKey = iota

// withSession resolves the bearer token once at the boundary and stores the
// session in the request context. Handlers read it back with sessionFrom
// and pass the user id explicitly into every use-case call; nothing below
// this middleware touches ambient auth state.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		sess, err := h.sessions.Resolve(r.Context(), parts[1])
		if err != nil {
			http.Error(w, "invalid or expired session", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session placed in the context by withSession. It
// is nil only on routes outside the session group.
func sessionFrom(r *http.Request) *port.Session {
	s, _ := r.Context().Value(sessionKey).(*port.Session)
	return s
}
