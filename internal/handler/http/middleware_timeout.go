package http

import (
	"context"
	"net/http"
)

// withTimeout bounds the request context with the configured timeout so a
// stuck storage backend cannot hold the connection open indefinitely.
// A zero timeout leaves the context unbounded.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.requestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
