package httpadapter

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"audience-intel/internal/core/domain"
)

// requestID tags every request with a correlation id, echoed in the
// X-Request-ID response header and attached to the access log line.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		h.logger.Debug("request",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

// rateLimited guards a handler with the injected limit store. A failing
// store is logged and fails open; a throttled endpoint must not become
// unavailable because its counter is.
func (h *Handler) rateLimited(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := h.limiter.Allow(r.Context(), clientKey(r))
		if err != nil {
			h.logger.Error("rate limit store error", slog.Any("error", err))
		} else if !ok {
			h.writeError(w, domain.NewError(domain.KindRateLimited, "rate limit exceeded"))
			return
		}
		next(w, r)
	}
}

// clientKey identifies the caller for rate limiting: the first
// X-Forwarded-For hop when present, otherwise the peer address.
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
