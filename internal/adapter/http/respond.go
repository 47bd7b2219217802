package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"audience-intel/internal/core/domain"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Error   string              `json:"error"`
	Message string              `json:"message,omitempty"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and give up on this response
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps a pipeline failure onto a status code and body. Kinds
// the caller can act on keep their detail; everything else becomes a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError,
			errorBody{Error: "Internal server error", Message: err.Error()})
		return
	}

	switch derr.Kind {
	case domain.KindBadSyntax:
		h.writeJSON(w, http.StatusBadRequest,
			errorBody{Error: "Invalid YAML", Message: derr.Message})
	case domain.KindInputShape, domain.KindOutputShape:
		h.writeJSON(w, http.StatusUnprocessableEntity,
			errorBody{Error: "Validation error", Message: derr.Message, Details: derr.Fields})
	case domain.KindBusinessRule:
		h.writeJSON(w, http.StatusUnprocessableEntity,
			errorBody{Error: "Validation error", Message: derr.Message})
	case domain.KindExtraction:
		h.writeJSON(w, http.StatusBadGateway,
			errorBody{Error: "Upstream response malformed", Message: derr.Message})
	case domain.KindNotFound:
		h.writeJSON(w, http.StatusNotFound,
			errorBody{Error: "Plan not found", Message: derr.Message})
	case domain.KindRateLimited:
		h.writeJSON(w, http.StatusTooManyRequests,
			errorBody{Error: "Rate limit exceeded"})
	default:
		h.logger.Error("internal error", slog.String("kind", derr.Kind.String()), slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError,
			errorBody{Error: "Internal server error", Message: derr.Message})
	}
}
