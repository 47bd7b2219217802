package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"audience-intel/internal/core/port"
)

// contentTypes is the allow-list of servable artifact files. Requests
// for any other filename are rejected before touching storage.
var contentTypes = map[string]string{
	port.ArtifactJSON:     "application/json",
	port.ArtifactMarkdown: "text/markdown",
	port.ArtifactPDF:      "application/pdf",
}

// handleGetFile serves one artifact file of a plan. Filenames outside
// the allow-list produce HTTP 403; a missing plan or file HTTP 404.
func (h *Handler) handleGetFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	filename := chi.URLParam(r, "filename")

	ctype, ok := contentTypes[filename]
	if !ok {
		h.writeJSON(w, http.StatusForbidden, errorBody{Error: "File not allowed"})
		return
	}

	data, err := h.svc.Artifact(r.Context(), id, filename)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(data); err != nil {
		h.logger.Error("write artifact error", slog.Any("error", err))
	}
}
