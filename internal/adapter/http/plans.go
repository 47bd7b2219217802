package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"audience-intel/internal/core/port"
)

type planResponse struct {
	JSON     json.RawMessage `json:"json"`
	Markdown string          `json:"markdown"`
	ID       string          `json:"id"`
	PDFURL   string          `json:"pdf_url,omitempty"`
}

// handleGetPlan returns a stored plan by id, including a PDF link when
// the artifact was rendered. Unknown ids produce HTTP 404.
func (h *Handler) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := planResponse{JSON: rec.JSON, Markdown: rec.Markdown, ID: rec.ID}
	if rec.PDFExists {
		resp.PDFURL = fmt.Sprintf("/files/%s/%s", rec.ID, port.ArtifactPDF)
	}
	h.writeJSON(w, http.StatusOK, resp)
}
