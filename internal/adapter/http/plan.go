package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"audience-intel/internal/core/domain"
)

type generateRequest struct {
	YAMLInput string `json:"yaml_input"`
	Options   struct {
		DryRun bool `json:"dry_run"`
	} `json:"options"`
}

type generateResponse struct {
	JSON     *domain.Plan `json:"json"`
	Markdown string       `json:"markdown"`
	ID       string       `json:"id"`
	Warnings []string     `json:"warnings,omitempty"`
}

// handleGeneratePlan runs the full generation pipeline for a submitted
// YAML brief. Malformed request JSON produces HTTP 400; validation
// failures 422; everything else is mapped by writeError.
func (h *Handler) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.YAMLInput) == "" {
		h.writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:   "Validation error",
			Details: []domain.FieldError{{Field: "yaml_input", Constraint: "required"}},
		})
		return
	}

	h.logger.Info("generating plan",
		slog.Bool("dry_run", req.Options.DryRun),
		slog.String("yaml", redactYAML(req.YAMLInput)))

	env, err := h.svc.Generate(r.Context(), req.YAMLInput, req.Options.DryRun)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, generateResponse{
		JSON:     env.Plan,
		Markdown: env.Markdown,
		ID:       env.ID,
		Warnings: env.Warnings,
	})
}
