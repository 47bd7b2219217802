package port

import (
	"context"
	"encoding/json"

	"audience-intel/internal/core/domain"
)

// PlanUseCase defines the business operations of the plan service. This
// is the primary port into the application domain; the HTTP adapter
// depends on it and fakes of it drive the handler tests.
type PlanUseCase interface {
	// Generate turns a YAML client brief into a validated, persisted
	// plan. With dryRun set the model is never called and the fixed
	// example plan is persisted and returned instead. Failures carry a
	// domain.Error whose Kind tells the caller how to respond.
	Generate(ctx context.Context, yamlText string, dryRun bool) (*PlanEnvelope, error)

	// Get loads a previously generated plan by id. A missing id yields
	// a KindNotFound error.
	Get(ctx context.Context, id string) (*PlanRecord, error)

	// Artifact returns the raw bytes of one stored artifact file of a
	// plan. The filename must be one the repository wrote; a missing
	// plan or file yields KindNotFound.
	Artifact(ctx context.Context, id, filename string) ([]byte, error)
}

// PlanEnvelope is the result of a successful generation. Warnings holds
// soft validation findings and is nil when there are none.
type PlanEnvelope struct {
	Plan     *domain.Plan
	Markdown string
	ID       string
	Warnings []string
}

// PlanRecord is a stored plan as read back from the repository. JSON is
// the persisted document verbatim.
type PlanRecord struct {
	ID        string
	JSON      json.RawMessage
	Markdown  string
	PDFExists bool
}
