package port

import (
	"context"

	"audience-intel/internal/core/domain"
)

// Canonical artifact filenames written per plan. The PDF is optional.
const (
	ArtifactJSON     = "ait.json"
	ArtifactMarkdown = "ait.md"
	ArtifactPDF      = "ait.pdf"
)

// PlanRepository is the outbound port for plan persistence. Records are
// append-only: there is no update or delete, and ids are allocated by
// Save in a time-sortable order.
type PlanRepository interface {
	// Save persists the plan document and its Markdown rendering under a
	// freshly allocated id and returns that id.
	Save(ctx context.Context, plan *domain.Plan, markdown string) (string, error)

	// Exists reports whether a plan with the given id has been saved.
	Exists(ctx context.Context, id string) (bool, error)

	// Load reads a stored plan back, including whether a PDF artifact
	// was rendered for it. A missing id yields KindNotFound.
	Load(ctx context.Context, id string) (*PlanRecord, error)

	// ReadArtifact returns the contents of one artifact file belonging
	// to the plan. A missing plan or file yields KindNotFound.
	ReadArtifact(ctx context.Context, id, filename string) ([]byte, error)
}
