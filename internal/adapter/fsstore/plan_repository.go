// Package fsstore implements the PlanRepository port on the local
// filesystem. Every saved plan gets its own directory named by a ULID,
// holding ait.json and ait.md plus an optional ait.pdf. Records are
// never updated or deleted.
package fsstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"

	"audience-intel/internal/core/domain"
	"audience-intel/internal/core/port"
)

// PlanRepository stores plan artifacts under a root directory.
type PlanRepository struct {
	root      string
	renderPDF bool
	logger    *slog.Logger
}

// NewPlanRepository creates the store rooted at dir, creating it if
// needed. With renderPDF set, an ait.pdf is rendered for every save; a
// failed render is logged and does not fail the save.
func NewPlanRepository(dir string, renderPDF bool, logger *slog.Logger) (*PlanRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &PlanRepository{root: dir, renderPDF: renderPDF, logger: logger}, nil
}

// Save writes the plan artifacts under a freshly allocated ULID. ULIDs
// embed a millisecond timestamp, so ids sort by creation time.
func (r *PlanRepository) Save(ctx context.Context, plan *domain.Plan, markdown string) (string, error) {
	id := ulid.Make().String()
	dir := filepath.Join(r.root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", domain.WrapError(domain.KindStorage, "create plan directory", err)
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return "", domain.WrapError(domain.KindStorage, "encode plan", err)
	}
	if err = os.WriteFile(filepath.Join(dir, port.ArtifactJSON), data, 0o644); err != nil {
		return "", domain.WrapError(domain.KindStorage, "write plan JSON", err)
	}
	if err = os.WriteFile(filepath.Join(dir, port.ArtifactMarkdown), []byte(markdown), 0o644); err != nil {
		return "", domain.WrapError(domain.KindStorage, "write plan Markdown", err)
	}

	if r.renderPDF {
		if err = renderPDF(filepath.Join(dir, port.ArtifactPDF), plan, markdown); err != nil {
			r.logger.Warn("pdf render failed", slog.String("id", id), slog.Any("error", err))
		}
	}

	return id, nil
}

// Exists reports whether a plan directory with the given id is present.
func (r *PlanRepository) Exists(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	if _, err := os.Stat(filepath.Join(r.root, id)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, domain.WrapError(domain.KindStorage, "stat plan directory", err)
	}
	return true, nil
}

// Load reads a stored plan back from disk.
func (r *PlanRepository) Load(ctx context.Context, id string) (*port.PlanRecord, error) {
	jsonRaw, err := r.ReadArtifact(ctx, id, port.ArtifactJSON)
	if err != nil {
		return nil, err
	}
	markdown, err := r.ReadArtifact(ctx, id, port.ArtifactMarkdown)
	if err != nil {
		return nil, err
	}

	pdfExists := false
	if _, err = os.Stat(filepath.Join(r.root, id, port.ArtifactPDF)); err == nil {
		pdfExists = true
	}

	return &port.PlanRecord{
		ID:        id,
		JSON:      jsonRaw,
		Markdown:  string(markdown),
		PDFExists: pdfExists,
	}, nil
}

// ReadArtifact returns the bytes of one artifact file of a plan.
func (r *PlanRepository) ReadArtifact(ctx context.Context, id, filename string) ([]byte, error) {
	if !validID(id) || filename != filepath.Base(filename) {
		return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("plan %q not found", id))
	}
	data, err := os.ReadFile(filepath.Join(r.root, id, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewError(domain.KindNotFound,
				fmt.Sprintf("artifact %s of plan %q not found", filename, id))
		}
		return nil, domain.WrapError(domain.KindStorage, "read artifact", err)
	}
	return data, nil
}

// validID rejects ids that could escape the storage root. Anything that
// does not parse as a ULID cannot have been allocated by Save.
func validID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
