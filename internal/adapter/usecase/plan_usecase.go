package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"audience-intel/internal/core/domain"
	"audience-intel/internal/core/extract"
	"audience-intel/internal/core/port"
	"audience-intel/internal/core/validate"
)

// PlanUseCase implements plan generation and retrieval. It sequences
// YAML parsing, input validation, the model call (or the dry-run
// fixture), response extraction, output validation and persistence.
// Persistence is always the last step, so nothing is stored when any
// earlier stage fails.
type PlanUseCase struct {
	repo port.PlanRepository
	llm  port.Completer
}

// NewPlanUseCase creates the usecase with its repository and completer.
func NewPlanUseCase(repo port.PlanRepository, llm port.Completer) *PlanUseCase {
	return &PlanUseCase{repo: repo, llm: llm}
}

// Generate produces, validates and persists a plan for the given YAML
// brief. See port.PlanUseCase for the contract.
func (u *PlanUseCase) Generate(ctx context.Context, yamlText string, dryRun bool) (*port.PlanEnvelope, error) {
	// parse in two passes: the first catches YAML syntax errors, the
	// second catches values that cannot populate the brief's fields
	var raw any
	if err := yaml.Unmarshal([]byte(yamlText), &raw); err != nil {
		return nil, domain.WrapError(domain.KindBadSyntax, "invalid YAML", err)
	}
	var brief domain.Brief
	if err := yaml.Unmarshal([]byte(yamlText), &brief); err != nil {
		return nil, domain.WrapError(domain.KindInputShape, "client brief does not match the expected shape", err)
	}
	if err := validate.Input(&brief); err != nil {
		return nil, err
	}

	if dryRun {
		plan := domain.DryRunFixture()
		id, err := u.repo.Save(ctx, plan, domain.DryRunMarkdown)
		if err != nil {
			return nil, err
		}
		return &port.PlanEnvelope{Plan: plan, Markdown: domain.DryRunMarkdown, ID: id}, nil
	}

	userMessage := fmt.Sprintf(
		"Please analyze this client data and generate audience intelligence:\n\n```yaml\n%s\n```",
		yamlText)
	response, err := u.llm.Complete(ctx, userMessage)
	if err != nil {
		return nil, fmt.Errorf("completion: %w", err)
	}

	jsonRaw, markdown, err := extract.Split(response)
	if err != nil {
		return nil, err
	}

	var plan domain.Plan
	if err = json.Unmarshal(jsonRaw, &plan); err != nil {
		return nil, domain.WrapError(domain.KindOutputShape, "model JSON does not match the plan shape", err)
	}
	warnings, err := validate.Output(&plan)
	if err != nil {
		return nil, err
	}

	id, err := u.repo.Save(ctx, &plan, markdown)
	if err != nil {
		return nil, err
	}

	env := &port.PlanEnvelope{Plan: &plan, Markdown: markdown, ID: id}
	if len(warnings) > 0 {
		env.Warnings = warnings
	}
	return env, nil
}

// Get loads a stored plan by id.
func (u *PlanUseCase) Get(ctx context.Context, id string) (*port.PlanRecord, error) {
	ok, err := u.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("plan %q not found", id))
	}
	return u.repo.Load(ctx, id)
}

// Artifact returns the raw contents of one stored artifact file.
func (u *PlanUseCase) Artifact(ctx context.Context, id, filename string) ([]byte, error) {
	ok, err := u.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("plan %q not found", id))
	}
	return u.repo.ReadArtifact(ctx, id, filename)
}
