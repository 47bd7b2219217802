// Package gemini implements the Completer port on Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"

	"audience-intel/internal/config/configs"
)

// ErrNotConfigured is returned by the Unconfigured completer when a
// generation is attempted without provider credentials.
var ErrNotConfigured = errors.New("llm: no API key configured")

// Completer generates plan text via the Gemini API. The system
// instruction is loaded once at construction and reused for every call.
type Completer struct {
	client      *genai.Client
	model       string
	system      string
	temperature float32
}

// New creates a Completer from configuration. The prompt file named by
// cfg.PromptPath must exist and be non-empty.
func New(ctx context.Context, cfg configs.LLM) (*Completer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: API key is required")
	}

	system, err := os.ReadFile(cfg.PromptPath)
	if err != nil {
		return nil, fmt.Errorf("read system prompt: %w", err)
	}
	if len(system) == 0 {
		return nil, fmt.Errorf("system prompt %s is empty", cfg.PromptPath)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Completer{
		client:      client,
		model:       cfg.Model,
		system:      string(system),
		temperature: 0.7,
	}, nil
}

// Complete sends one generation request and returns the raw response
// text. There is no retry and no deadline beyond what ctx carries.
func (c *Completer) Complete(ctx context.Context, userMessage string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(userMessage),
		&genai.GenerateContentConfig{
			Temperature:       genai.Ptr(c.temperature),
			SystemInstruction: genai.NewContentFromText(c.system, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

// Unconfigured is a Completer stand-in used when no API key is set. It
// lets the server start for dry-run-only use and fails every real call.
type Unconfigured struct{}

func (Unconfigured) Complete(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
