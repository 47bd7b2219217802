package port

import "context"

// Completer is the outbound port to the generative text provider. One
// call produces one free-text response; there are no retries anywhere in
// the pipeline, so provider failures propagate as-is.
type Completer interface {
	Complete(ctx context.Context, userMessage string) (string, error)
}
