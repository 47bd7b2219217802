package port

import "context"

// LimitStore counts requests per client key over a rolling window. It is
// injected into the HTTP layer so tests can drive it deterministically
// and deployments can swap the in-memory store for a shared one.
type LimitStore interface {
	// Allow records one request for key and reports whether the key is
	// still within its window budget.
	Allow(ctx context.Context, key string) (bool, error)
}
