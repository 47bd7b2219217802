// Package ratelimit provides the in-process request counter store. It
// is the default LimitStore; deployments spanning several instances swap
// in the Postgres-backed store instead.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Memory counts requests per key in a fixed window held in process
// memory. State is lost on restart, which is acceptable for this
// limiter. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*entry

	now func() time.Time // overridable in tests
}

// NewMemory creates a store allowing max requests per window per key.
func NewMemory(max int, window time.Duration) *Memory {
	return &Memory{
		max:     max,
		window:  window,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Allow records one request for key and reports whether it fits the
// current window.
func (m *Memory) Allow(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	e, ok := m.entries[key]
	if !ok || now.After(e.resetAt) {
		m.entries[key] = &entry{count: 1, resetAt: now.Add(m.window)}
		return true, nil
	}
	if e.count >= m.max {
		return false, nil
	}
	e.count++
	return true, nil
}
