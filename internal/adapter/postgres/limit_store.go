// Package postgres implements the LimitStore port on PostgreSQL so a
// fleet of instances can enforce one combined request budget per client.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LimitStore counts requests in fixed windows in the rate_limits table.
// The counter row is upserted atomically, so concurrent instances never
// double-allow past the budget.
type LimitStore struct {
	pool   *pgxpool.Pool
	max    int
	window time.Duration
}

// NewLimitStore returns a store allowing max requests per window per key.
func NewLimitStore(pool *pgxpool.Pool, max int, window time.Duration) *LimitStore {
	return &LimitStore{pool: pool, max: max, window: window}
}

// Allow records one request for key and reports whether the key is still
// within budget for the current window.
func (s *LimitStore) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := time.Now().UTC().Truncate(s.window)

	var count int
	err := s.pool.QueryRow(ctx, `
        INSERT INTO rate_limits (client_key, window_start, count)
        VALUES ($1, $2, 1)
        ON CONFLICT (client_key, window_start)
        DO UPDATE SET count = rate_limits.count + 1
        RETURNING count`,
		key, windowStart,
	).Scan(&count)
	if err != nil {
		return false, err
	}

	return count <= s.max, nil
}
