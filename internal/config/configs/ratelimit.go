package configs

import "time"

// RateLimit configures the per-client request limiter on plan
// generation. A client may make at most Max requests per Window; the
// counter resets when the window rolls over.
type RateLimit struct {
	Max    int           `env:"MAX" envDefault:"10"`
	Window time.Duration `env:"WINDOW" envDefault:"60s"`
	// Shared selects the Postgres-backed counter store so multiple
	// server instances enforce one combined budget. Requires PSQL_ADDRESS.
	Shared bool `env:"SHARED" envDefault:"false"`
}
