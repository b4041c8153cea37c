package sources

import (
	"context"

	"github.com/poiesic/lancer/core"
)

// Adapter wraps one external search provider behind a uniform query
// interface. Implementations must be thread-safe for concurrent use.
type Adapter interface {
	// Search runs the query against the provider and returns normalized
	// results, bounded by the query's effective max results. The context
	// carries the per-source deadline; on timeout or transport failure the
	// adapter returns an error wrapping ErrSourceUnavailable and never
	// retries on its own.
	Search(ctx context.Context, query core.Query) ([]core.RawResult, error)

	// Name identifies the provider for logging and result attribution.
	Name() string
}
