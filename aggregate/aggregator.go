// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/lancer/core"
	"github.com/poiesic/lancer/sources"
)

// Aggregator queries all configured adapters concurrently and merges
// their results.
type Aggregator struct {
	adapters      []sources.Adapter
	pool          *ants.Pool
	sourceTimeout time.Duration
	maxAttempts   int
	retryDelay    time.Duration
	monitor       Monitor
	logger        *slog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator) error

// WithPoolSize sets the worker pool size for concurrent source queries.
// Default is one worker per adapter.
func WithPoolSize(size int) Option {
	return func(a *Aggregator) error {
		if size < 1 {
			size = 1
		}

		if a.pool != nil {
			a.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		a.pool = pool
		return nil
	}
}

// WithSourceTimeout bounds each individual source query. The deadline
// covers all retry attempts against that source. Default is 10 seconds.
func WithSourceTimeout(timeout time.Duration) Option {
	return func(a *Aggregator) error {
		if timeout > 0 {
			a.sourceTimeout = timeout
		}
		return nil
	}
}

// WithRetry sets the attempt count and base delay for retrying a failed
// source. Default is 2 attempts with a 250ms base delay.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(a *Aggregator) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		a.maxAttempts = maxAttempts
		if baseDelay > 0 {
			a.retryDelay = baseDelay
		}
		return nil
	}
}

// WithMonitor sets an observer for per-source outcomes.
func WithMonitor(monitor Monitor) Option {
	return func(a *Aggregator) error {
		if monitor != nil {
			a.monitor = monitor
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// New creates an aggregator over the given adapters. Adapter order is
// significant: it determines merge order and therefore the stable
// positions used downstream as ranking tie-breakers.
func New(adapters []sources.Adapter, opts ...Option) (*Aggregator, error) {
	if len(adapters) == 0 {
		return nil, ErrNoAdapters
	}

	pool, err := ants.NewPool(len(adapters))
	if err != nil {
		return nil, err
	}

	a := &Aggregator{
		adapters:      adapters,
		pool:          pool,
		sourceTimeout: 10 * time.Second,
		maxAttempts:   2,
		retryDelay:    250 * time.Millisecond,
		monitor:       &noopMonitor{},
		logger:        slog.Default().With("component", "aggregate"),
	}

	for _, opt := range opts {
		if optErr := opt(a); optErr != nil {
			a.Release()
			return nil, optErr
		}
	}

	return a, nil
}

// Release frees the worker pool. The aggregator must not be used after
// calling Release.
func (a *Aggregator) Release() {
	if a.pool != nil {
		a.pool.Release()
	}
}

// Search queries every adapter concurrently and merges the results.
// Returns ErrNoSourcesAvailable only when all adapters failed; the
// wrapped error chain records each adapter's failure.
func (a *Aggregator) Search(ctx context.Context, query core.Query) ([]core.MergedResult, error) {
	a.monitor.Start(query.Text)

	// Indexed slots keep collection independent of completion order.
	perSource := make([][]core.RawResult, len(a.adapters))
	perSourceErr := make([]error, len(a.adapters))

	var wg sync.WaitGroup
	for i, adapter := range a.adapters {
		i, adapter := i, adapter
		wg.Add(1)

		run := func() {
			defer wg.Done()
			perSource[i], perSourceErr[i] = a.querySource(ctx, adapter, query)
		}

		// Submit only fails when the pool is released; fall back to
		// running inline so an in-flight query still completes.
		if err := a.pool.Submit(run); err != nil {
			run()
		}
	}
	wg.Wait()

	var failures []error
	succeeded := 0
	for i, adapter := range a.adapters {
		if perSourceErr[i] != nil {
			a.logger.Warn("source failed", "source", adapter.Name(), "error", perSourceErr[i])
			a.monitor.SourceFailed(adapter.Name(), perSourceErr[i])
			failures = append(failures, fmt.Errorf("%s: %w", adapter.Name(), perSourceErr[i]))
			continue
		}
		succeeded++
		a.monitor.SourceSucceeded(adapter.Name(), len(perSource[i]))
	}

	if succeeded == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoSourcesAvailable, errors.Join(failures...))
	}

	merged := merge(perSource)
	a.monitor.Finish(merged)
	a.logger.Debug("aggregation complete", "query", query.Text, "sources", succeeded, "results", len(merged))
	return merged, nil
}

// querySource runs one adapter under its own deadline, retrying
// transient failures. The shared context still cancels everything.
func (a *Aggregator) querySource(ctx context.Context, adapter sources.Adapter, query core.Query) ([]core.RawResult, error) {
	sourceCtx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
	defer cancel()

	var results []core.RawResult
	err := retryWithBackoff(sourceCtx, func() error {
		var searchErr error
		results, searchErr = adapter.Search(sourceCtx, query)
		return searchErr
	}, a.maxAttempts, a.retryDelay)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// merge deduplicates raw results across sources by URL fingerprint,
// preserving adapter registration order. The first occurrence of a URL
// fixes the merged result's position; later occurrences contribute their
// source name and can fill in missing fields.
func merge(perSource [][]core.RawResult) []core.MergedResult {
	merged := make([]core.MergedResult, 0)
	byFingerprint := make(map[core.ID]int)

	for _, results := range perSource {
		for _, raw := range results {
			fp := core.FingerprintURL(raw.URL)

			idx, seen := byFingerprint[fp]
			if !seen {
				merged = append(merged, core.MergedResult{
					RawResult:   raw,
					Fingerprint: fp,
					Sources:     []string{raw.SourceName},
					Position:    len(merged) + 1,
				})
				byFingerprint[fp] = len(merged) - 1
				continue
			}

			existing := &merged[idx]
			if !hasSource(existing.Sources, raw.SourceName) {
				existing.Sources = append(existing.Sources, raw.SourceName)
			}
			// Corroborating copies improve the merged record: the
			// earliest date, the best source score, the fuller snippet.
			if raw.PublishedAt != nil &&
				(existing.PublishedAt == nil || raw.PublishedAt.Before(*existing.PublishedAt)) {
				existing.PublishedAt = raw.PublishedAt
			}
			if raw.SourceScore > existing.SourceScore {
				existing.SourceScore = raw.SourceScore
			}
			if len(raw.Snippet) > len(existing.Snippet) {
				existing.Snippet = raw.Snippet
			}
		}
	}

	return merged
}

func hasSource(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
