package resolve

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/lnsources/internal/model"
	"github.com/nao1215/lnsources/internal/source"
)

// DefaultConcurrency is the number of queries resolved at once when no
// WithConcurrency option is given.
const DefaultConcurrency = 8

// BatchResolver resolves many queries against one registry concurrently.
type BatchResolver struct {
	reg *source.Registry

	// concurrency is the maximum number of queries in flight.
	concurrency int

	logger *slog.Logger
}

// Option configures a BatchResolver.
type Option func(*BatchResolver)

// WithLogger sets the logger used for batch-level logging.
// A nil logger leaves the default in place.
func WithLogger(logger *slog.Logger) Option {
	return func(b *BatchResolver) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithConcurrency sets the maximum number of concurrent lookups.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(b *BatchResolver) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchResolver creates a BatchResolver for reg.
func NewBatchResolver(reg *source.Registry, opts ...Option) *BatchResolver {
	b := &BatchResolver{
		reg:         reg,
		concurrency: DefaultConcurrency,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Concurrency returns the configured concurrency limit.
func (b *BatchResolver) Concurrency() int {
	return b.concurrency
}

// Resolve resolves every query and returns one Resolution per query, in
// the order given. Queries are URLs unless byName is set.
//
// When ctx is cancelled the remaining queries are skipped and ctx.Err() is
// returned along with the results gathered so far; skipped slots hold the
// zero Resolution.
func (b *BatchResolver) Resolve(ctx context.Context, queries []string, byName bool) ([]model.Resolution, error) {
	results := make([]model.Resolution, len(queries))
	err := b.ResolveWithCallback(ctx, queries, byName, func(res model.Resolution, index int) {
		// Each goroutine owns its own slot.
		results[index] = res
	})
	return results, err
}

// ResolveWithCallback resolves every query and calls callback with each
// result and the index of its query. callback runs on the goroutine that
// resolved the query.
func (b *BatchResolver) ResolveWithCallback(
	ctx context.Context,
	queries []string,
	byName bool,
	callback func(res model.Resolution, index int),
) error {
	b.logger.Debug("starting batch resolution",
		"total_queries", len(queries),
		"concurrency", b.concurrency,
	)
	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, query := range queries {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var res model.Resolution
			if byName {
				res = ResolveName(b.reg, query)
			} else {
				res = ResolveURL(b.reg, query)
			}

			switch res.Status {
			case model.StatusRejected:
				b.logger.Info("query points at rejected source",
					"query", query,
					"host", res.Host,
					"reason", res.Reason,
				)
			case model.StatusMatched:
				b.logger.Debug("query resolved", "query", query, "scraper", res.Scraper)
			default:
				b.logger.Debug("no scraper for query", "query", query)
			}

			callback(res, i)
			return nil
		})
	}

	err := g.Wait()

	b.logger.Debug("batch resolution complete",
		"total_queries", len(queries),
		"elapsed", time.Since(startTime),
	)
	return err
}
