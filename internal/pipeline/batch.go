// Package pipeline fans scraped placement rows out to the resolution
// engine. Each row resolves independently, so batches parallelize with
// no coordination beyond a worker cap.
package pipeline

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ptcgmeta/tracker/internal/archetype"
)

// DefaultWorkers caps concurrent resolutions when the caller does not.
const DefaultWorkers = 8

// Placement is one scraped tournament-result row awaiting resolution.
type Placement struct {
	SpriteURLs []string              `json:"sprite_urls"`
	RawLabel   string                `json:"raw_label"`
	Deck       []archetype.CardCount `json:"deck,omitempty"`
}

// Resolver is the engine surface the pipeline drives; satisfied by
// *archetype.Normalizer.
type Resolver interface {
	ResolveWithConfidence(spriteURLs []string, rawLabel string, deck []archetype.CardCount) archetype.Resolution
}

// BatchResolver resolves placement batches concurrently.
type BatchResolver struct {
	resolver Resolver
	workers  int
	logger   *slog.Logger
}

// NewBatchResolver builds a batch resolver. workers <= 0 selects
// DefaultWorkers; logger may be nil.
func NewBatchResolver(resolver Resolver, workers int, logger *slog.Logger) *BatchResolver {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchResolver{resolver: resolver, workers: workers, logger: logger}
}

// ResolveAll resolves every placement and returns results in input order.
// Individual rows never fail; the only error is context cancellation.
func (b *BatchResolver) ResolveAll(ctx context.Context, rows []Placement) ([]archetype.Resolution, error) {
	results := make([]archetype.Resolution, len(rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = b.resolver.ResolveWithConfidence(row.SpriteURLs, row.RawLabel, row.Deck)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.logger.Debug("batch resolved", "placements", len(rows), "workers", b.workers)
	return results, nil
}
