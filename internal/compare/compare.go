// internal/compare/compare.go
package compare

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/offerscope/offerscope/internal/cache"
	"github.com/offerscope/offerscope/internal/scenario"
)

// Outcome pairs one scenario file with its evaluated result.
type Outcome struct {
	Path   string
	Result scenario.Result
}

// Comparator evaluates batches of scenario files side by side. Runs are
// fanned out across workers; the engine is pure, so concurrent
// evaluation needs no coordination beyond the shared result cache.
type Comparator struct {
	logger  *zap.Logger
	cache   *cache.ResultCache
	workers int
}

// New creates a comparator with its own result cache.
func New(logger *zap.Logger, workers int) *Comparator {
	if workers <= 0 {
		workers = 1
	}
	return &Comparator{
		logger:  logger,
		cache:   cache.New(logger),
		workers: workers,
	}
}

// Files loads and evaluates every path, returning outcomes ranked by
// net outcome, best first. Ties keep the input order. Fails on the
// first unreadable file.
func (c *Comparator) Files(ctx context.Context, paths []string) ([]Outcome, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files given")
	}

	outcomes := make([]Outcome, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			in, err := scenario.LoadFile(path)
			if err != nil {
				return err
			}

			res := c.cache.Evaluate(in)
			outcomes[i] = Outcome{Path: path, Result: res}

			c.logger.Debug("Scenario compared",
				zap.String("file", path),
				zap.Float64("net_outcome", res.NetOutcome))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].Result.NetOutcome > outcomes[j].Result.NetOutcome
	})

	return outcomes, nil
}

// CacheStats exposes the underlying cache counters.
func (c *Comparator) CacheStats() (hits, misses uint64) {
	return c.cache.Stats()
}
