// internal/cache/cache.go
package cache

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/offerscope/offerscope/internal/engine"
	"github.com/offerscope/offerscope/internal/scenario"
)

// ResultCache memoizes engine results keyed by the fingerprint of the
// sanitized input. The engine is deterministic, so a cached result is
// indistinguishable from a fresh run. Safe for concurrent use.
type ResultCache struct {
	mu      sync.RWMutex
	results map[string]scenario.Result
	logger  *zap.Logger

	// Statistics (accessed atomically)
	hits   uint64
	misses uint64
}

// New creates an empty result cache.
func New(logger *zap.Logger) *ResultCache {
	return &ResultCache{
		results: make(map[string]scenario.Result),
		logger:  logger,
	}
}

// Evaluate returns the cached result for the input, running the engine
// and storing the outcome on a miss.
func (c *ResultCache) Evaluate(in scenario.Input) scenario.Result {
	key := scenario.Fingerprint(in)

	c.mu.RLock()
	res, ok := c.results[key]
	c.mu.RUnlock()
	if ok {
		atomic.AddUint64(&c.hits, 1)
		return res
	}

	atomic.AddUint64(&c.misses, 1)
	res = engine.Evaluate(in)

	c.mu.Lock()
	c.results[key] = res
	c.mu.Unlock()

	c.logger.Debug("Scenario evaluated",
		zap.String("fingerprint", key),
		zap.Float64("net_outcome", res.NetOutcome))

	return res
}

// Get returns the cached result for the input without computing it.
func (c *ResultCache) Get(in scenario.Input) (scenario.Result, bool) {
	key := scenario.Fingerprint(in)

	c.mu.RLock()
	defer c.mu.RUnlock()

	res, ok := c.results[key]
	if ok {
		atomic.AddUint64(&c.hits, 1)
	}
	return res, ok
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}

// Stats returns the cumulative hit and miss counters.
func (c *ResultCache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}

// Reset drops all cached results and zeroes the counters.
func (c *ResultCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.results = make(map[string]scenario.Result)
	atomic.StoreUint64(&c.hits, 0)
	atomic.StoreUint64(&c.misses, 0)
}
