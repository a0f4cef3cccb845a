package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/offerscope/offerscope/internal/engine"
	"github.com/offerscope/offerscope/internal/scenario"
)

func cachedInput(startupMonthly float64) scenario.Input {
	return scenario.Input{
		HorizonYears:         5,
		CurrentMonthlySalary: 10000,
		StartupMonthlySalary: startupMonthly,
		AnnualReturnPct:      7,
		Mode:                 scenario.ModeEquity,
		InitialOwnershipPct:  0.5,
		ExitValuation:        100_000_000,
		VestingYears:         4,
	}
}

func TestCacheEvaluateMatchesEngine(t *testing.T) {
	c := New(zap.NewNop())
	in := cachedInput(8000)

	assert.Equal(t, engine.Evaluate(in), c.Evaluate(in))
}

func TestCacheHitsAndMisses(t *testing.T) {
	c := New(zap.NewNop())

	c.Evaluate(cachedInput(8000))
	c.Evaluate(cachedInput(8000))
	c.Evaluate(cachedInput(9000))

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(2), misses)
	assert.Equal(t, 2, c.Len())
}

func TestCacheGetWithoutCompute(t *testing.T) {
	c := New(zap.NewNop())
	in := cachedInput(8000)

	_, ok := c.Get(in)
	require.False(t, ok)

	want := c.Evaluate(in)
	got, ok := c.Get(in)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCacheKeyedBySanitizedInput(t *testing.T) {
	c := New(zap.NewNop())

	raw := cachedInput(8000)
	raw.HorizonYears = 0 // sanitizes to the default horizon

	canonical := cachedInput(8000)
	canonical.HorizonYears = scenario.DefaultHorizonYears

	c.Evaluate(raw)
	_, ok := c.Get(canonical)
	assert.True(t, ok, "raw and sanitized forms share a cache entry")
}

func TestCacheReset(t *testing.T) {
	c := New(zap.NewNop())
	c.Evaluate(cachedInput(8000))

	c.Reset()

	assert.Equal(t, 0, c.Len())
	hits, misses := c.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New(zap.NewNop())

	var wg sync.WaitGroup
	numGoroutines := 10

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				in := cachedInput(5000 + float64(j)*100)
				res := c.Evaluate(in)
				assert.Equal(t, res.TotalPayout-res.TotalOpportunityCost, res.NetOutcome)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 20, c.Len())
	hits, misses := c.Stats()
	assert.Equal(t, uint64(200), hits+misses)
}
