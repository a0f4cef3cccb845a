package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveIRRTwoPointRoundTrip(t *testing.T) {
	// Single outflow at year 1, single inflow at the horizon. The solved
	// rate must discount the stream back to (nearly) zero.
	outflows := []float64{24000, 0, 0, 0, 0}
	payout := 120000.0

	rate := solveIRR(outflows, payout, 5)
	require.NotNil(t, rate)

	r := *rate
	npv := -24000/(1+r) + 120000/math.Pow(1+r, 5)
	assert.InDelta(t, 0, npv, 1e-6, "solved rate must zero the NPV")

	t.Logf("solved IRR: %.6f", r)
}

func TestSolveIRRKnownRate(t *testing.T) {
	// 10000 out at year 1, 10000*(1.25)^2 back two years later: the
	// stream is constructed to have an exact 25% internal rate.
	outflows := []float64{10000, 0, 0}
	payout := 10000 * math.Pow(1.25, 2)

	rate := solveIRR(outflows, payout, 3)
	require.NotNil(t, rate)
	assert.InDelta(t, 0.25, *rate, 1e-4)
}

func TestSolveIRRNonPositivePayout(t *testing.T) {
	assert.Nil(t, solveIRR([]float64{24000}, 0, 1))
	assert.Nil(t, solveIRR([]float64{24000}, -500, 1))
}

func TestSolveIRRNoSignChange(t *testing.T) {
	// Inflow only: NPV is positive for every admissible rate, so the
	// iteration must diverge past the upper bound and report no result.
	assert.Nil(t, solveIRR([]float64{0, 0, 0}, 100000, 3))
}

func TestSolveIRRMultiYearOutflows(t *testing.T) {
	outflows := []float64{20000, 21000, 22000, 23000}
	payout := 250000.0

	rate := solveIRR(outflows, payout, 4)
	require.NotNil(t, rate)

	r := *rate
	var npv float64
	for k, f := range outflows {
		npv -= f / math.Pow(1+r, float64(k+1))
	}
	npv += payout / math.Pow(1+r, 4)
	assert.InDelta(t, 0, npv, 1e-6)
}
