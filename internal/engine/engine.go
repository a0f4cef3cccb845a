// internal/engine/engine.go
//
// The scenario calculation engine: a single-direction pipeline of pure
// functions turning a scenario input into year-by-year projections and
// summary metrics. Every run is a fresh computation over a sanitized
// copy of the input; the engine holds no state between runs, never
// performs I/O, and never returns an error. Callers may invoke Evaluate
// concurrently with distinct inputs.
package engine

import (
	"github.com/offerscope/offerscope/internal/scenario"
)

// Evaluate runs the full pipeline: sanitize, dilution, yearly
// simulation, payout, then NPV, IRR, and the breakeven/clear-win
// analysis. The returned result is owned by the caller.
func Evaluate(raw scenario.Input) scenario.Result {
	in := scenario.Sanitize(raw)

	events := simulateDilution(in)
	yearly := simulateYears(in, events)

	finalVested := vestedPct(float64(in.HorizonYears), in.VestingYears, in.CliffYears)
	finalOwnership := in.InitialOwnershipPct
	var totalOpportunityCost float64
	if n := len(yearly); n > 0 {
		last := yearly[n-1]
		finalVested = last.VestedPct
		finalOwnership = last.OwnershipPct
		totalOpportunityCost = last.InvestmentValue
	}

	totalPayout := payoutFor(in, finalOwnership, finalVested)
	netOutcome := totalPayout - totalOpportunityCost

	outflows := make([]float64, len(yearly))
	for i, row := range yearly {
		outflows[i] = row.SalaryForgone
	}

	breakevenSeries, opportunitySeries := chartSeries(yearly)

	var totalDilution float64
	if in.InitialOwnershipPct > 0 {
		totalDilution = 100 * (1 - finalOwnership/in.InitialOwnershipPct)
	}

	return scenario.Result{
		Input: in,

		TotalPayout:          totalPayout,
		TotalOpportunityCost: totalOpportunityCost,
		NetOutcome:           netOutcome,
		NetPresentValue:      netPresentValue(netOutcome, in.AnnualReturnPct, in.HorizonYears),
		IRR:                  solveIRR(outflows, totalPayout, in.HorizonYears),

		InitialOwnershipPct: in.InitialOwnershipPct,
		FinalOwnershipPct:   finalOwnership,
		TotalDilutionPct:    totalDilution,
		FinalVestedPct:      finalVested,

		ClearWin: clearWin(in),

		DilutionEvents: events,
		Yearly:         yearly,

		BreakevenSeries:   breakevenSeries,
		OpportunitySeries: opportunitySeries,
	}
}
