// internal/engine/analysis.go
package engine

import (
	"math"

	"github.com/offerscope/offerscope/internal/scenario"
)

// netPresentValue discounts the net outcome at the same assumed return
// rate used for opportunity-cost compounding. No separate discount-rate
// input exists: the user's stated alternative-investment return is the
// discount rate.
func netPresentValue(netOutcome, annualReturnPct float64, horizonYears int) float64 {
	return netOutcome / math.Pow(1+annualReturnPct/100, float64(horizonYears))
}

// clearWin reports whether total startup salary over the horizon
// (straight-line, undiscounted) strictly exceeds total current-job
// salary (growth compounded annually). This is a coarse salary-only
// signal, independent of any equity outcome. Only the current-job side
// compounds.
func clearWin(in scenario.Input) bool {
	growth := in.SalaryGrowthPct / 100

	var totalCurrent float64
	for k := 1; k <= in.HorizonYears; k++ {
		totalCurrent += in.CurrentMonthlySalary * 12 * math.Pow(1+growth, float64(k-1))
	}

	totalStartup := in.StartupMonthlySalary * 12 * float64(in.HorizonYears)
	return totalStartup > totalCurrent
}

// chartSeries re-projects yearly records into the per-year series the
// presentation layer charts: breakeven threshold and cumulative
// opportunity cost.
func chartSeries(yearly []scenario.YearlyRecord) (breakeven, opportunity []scenario.SeriesPoint) {
	breakeven = make([]scenario.SeriesPoint, 0, len(yearly))
	opportunity = make([]scenario.SeriesPoint, 0, len(yearly))

	for _, row := range yearly {
		breakeven = append(breakeven, scenario.SeriesPoint{Year: row.Year, Value: row.Breakeven})
		opportunity = append(opportunity, scenario.SeriesPoint{Year: row.Year, Value: row.OpportunityCost})
	}

	return breakeven, opportunity
}
