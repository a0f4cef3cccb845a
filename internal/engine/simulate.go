// internal/engine/simulate.go
package engine

import (
	"math"

	"github.com/offerscope/offerscope/internal/scenario"
)

// simulateYears produces one record per simulated year. The investment
// value is a strict year-over-year recurrence: year k depends on year
// k-1, so rows are computed in order carrying only the prior value.
func simulateYears(in scenario.Input, events []scenario.DilutionEvent) []scenario.YearlyRecord {
	growth := in.SalaryGrowthPct / 100
	annualReturn := in.AnnualReturnPct / 100
	startupAnnual := in.StartupMonthlySalary * 12

	records := make([]scenario.YearlyRecord, 0, in.HorizonYears)
	invest := 0.0

	for k := 1; k <= in.HorizonYears; k++ {
		currentAnnual := in.CurrentMonthlySalary * 12 * math.Pow(1+growth, float64(k-1))

		var forgone, gain float64
		if currentAnnual > startupAnnual {
			forgone = currentAnnual - startupAnnual
		} else {
			gain = startupAnnual - currentAnnual
		}

		invest = nextInvestmentValue(invest, forgone, annualReturn, in.Compounding)

		vested := vestedPct(float64(k), in.VestingYears, in.CliffYears)
		ownership := ownershipAt(k, events, in.InitialOwnershipPct)

		records = append(records, scenario.YearlyRecord{
			Year:                k,
			CurrentAnnualSalary: currentAnnual,
			StartupAnnualSalary: startupAnnual,
			SalaryForgone:       forgone,
			SalaryGain:          gain,
			InvestmentValue:     invest,
			OpportunityCost:     invest,
			VestedPct:           vested,
			OwnershipPct:        ownership,
			Breakeven:           breakevenAt(in, invest, vested, ownership),
		})
	}

	return records
}

// nextInvestmentValue advances the opportunity-cost recurrence by one
// year. Monthly compounding treats the forgone salary as twelve
// month-end deposits growing at annualReturn/12; annual compounding adds
// the full year's amount before growth. A non-finite result falls back
// to the prior value instead of propagating forward.
func nextInvestmentValue(prev, forgoneAnnual, annualReturn float64, freq scenario.Compounding) float64 {
	var next float64

	switch {
	case freq == scenario.CompoundMonthly && forgoneAnnual > 0:
		r := annualReturn / 12
		if r == 0 {
			next = prev + forgoneAnnual
		} else {
			factor := math.Pow(1+r, 12)
			next = prev*factor + (forgoneAnnual/12)*(factor-1)/r
		}
	case freq == scenario.CompoundAnnually && forgoneAnnual > 0:
		next = (prev + forgoneAnnual) * (1 + annualReturn)
	default:
		next = prev * (1 + annualReturn)
	}

	if math.IsNaN(next) || math.IsInf(next, 0) {
		return prev
	}
	return next
}

// vestedPct returns the vested percentage for a year: zero through the
// cliff, full at or after the vesting period, linear in between. A zero
// vesting period vests immediately.
func vestedPct(year, vesting, cliff float64) float64 {
	if vesting <= 0 {
		return 100
	}
	if year >= vesting {
		return 100
	}
	if year <= cliff {
		return 0
	}

	pct := 100 * year / vesting
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// breakevenAt computes the exit valuation (equity mode) or per-share
// price (options mode) at which the vested, diluted stake exactly
// offsets the cumulative opportunity cost at this year.
func breakevenAt(in scenario.Input, opportunityCost, vested, ownership float64) float64 {
	if in.Mode == scenario.ModeOptions {
		vestedOptions := in.OptionCount * vested / 100
		if vestedOptions <= 0 {
			return in.StrikePrice
		}
		return opportunityCost/vestedOptions + in.StrikePrice
	}

	equityFraction := (ownership / 100) * (vested / 100)
	if equityFraction <= 0 {
		return 0
	}
	return opportunityCost / equityFraction
}
