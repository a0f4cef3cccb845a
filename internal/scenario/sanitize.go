// internal/scenario/sanitize.go
package scenario

const (
	MinHorizonYears     = 1
	MaxHorizonYears     = 20
	DefaultHorizonYears = 5
)

// Sanitize returns a fully populated copy of the input with every field
// clamped into its valid domain. It never fails: out-of-range values are
// silently corrected so the engine can always produce a result. The
// surrounding form layer is responsible for warning the user about
// corrected fields.
func Sanitize(in Input) Input {
	out := in

	if out.HorizonYears == 0 {
		out.HorizonYears = DefaultHorizonYears
	}
	out.HorizonYears = clampInt(out.HorizonYears, MinHorizonYears, MaxHorizonYears)

	out.CurrentMonthlySalary = nonNegative(out.CurrentMonthlySalary)
	out.SalaryGrowthPct = nonNegative(out.SalaryGrowthPct)
	out.AnnualReturnPct = nonNegative(out.AnnualReturnPct)
	out.StartupMonthlySalary = nonNegative(out.StartupMonthlySalary)

	out.InitialOwnershipPct = nonNegative(out.InitialOwnershipPct)
	out.ExitValuation = nonNegative(out.ExitValuation)
	out.OptionCount = nonNegative(out.OptionCount)
	out.StrikePrice = nonNegative(out.StrikePrice)
	out.ExitPricePerShare = nonNegative(out.ExitPricePerShare)

	out.VestingYears = nonNegative(out.VestingYears)
	out.CliffYears = nonNegative(out.CliffYears)
	if out.CliffYears > out.VestingYears {
		out.CliffYears = out.VestingYears
	}

	if out.Mode != ModeOptions {
		out.Mode = ModeEquity
	}
	if out.Compounding != CompoundAnnually {
		out.Compounding = CompoundMonthly
	}

	// Rounds outside the simulated horizon can never apply; drop them so
	// the dilution path only carries events the yearly lookup can see.
	if len(out.Rounds) > 0 {
		rounds := make([]FinancingRound, 0, len(out.Rounds))
		for _, r := range out.Rounds {
			if r.Year < 1 || r.Year > out.HorizonYears {
				continue
			}
			r.DilutionPct = nonNegative(r.DilutionPct)
			r.PreMoneyValuation = nonNegative(r.PreMoneyValuation)
			r.AmountRaised = nonNegative(r.AmountRaised)
			rounds = append(rounds, r)
		}
		out.Rounds = rounds
	}

	return out
}

func nonNegative(v float64) float64 {
	if v < 0 || v != v { // v != v catches NaN
		return 0
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
