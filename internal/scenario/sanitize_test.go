package scenario

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDefaults(t *testing.T) {
	out := Sanitize(Input{})

	assert.Equal(t, DefaultHorizonYears, out.HorizonYears)
	assert.Equal(t, ModeEquity, out.Mode)
	assert.Equal(t, CompoundMonthly, out.Compounding)
	assert.Equal(t, 0.0, out.CurrentMonthlySalary)
}

func TestSanitizeClampsHorizon(t *testing.T) {
	assert.Equal(t, MaxHorizonYears, Sanitize(Input{HorizonYears: 50}).HorizonYears)
	assert.Equal(t, MinHorizonYears, Sanitize(Input{HorizonYears: -3}).HorizonYears)
	assert.Equal(t, 12, Sanitize(Input{HorizonYears: 12}).HorizonYears)
}

func TestSanitizeClampsNegatives(t *testing.T) {
	out := Sanitize(Input{
		CurrentMonthlySalary: -5000,
		SalaryGrowthPct:      -3,
		AnnualReturnPct:      math.NaN(),
		StartupMonthlySalary: -1,
		InitialOwnershipPct:  -0.5,
		ExitValuation:        -1e9,
		OptionCount:          -100,
		StrikePrice:          -2,
		ExitPricePerShare:    -10,
	})

	assert.Equal(t, 0.0, out.CurrentMonthlySalary)
	assert.Equal(t, 0.0, out.SalaryGrowthPct)
	assert.Equal(t, 0.0, out.AnnualReturnPct)
	assert.Equal(t, 0.0, out.StartupMonthlySalary)
	assert.Equal(t, 0.0, out.InitialOwnershipPct)
	assert.Equal(t, 0.0, out.ExitValuation)
	assert.Equal(t, 0.0, out.OptionCount)
	assert.Equal(t, 0.0, out.StrikePrice)
	assert.Equal(t, 0.0, out.ExitPricePerShare)
}

func TestSanitizeCliffNeverExceedsVesting(t *testing.T) {
	out := Sanitize(Input{VestingYears: 4, CliffYears: 6})
	assert.Equal(t, 4.0, out.CliffYears)

	out = Sanitize(Input{VestingYears: 4, CliffYears: -1})
	assert.Equal(t, 0.0, out.CliffYears)
}

func TestSanitizeDropsRoundsOutsideHorizon(t *testing.T) {
	out := Sanitize(Input{
		HorizonYears: 5,
		Rounds: []FinancingRound{
			{Year: 0, DilutionPct: 10},
			{Year: 3, DilutionPct: 20},
			{Year: 9, DilutionPct: 30},
		},
	})

	assert.Len(t, out.Rounds, 1)
	assert.Equal(t, 3, out.Rounds[0].Year)
}

func TestSanitizeDoesNotMutateInput(t *testing.T) {
	in := Input{HorizonYears: 99, CurrentMonthlySalary: -10}
	_ = Sanitize(in)

	assert.Equal(t, 99, in.HorizonYears)
	assert.Equal(t, -10.0, in.CurrentMonthlySalary)
}
