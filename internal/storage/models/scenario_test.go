package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerscope/offerscope/internal/engine"
	"github.com/offerscope/offerscope/internal/scenario"
)

func TestNewScenarioRecord(t *testing.T) {
	res := engine.Evaluate(scenario.Input{
		Name:                 "seed offer",
		HorizonYears:         5,
		CurrentMonthlySalary: 10000,
		StartupMonthlySalary: 8000,
		AnnualReturnPct:      7,
		Mode:                 scenario.ModeEquity,
		InitialOwnershipPct:  0.5,
		ExitValuation:        100_000_000,
		VestingYears:         4,
		CliffYears:           1,
	})

	rec, err := NewScenarioRecord(res)
	require.NoError(t, err)

	assert.NotEqual(t, "", rec.ID.String())
	assert.Equal(t, "seed offer", rec.Name)
	assert.Equal(t, "equity", rec.Mode)
	assert.Equal(t, scenario.Fingerprint(res.Input), rec.Fingerprint)
	assert.Equal(t, res.NetOutcome, rec.NetOutcome)

	decoded, err := rec.DecodeResult()
	require.NoError(t, err)
	assert.Equal(t, res, decoded)

	input, err := rec.DecodeInput()
	require.NoError(t, err)
	assert.Equal(t, res.Input, input)
}
