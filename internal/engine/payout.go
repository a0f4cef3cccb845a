// internal/engine/payout.go
package engine

import (
	"github.com/offerscope/offerscope/internal/scenario"
)

// payoutCalculator computes the horizon-year payout for one equity mode.
type payoutCalculator interface {
	Payout(in scenario.Input, finalOwnershipPct, finalVestedPct float64) float64
}

// payoutRegistry maps equity modes to their payout calculators.
var payoutRegistry = make(map[scenario.EquityMode]payoutCalculator)

// registerPayout registers a calculator for an equity mode.
func registerPayout(mode scenario.EquityMode, calc payoutCalculator) {
	payoutRegistry[mode] = calc
}

func init() {
	registerPayout(scenario.ModeEquity, equityPayout{})
	registerPayout(scenario.ModeOptions, optionsPayout{})
}

// payoutFor evaluates the registered calculator for the input's mode.
// Sanitize guarantees the mode is registered; equity is the fallback.
func payoutFor(in scenario.Input, finalOwnershipPct, finalVestedPct float64) float64 {
	calc, ok := payoutRegistry[in.Mode]
	if !ok {
		calc = payoutRegistry[scenario.ModeEquity]
	}
	return calc.Payout(in, finalOwnershipPct, finalVestedPct)
}

// equityPayout values a direct equity grant at exit.
type equityPayout struct{}

func (equityPayout) Payout(in scenario.Input, finalOwnershipPct, finalVestedPct float64) float64 {
	return in.ExitValuation * (finalOwnershipPct / 100) * (finalVestedPct / 100)
}

// optionsPayout values a stock-option grant at exit. Underwater options
// pay zero rather than negative.
type optionsPayout struct{}

func (optionsPayout) Payout(in scenario.Input, _ float64, finalVestedPct float64) float64 {
	perShare := in.ExitPricePerShare - in.StrikePrice
	if perShare < 0 {
		perShare = 0
	}
	return in.OptionCount * perShare * (finalVestedPct / 100)
}
