// internal/engine/dilution.go
package engine

import (
	"sort"

	"github.com/offerscope/offerscope/internal/scenario"
)

// simulateDilution walks the financing rounds in ascending year order and
// applies each round's dilution multiplicatively to the running ownership.
// Same-year rounds keep their input order. Returns nil for options mode
// or when dilution simulation is disabled.
func simulateDilution(in scenario.Input) []scenario.DilutionEvent {
	if in.Mode != scenario.ModeEquity || !in.SimulateDilution || len(in.Rounds) == 0 {
		return nil
	}

	rounds := make([]scenario.FinancingRound, len(in.Rounds))
	copy(rounds, in.Rounds)
	sort.SliceStable(rounds, func(i, j int) bool {
		return rounds[i].Year < rounds[j].Year
	})

	ownership := in.InitialOwnershipPct
	events := make([]scenario.DilutionEvent, 0, len(rounds))

	for _, r := range rounds {
		d := roundDilution(r)
		ownership *= 1 - d
		events = append(events, scenario.DilutionEvent{
			Year:              r.Year,
			DilutionPct:       d * 100,
			OwnershipAfterPct: ownership,
		})
	}

	return events
}

// roundDilution returns the dilution fraction for one round: the direct
// percentage when given, otherwise raised/(preMoney+raised). A zero or
// negative post-money valuation dilutes nothing.
func roundDilution(r scenario.FinancingRound) float64 {
	if r.DilutionPct > 0 {
		d := r.DilutionPct / 100
		if d > 1 {
			d = 1
		}
		return d
	}

	postMoney := r.PreMoneyValuation + r.AmountRaised
	if postMoney <= 0 {
		return 0
	}
	return r.AmountRaised / postMoney
}

// ownershipAt returns the ownership percentage in effect at the given
// year: the most recent dilution event at or before it, or the initial
// ownership when no round has applied yet.
func ownershipAt(year int, events []scenario.DilutionEvent, initialPct float64) float64 {
	ownership := initialPct
	for _, ev := range events {
		if ev.Year > year {
			break
		}
		ownership = ev.OwnershipAfterPct
	}
	return ownership
}
