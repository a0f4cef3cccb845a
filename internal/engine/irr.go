// internal/engine/irr.go
package engine

import "math"

// Newton-Raphson solver parameters. Iteration stops on convergence, on a
// stalled derivative, on leaving the rate bounds, or after the cap.
const (
	irrInitialGuess  = 0.10
	irrTolerance     = 1e-6
	irrMaxIterations = 100
	irrLowerBound    = -0.99
	irrUpperBound    = 10.0
)

// solveIRR finds the rate that zeroes the net present value of the
// cash-flow stream: each year's forgone salary is an outflow at that
// year, the terminal payout a single inflow at the horizon. Returns nil
// when no solution exists under this model: a non-positive terminal
// payout, a stalled or divergent iteration, or no convergence within the
// iteration cap.
func solveIRR(outflows []float64, payout float64, horizonYears int) *float64 {
	if payout <= 0 {
		return nil
	}

	r := irrInitialGuess
	for i := 0; i < irrMaxIterations; i++ {
		npv, deriv := irrValueAndDerivative(outflows, payout, horizonYears, r)

		if math.Abs(npv) < irrTolerance {
			rate := r
			return &rate
		}
		if math.Abs(deriv) < irrTolerance {
			return nil
		}

		r -= npv / deriv
		if math.IsNaN(r) || r < irrLowerBound || r > irrUpperBound {
			return nil
		}
	}

	return nil
}

// irrValueAndDerivative evaluates NPV(r) and its analytic derivative.
// outflows[k] is the forgone salary for year k+1; the payout discounts
// from the horizon year.
func irrValueAndDerivative(outflows []float64, payout float64, horizonYears int, r float64) (npv, deriv float64) {
	for k, flow := range outflows {
		if flow <= 0 {
			continue
		}
		year := float64(k + 1)
		discount := math.Pow(1+r, year)
		npv -= flow / discount
		deriv += year * flow / (discount * (1 + r))
	}

	n := float64(horizonYears)
	discountN := math.Pow(1+r, n)
	npv += payout / discountN
	deriv -= n * payout / (discountN * (1 + r))

	return npv, deriv
}
