// internal/scenario/result.go
package scenario

import (
	"fmt"
	"strconv"
)

// DilutionEvent records one financing round applied to the ownership
// path. OwnershipAfterPct is the cumulative ownership after the round.
type DilutionEvent struct {
	Year              int     `json:"year"`
	DilutionPct       float64 `json:"dilution_pct"`
	OwnershipAfterPct float64 `json:"ownership_after_pct"`
}

// YearlyRecord is one row of projected state for a simulated year.
// InvestmentValue carries the year-over-year compounding recurrence and
// doubles as the cumulative opportunity cost at that year.
type YearlyRecord struct {
	Year                int     `json:"year"`
	CurrentAnnualSalary float64 `json:"current_annual_salary"`
	StartupAnnualSalary float64 `json:"startup_annual_salary"`
	SalaryForgone       float64 `json:"salary_forgone"`
	SalaryGain          float64 `json:"salary_gain"`
	InvestmentValue     float64 `json:"investment_value"`
	OpportunityCost     float64 `json:"opportunity_cost"`
	VestedPct           float64 `json:"vested_pct"`
	OwnershipPct        float64 `json:"ownership_pct"`
	Breakeven           float64 `json:"breakeven"`
}

// SeriesPoint is a single (year, value) sample for charting.
type SeriesPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Result is the complete outcome of one scenario run. The caller owns
// the record; the engine keeps no reference to it after returning.
type Result struct {
	Input Input `json:"input"`

	TotalPayout          float64  `json:"total_payout"`
	TotalOpportunityCost float64  `json:"total_opportunity_cost"`
	NetOutcome           float64  `json:"net_outcome"`
	NetPresentValue      float64  `json:"net_present_value"`
	IRR                  *float64 `json:"irr"` // annual rate, nil when undefined

	InitialOwnershipPct float64 `json:"initial_ownership_pct"`
	FinalOwnershipPct   float64 `json:"final_ownership_pct"`
	TotalDilutionPct    float64 `json:"total_dilution_pct"`
	FinalVestedPct      float64 `json:"final_vested_pct"`

	ClearWin bool `json:"clear_win"`

	DilutionEvents []DilutionEvent `json:"dilution_events"`
	Yearly         []YearlyRecord  `json:"yearly"`

	BreakevenSeries   []SeriesPoint `json:"breakeven_series"`
	OpportunitySeries []SeriesPoint `json:"opportunity_series"`
}

// CSVHeaders returns the column headers for yearly-record CSV export.
func CSVHeaders() []string {
	return []string{
		"year",
		"current_annual_salary",
		"startup_annual_salary",
		"salary_forgone",
		"salary_gain",
		"investment_value",
		"opportunity_cost",
		"vested_pct",
		"ownership_pct",
		"breakeven",
	}
}

// ToCSV returns the record as a CSV row matching CSVHeaders.
func (r YearlyRecord) ToCSV() []string {
	return []string{
		strconv.Itoa(r.Year),
		formatAmount(r.CurrentAnnualSalary),
		formatAmount(r.StartupAnnualSalary),
		formatAmount(r.SalaryForgone),
		formatAmount(r.SalaryGain),
		formatAmount(r.InvestmentValue),
		formatAmount(r.OpportunityCost),
		formatAmount(r.VestedPct),
		formatAmount(r.OwnershipPct),
		formatAmount(r.Breakeven),
	}
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
