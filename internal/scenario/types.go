// internal/scenario/types.go
package scenario

// EquityMode selects how the startup grant is modelled.
type EquityMode string

const (
	ModeEquity  EquityMode = "equity"
	ModeOptions EquityMode = "options"
)

// Compounding selects the investment compounding frequency for the
// opportunity-cost recurrence.
type Compounding string

const (
	CompoundMonthly  Compounding = "monthly"
	CompoundAnnually Compounding = "annually"
)

// FinancingRound describes one financing event. Dilution is either given
// directly via DilutionPct, or derived from the pre-money valuation and
// the amount raised when DilutionPct is zero.
type FinancingRound struct {
	Year              int     `json:"year"`
	DilutionPct       float64 `json:"dilution_pct,omitempty"`
	PreMoneyValuation float64 `json:"pre_money_valuation,omitempty"`
	AmountRaised      float64 `json:"amount_raised,omitempty"`
}

// Input is the raw scenario record supplied by the caller. It may be
// partially populated or slightly out of range; Sanitize produces the
// canonical copy the engine actually runs on.
type Input struct {
	Name string `json:"name,omitempty"`

	HorizonYears int `json:"horizon_years"`

	CurrentMonthlySalary float64     `json:"current_monthly_salary"`
	SalaryGrowthPct      float64     `json:"salary_growth_pct"`
	AnnualReturnPct      float64     `json:"annual_return_pct"`
	Compounding          Compounding `json:"compounding"`

	StartupMonthlySalary float64    `json:"startup_monthly_salary"`
	Mode                 EquityMode `json:"mode"`

	// Equity mode.
	InitialOwnershipPct float64          `json:"initial_ownership_pct,omitempty"`
	ExitValuation       float64          `json:"exit_valuation,omitempty"`
	SimulateDilution    bool             `json:"simulate_dilution,omitempty"`
	Rounds              []FinancingRound `json:"rounds,omitempty"`

	// Options mode.
	OptionCount       float64 `json:"option_count,omitempty"`
	StrikePrice       float64 `json:"strike_price,omitempty"`
	ExitPricePerShare float64 `json:"exit_price_per_share,omitempty"`

	VestingYears float64 `json:"vesting_years"`
	CliffYears   float64 `json:"cliff_years"`
}
