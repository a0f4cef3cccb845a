// cmd/offerscope/render.go
package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/offerscope/offerscope/internal/compare"
	"github.com/offerscope/offerscope/internal/scenario"
	"github.com/offerscope/offerscope/internal/storage/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00E5FF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7280"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2AFFAA"))

	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))
)

// renderSummary prints the headline metrics block.
func renderSummary(w io.Writer, res scenario.Result) {
	name := res.Input.Name
	if name == "" {
		name = fmt.Sprintf("%s scenario", res.Input.Mode)
	}

	fmt.Fprintln(w, titleStyle.Render(name))
	fmt.Fprintf(w, "%s %s over %d years\n",
		labelStyle.Render("horizon:"),
		string(res.Input.Compounding)+" compounding",
		res.Input.HorizonYears)

	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("total payout:"), formatMoney(res.TotalPayout))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("opportunity cost:"), formatMoney(res.TotalOpportunityCost))

	netStyle := winStyle
	if res.NetOutcome < 0 {
		netStyle = loseStyle
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("net outcome:"), netStyle.Render(formatMoney(res.NetOutcome)))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("net present value:"), formatMoney(res.NetPresentValue))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("irr:"), formatIRR(res.IRR))

	if res.Input.Mode == scenario.ModeEquity {
		fmt.Fprintf(w, "%s %.4f%% -> %.4f%% (diluted %.2f%%)\n",
			labelStyle.Render("ownership:"),
			res.InitialOwnershipPct, res.FinalOwnershipPct, res.TotalDilutionPct)
	}

	if res.ClearWin {
		fmt.Fprintln(w, winStyle.Render("clear win: startup cash alone beats the current job"))
	}
	fmt.Fprintln(w)
}

// renderYearly prints the per-year projection table.
func renderYearly(w io.Writer, res scenario.Result) {
	breakevenHeader := "Breakeven valuation"
	if res.Input.Mode == scenario.ModeOptions {
		breakevenHeader = "Breakeven $/share"
	}

	table := tablewriter.NewWriter(w)
	table.Header("Year", "Current", "Startup", "Forgone", "Opp. cost", "Vested %", "Own %", breakevenHeader)

	for _, row := range res.Yearly {
		table.Append(
			fmt.Sprintf("%d", row.Year),
			formatMoney(row.CurrentAnnualSalary),
			formatMoney(row.StartupAnnualSalary),
			formatMoney(row.SalaryForgone),
			formatMoney(row.OpportunityCost),
			fmt.Sprintf("%.1f", row.VestedPct),
			fmt.Sprintf("%.4f", row.OwnershipPct),
			formatMoney(row.Breakeven),
		)
	}

	table.Render()
}

// renderDilution prints the financing-round trail, if any.
func renderDilution(w io.Writer, res scenario.Result) {
	if len(res.DilutionEvents) == 0 {
		return
	}

	fmt.Fprintln(w, titleStyle.Render("financing rounds"))
	table := tablewriter.NewWriter(w)
	table.Header("Year", "Dilution %", "Ownership after %")

	for _, ev := range res.DilutionEvents {
		table.Append(
			fmt.Sprintf("%d", ev.Year),
			fmt.Sprintf("%.2f", ev.DilutionPct),
			fmt.Sprintf("%.4f", ev.OwnershipAfterPct),
		)
	}

	table.Render()
}

// renderRanking prints compared scenarios, best first.
func renderRanking(w io.Writer, outcomes []compare.Outcome) {
	fmt.Fprintln(w, titleStyle.Render("scenario ranking"))

	table := tablewriter.NewWriter(w)
	table.Header("#", "Scenario", "Mode", "Net outcome", "NPV", "IRR", "Clear win")

	for i, out := range outcomes {
		name := out.Result.Input.Name
		if name == "" {
			name = out.Path
		}

		table.Append(
			fmt.Sprintf("%d", i+1),
			name,
			string(out.Result.Input.Mode),
			formatMoney(out.Result.NetOutcome),
			formatMoney(out.Result.NetPresentValue),
			formatIRR(out.Result.IRR),
			fmt.Sprintf("%t", out.Result.ClearWin),
		)
	}

	table.Render()
}

// renderStored prints persisted scenario records.
func renderStored(w io.Writer, recs []*models.ScenarioRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(w, labelStyle.Render("no stored scenarios"))
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Mode", "Horizon", "Net outcome", "Saved")

	for _, rec := range recs {
		table.Append(
			rec.ID.String(),
			rec.Name,
			rec.Mode,
			fmt.Sprintf("%dy", rec.HorizonYears),
			formatMoney(rec.NetOutcome),
			rec.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	table.Render()
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// formatIRR renders the nullable rate; no solution shows as N/A.
func formatIRR(irr *float64) string {
	if irr == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *irr*100)
}
