package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/model"
	"github.com/theirongolddev/nestplan/internal/planner"
)

const shareBarWidth = 20

func renderInputs(p model.Plan) string {
	return fmt.Sprintf("  Income %s  ·  Saving %.0f%%  ·  Return %s  ·  %s",
		cli.FormatMoney(p.Input.Income),
		p.Input.SavingsPercent,
		cli.FormatRate(p.Input.AnnualReturn),
		yearsLabel(p.Input.HorizonYears),
	)
}

func renderBudget(p model.Plan) string {
	cats := p.Allocation.Categories()
	maxAmt := 0.0
	for _, c := range cats {
		maxAmt = max(maxAmt, c.Amount)
	}

	rows := make([][]string, 0, len(cats)+2)
	for _, c := range cats {
		rows = append(rows, []string{
			c.Label,
			cli.FormatMoney(c.Amount),
			cli.FormatPercent(p.Share(c.Amount)),
			cli.RenderHorizontalBar(c.Amount, maxAmt, shareBarWidth),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", cli.FormatMoney(p.Allocation.Total()), cli.FormatPercent(p.Share(p.Allocation.Total())), ""},
	)

	return cli.RenderTable(cli.Table{
		Title:   "Monthly Budget",
		Headers: []string{"Category", "Amount", "Share", ""},
		Rows:    rows,
	})
}

func renderProjection(p model.Plan) string {
	rows := make([][]string, 0, len(p.Projection))
	invested := make([]float64, 0, len(p.Projection))
	for _, r := range p.Projection {
		rows = append(rows, []string{
			fmt.Sprintf("Year %d", r.Year),
			cli.FormatMoney(r.UninvestedTotal),
			cli.FormatMoney(r.InvestedTotal),
			cli.FormatMoney(r.Gain()),
		})
		invested = append(invested, r.InvestedTotal)
	}

	var b strings.Builder
	b.WriteString(cli.RenderTable(cli.Table{
		Title: "Savings Growth",
		Headers: []string{
			"Year",
			"Without Investment",
			"With SIP @" + cli.FormatRate(p.Input.AnnualReturn),
			"Gain",
		},
		Rows: rows,
	}))
	if len(invested) > 1 {
		fmt.Fprintf(&b, "\n  %s  %s\n", cli.RenderMuted("Growth"), cli.RenderSparkline(invested))
	}
	return b.String()
}

func renderSummary(p model.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  Monthly saving   %s\n", cli.RenderMoney(p.MonthlySaving))
	fmt.Fprintf(&b, "  With SIP         %s\n", cli.RenderMoney(p.FinalInvested))
	fmt.Fprintf(&b, "  Without          %s\n", cli.FormatMoney(p.FinalUninvested))
	fmt.Fprintf(&b, "  Investment gain  %s\n", cli.RenderMoney(p.Gain))
	b.WriteString("\n  ")
	b.WriteString(planner.Headline(p))
	b.WriteString("\n")
	return b.String()
}

func renderTips() string {
	return cli.RenderList("Tips", planner.Tips())
}

func yearsLabel(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}
