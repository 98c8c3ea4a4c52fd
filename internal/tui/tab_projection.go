package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/model"
	"github.com/theirongolddev/nestplan/internal/tui/components"
	"github.com/theirongolddev/nestplan/internal/tui/theme"
)

func newProjectionTable() table.Model {
	cols := []table.Column{
		{Title: "Year", Width: 6},
		{Title: "Without Investment", Width: 20},
		{Title: "With SIP", Width: 20},
		{Title: "Gain", Width: 16},
	}
	tbl := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(6),
	)
	tbl.SetStyles(projectionTableStyles())
	return tbl
}

func projectionTableStyles() table.Styles {
	t := theme.Active
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.TextMuted).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(t.TextPrimary).
		Background(t.SurfaceBright).
		Bold(true)
	s.Cell = s.Cell.Foreground(t.TextPrimary)
	return s
}

func projectionRows(p model.Plan) []table.Row {
	rows := make([]table.Row, 0, len(p.Projection))
	for _, r := range p.Projection {
		rows = append(rows, table.Row{
			strconv.Itoa(r.Year),
			cli.FormatMoneyExact(r.UninvestedTotal),
			cli.FormatMoneyExact(r.InvestedTotal),
			cli.FormatMoney(r.Gain()),
		})
	}
	return rows
}

// resizeTable fits the projection table to the current terminal height.
func (a *App) resizeTable() {
	h := len(a.plan.Projection) + 1
	if maxH := a.height - 24; h > maxH {
		h = maxH
	}
	if h < 3 {
		h = 3
	}
	a.projTable.SetHeight(h)
	a.projTable.SetStyles(projectionTableStyles())
}

func (a App) renderProjectionTab(cw int) string {
	t := theme.Active
	p := a.plan

	gainPct := ""
	if p.FinalUninvested > 0 {
		gainPct = fmt.Sprintf("+%.1f%% over saving alone", p.Gain/p.FinalUninvested*100)
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "With SIP @" + cli.FormatRate(p.Input.AnnualReturn), Value: cli.FormatMoney(p.FinalInvested), Note: "after " + yearsLabel(p.Input.HorizonYears), Tone: components.ToneGood},
		{Label: "Without Investment", Value: cli.FormatMoney(p.FinalUninvested), Note: cli.FormatMoney(p.AnnualSaving) + "/yr saved"},
		{Label: "Investment Gain", Value: cli.FormatMoney(p.Gain), Note: gainPct, Tone: components.ToneAccent},
	}, cw))
	b.WriteString("\n")

	labels := make([]string, len(p.Projection))
	flat := make([]float64, len(p.Projection))
	invested := make([]float64, len(p.Projection))
	for i, r := range p.Projection {
		labels[i] = fmt.Sprintf("Year %d", r.Year)
		flat[i] = r.UninvestedTotal
		invested[i] = r.InvestedTotal
	}

	chart := components.GroupedBars(labels, []components.Series{
		{Name: "Without investment", Color: t.Uninvested, Values: flat},
		{Name: "With SIP @" + cli.FormatRate(p.Input.AnnualReturn), Color: t.Invested, Values: invested},
	}, components.CardInnerWidth(cw))
	title := "Savings Growth  " + components.Sparkline(invested, t.Invested)
	b.WriteString(components.ContentCard(title, chart, cw))
	b.WriteString("\n")

	hint := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("[j/k] scroll")
	b.WriteString(components.ContentCard("Year by Year", a.projTable.View()+"\n"+hint, cw))

	return b.String()
}
