package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/planner"
	"github.com/theirongolddev/nestplan/internal/tui/components"
	"github.com/theirongolddev/nestplan/internal/tui/theme"
)

func categoryColors() []lipgloss.Color {
	t := theme.Active
	return t.Buckets[:]
}

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	p := a.plan
	alloc := p.Allocation

	leisureTone := components.ToneNormal
	leisureNote := cli.FormatPercent(p.Share(alloc.Leisure)) + " of income"
	if p.LeisureDeficit() {
		leisureTone = components.ToneBad
		leisureNote = "over budget"
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Monthly Income", Value: cli.FormatMoney(p.Input.Income)},
		{Label: "House Savings", Value: cli.FormatMoney(alloc.HouseSavings), Note: cli.FormatMoney(p.AnnualSaving) + "/yr", Tone: components.ToneGood},
		{Label: "Leisure/Misc", Value: cli.FormatMoney(alloc.Leisure), Note: leisureNote, Tone: leisureTone},
		{Label: "Savings Rate", Value: cli.FormatPercent(p.Input.SavingsPercent / 100), Note: fmt.Sprintf("max %.0f%%", planner.MaxSavingsPercent(a.splits)), Tone: components.ToneAccent},
	}, cw))
	b.WriteString("\n")

	// Allocation table + share chart side by side (stacked when compact)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	negStyle := lipgloss.NewStyle().Foreground(t.Negative).Background(t.Surface).Bold(true)
	headStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Bold(true)

	var table strings.Builder
	table.WriteString(headStyle.Render(fmt.Sprintf("%-16s %12s %7s", "Category", "Amount", "Share")))
	for _, c := range alloc.Categories() {
		table.WriteString("\n")
		table.WriteString(labelStyle.Render(fmt.Sprintf("%-16s ", c.Label)))
		vs := valueStyle
		if c.Amount < 0 {
			vs = negStyle
		}
		table.WriteString(vs.Render(fmt.Sprintf("%12s", cli.FormatMoney(c.Amount))))
		table.WriteString(labelStyle.Render(fmt.Sprintf(" %7s", cli.FormatPercent(p.Share(c.Amount)))))
	}
	table.WriteString("\n")
	table.WriteString(headStyle.Render(fmt.Sprintf("%-16s %12s", "Total", cli.FormatMoney(alloc.Total()))))

	colors := categoryColors()
	var segments []components.Segment
	for i, c := range alloc.Categories() {
		segments = append(segments, components.Segment{Label: c.Label, Value: c.Amount, Color: colors[i%len(colors)]})
	}

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Monthly Allocation", table.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Share of Income", components.ShareBar(segments, components.CardInnerWidth(cw)), cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Monthly Allocation", table.String(), halves[0]),
			components.ContentCard("Share of Income", components.ShareBar(segments, components.CardInnerWidth(halves[1])), halves[1]),
		}))
	}
	b.WriteString("\n")

	// Where the inputs sit in their allowed ranges
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 32
	if barW < 10 {
		barW = 10
	}
	l := a.limits
	var ranges strings.Builder
	ranges.WriteString(components.RangeBar("Income", p.Input.Income, l.MinIncome, l.MaxIncome, cli.FormatMoney(p.Input.Income), 10, barW))
	ranges.WriteString("\n")
	ranges.WriteString(components.RangeBar("Savings", p.Input.SavingsPercent, l.MinSavings, l.MaxSavings, cli.FormatPercent(p.Input.SavingsPercent/100), 10, barW))
	ranges.WriteString("\n")
	committed := p.Share(p.Input.Income - alloc.Leisure)
	ranges.WriteString(components.UsageBar(fmt.Sprintf("%-10s", "Committed"), committed, barW+16))
	for _, w := range p.Warnings {
		ranges.WriteString("\n")
		ranges.WriteString(lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface).Render("⚠ " + w))
	}
	b.WriteString(components.ContentCard("Inputs", ranges.String(), cw))

	return b.String()
}
