package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/nestplan/internal/tui/theme"
)

// ColorForPct returns green/yellow/orange/red as pct approaches 1.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Negative)
	case pct >= 0.7:
		return string(t.Warning)
	case pct >= 0.5:
		return string(t.Caution)
	default:
		return string(t.Positive)
	}
}

// RangeBar renders a labeled slider showing where value sits in [lo, hi],
// with the formatted value on the right.
func RangeBar(label string, value, lo, hi float64, display string, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if hi > lo {
		pct = (value - lo) / (hi - lo)
	}
	pct = max(0, min(1, pct))

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render("  ") +
		valueStyle.Render(display)
}

// UsageBar renders a compact bar colored by how close pct is to 1.
func UsageBar(label string, pct float64, width int) string {
	t := theme.Active

	pct = max(0, min(1, pct))

	barW := width - lipgloss.Width(label) - 6
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
