package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx]) //nolint:gosec // bounds checked above
	}

	return style.Render(buf.String())
}

// Series is one named, colored data series of a grouped chart.
type Series struct {
	Name   string
	Color  lipgloss.Color
	Values []float64
}

// GroupedBars renders horizontal bars grouped by label: for each label, one
// bar per series, all scaled against the largest value.
func GroupedBars(labels []string, series []Series, width int) string {
	if len(labels) == 0 || len(series) == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			peak = math.Max(peak, v)
		}
	}
	if peak <= 0 {
		peak = 1
	}

	labelW := 0
	for _, l := range labels {
		labelW = max(labelW, lipgloss.Width(l))
	}
	valueW := 0
	for _, s := range series {
		for _, v := range s.Values {
			valueW = max(valueW, lipgloss.Width(cli.FormatCompact(v)))
		}
	}

	barMax := width - labelW - valueW - 3
	if barMax < 4 {
		barMax = 4
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, label := range labels {
		for j, s := range series {
			v := 0.0
			if i < len(s.Values) {
				v = s.Values[i]
			}

			lbl := ""
			if j == 0 {
				lbl = label
			}
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, lbl)))
			b.WriteString(space.Render(" "))

			n := int(math.Round(v / peak * float64(barMax)))
			n = max(0, min(barMax, n))
			b.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render(strings.Repeat("█", n)))
			b.WriteString(space.Render(strings.Repeat(" ", barMax-n+1)))
			b.WriteString(valueStyle.Render(fmt.Sprintf("%*s", valueW, cli.FormatCompact(v))))
			b.WriteString("\n")
		}
	}

	// Legend
	for i, s := range series {
		if i > 0 {
			b.WriteString(space.Render("   "))
		}
		b.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("■"))
		b.WriteString(labelStyle.Render(" " + s.Name))
	}

	return b.String()
}

// Segment is one slice of a stacked share bar.
type Segment struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// ShareBar renders a single stacked bar where each segment's width is its
// share of the positive total, followed by a legend with percentages.
// Negative segments are left out of the bar and flagged in the legend.
func ShareBar(segments []Segment, width int) string {
	if len(segments) == 0 || width < 1 {
		return ""
	}
	t := theme.Active

	total := 0.0
	for _, s := range segments {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if total <= 0 {
		total = 1
	}

	// Largest-remainder allocation so the cells sum to width exactly.
	cells := make([]int, len(segments))
	rems := make([]float64, len(segments))
	used := 0
	for i, s := range segments {
		if s.Value <= 0 {
			continue
		}
		exact := s.Value / total * float64(width)
		cells[i] = int(exact)
		rems[i] = exact - float64(cells[i])
		used += cells[i]
	}
	for used < width {
		best := -1
		for i := range segments {
			if segments[i].Value > 0 && (best < 0 || rems[i] > rems[best]) {
				best = i
			}
		}
		if best < 0 {
			break
		}
		cells[best]++
		rems[best] = -1
		used++
	}

	var b strings.Builder
	for i, s := range segments {
		if cells[i] == 0 {
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render(strings.Repeat("█", cells[i])))
	}
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Negative).Background(t.Surface).Bold(true)
	for _, s := range segments {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("■ "))
		if s.Value < 0 {
			b.WriteString(warnStyle.Render(fmt.Sprintf("%-16s %s (deficit)", s.Label, cli.FormatMoney(s.Value))))
			continue
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-16s %5.1f%%", s.Label, s.Value/total*100)))
	}

	return b.String()
}
