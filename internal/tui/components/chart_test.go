package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/nestplan/internal/tui/theme"
)

func TestShareBarFillsWidth(t *testing.T) {
	tm := theme.Active
	out := ShareBar([]Segment{
		{Label: "Essentials", Value: 15170, Color: tm.Buckets[0]},
		{Label: "Bills", Value: 2960, Color: tm.Buckets[1]},
		{Label: "Insurance", Value: 1850, Color: tm.Buckets[2]},
		{Label: "Emergency Fund", Value: 1110, Color: tm.Buckets[3]},
		{Label: "Leisure/Misc", Value: 4070, Color: tm.Buckets[4]},
		{Label: "House Savings", Value: 11840, Color: tm.Buckets[5]},
	}, 50)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 8)
	assert.Equal(t, 50, lipgloss.Width(lines[0]))
	assert.Contains(t, out, "41.0%")
	assert.Contains(t, out, "32.0%")
}

func TestShareBarFlagsDeficit(t *testing.T) {
	tm := theme.Active
	out := ShareBar([]Segment{
		{Label: "Essentials", Value: 100, Color: tm.Buckets[0]},
		{Label: "Leisure/Misc", Value: -20, Color: tm.Buckets[4]},
	}, 20)

	lines := strings.Split(out, "\n")
	assert.Equal(t, 20, lipgloss.Width(lines[0]))
	assert.Contains(t, out, "(deficit)")
}

func TestGroupedBars(t *testing.T) {
	tm := theme.Active
	out := GroupedBars(
		[]string{"Y1", "Y2"},
		[]Series{
			{Name: "Without investment", Color: tm.TextMuted, Values: []float64{142080, 284160}},
			{Name: "With SIP", Color: tm.Invested, Values: []float64{150016.13, 315740.91}},
		},
		60,
	)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5) // 2 groups x 2 series + legend
	assert.Contains(t, lines[0], "Y1")
	assert.NotContains(t, lines[1], "Y1")
	assert.Contains(t, out, "₹3.2L")
	assert.Contains(t, out, "With SIP")

	// The largest value gets the longest bar.
	assert.Greater(t, strings.Count(lines[3], "█"), strings.Count(lines[0], "█"))
}

func TestSparkline(t *testing.T) {
	assert.Empty(t, Sparkline(nil, theme.Active.Accent))
	out := Sparkline([]float64{0, 1, 2, 4}, theme.Active.Accent)
	assert.Equal(t, 4, lipgloss.Width(out))
}

func TestTabVisualWidth(t *testing.T) {
	for i, tab := range Tabs {
		active := TabVisualWidth(tab, true)
		assert.Equal(t, len(tab.Name)+2, active, tab.Name)

		inactive := TabVisualWidth(tab, false)
		want := len(tab.Name) + 4
		if tab.KeyPos < 0 {
			want = len(tab.Name) + 5
		}
		assert.Equal(t, want, inactive, tab.Name)
		assert.Equal(t, i, TabIdxByKey(tab.Key))
	}
	assert.Equal(t, -1, TabIdxByKey('z'))
}
