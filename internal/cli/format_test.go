package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹37,000", FormatMoney(37000))
	assert.Equal(t, "₹924,495", FormatMoney(924495.39))
	assert.Equal(t, "₹0", FormatMoney(0))
	assert.Equal(t, "-₹1,700", FormatMoney(-1700))
}

func TestFormatMoneyExact(t *testing.T) {
	assert.Equal(t, "₹150,016.13", FormatMoneyExact(150016.12893910002))
	assert.Equal(t, "₹142,080.00", FormatMoneyExact(142080))
	assert.Equal(t, "₹10.50", FormatMoneyExact(10.5))
	assert.Equal(t, "-₹4.25", FormatMoneyExact(-4.25))
}

func TestFormatCompact(t *testing.T) {
	assert.Equal(t, "₹9.2L", FormatCompact(924495))
	assert.Equal(t, "₹1.5Cr", FormatCompact(15_000_000))
	assert.Equal(t, "₹4.5K", FormatCompact(4500))
	assert.Equal(t, "₹750", FormatCompact(750))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "10%", FormatRate(0.10))
	assert.Equal(t, "7.5%", FormatRate(0.075))
	assert.Equal(t, "12.25%", FormatRate(0.1225))
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "+₹500", FormatDelta(1500, 1000))
	assert.Equal(t, "-₹500", FormatDelta(1000, 1500))
}

func TestRenderTableAlignsRupeeCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Amount"},
		Rows: [][]string{
			{"Essentials", FormatMoney(15170)},
			{"Leisure/Misc", FormatMoney(4070)},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	width := lipgloss.Width(lines[0])
	for i, line := range lines {
		assert.Equalf(t, width, lipgloss.Width(line), "line %d width", i)
	}
}

func TestRenderHorizontalBarClamps(t *testing.T) {
	assert.Empty(t, RenderHorizontalBar(10, 0, 20))
	assert.Equal(t, 0, lipgloss.Width(RenderHorizontalBar(-5, 10, 20)))
	assert.Equal(t, 20, lipgloss.Width(RenderHorizontalBar(50, 10, 20)))
}
