// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Currency is the symbol prefixed to every amount.
const Currency = "₹"

// FormatMoney formats an amount rounded to whole rupees with comma separators.
// e.g., 924495.39 -> "₹924,495", -1700 -> "-₹1,700"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}
	return Currency + humanize.Comma(int64(math.Round(v)))
}

// FormatMoneyExact formats an amount with two decimals.
// e.g., 150016.129 -> "₹150,016.13"
func FormatMoneyExact(v float64) string {
	if v < 0 {
		return "-" + FormatMoneyExact(-v)
	}
	s := humanize.CommafWithDigits(math.Round(v*100)/100, 2)
	if i := strings.IndexByte(s, '.'); i < 0 {
		s += ".00"
	} else if len(s)-i == 2 {
		s += "0"
	}
	return Currency + s
}

// FormatCompact formats an amount in Indian units for chart labels.
// e.g., 924495 -> "₹9.2L", 15000000 -> "₹1.5Cr", 4500 -> "₹4.5K"
func FormatCompact(v float64) string {
	if v < 0 {
		return "-" + FormatCompact(-v)
	}
	switch {
	case v >= 1e7:
		return fmt.Sprintf("%s%.1fCr", Currency, v/1e7)
	case v >= 1e5:
		return fmt.Sprintf("%s%.1fL", Currency, v/1e5)
	case v >= 1e3:
		return fmt.Sprintf("%s%.1fK", Currency, v/1e3)
	default:
		return fmt.Sprintf("%s%.0f", Currency, v)
	}
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRate formats an annual rate like 0.10 as "10%", keeping a decimal
// only when needed (0.075 -> "7.5%").
func FormatRate(r float64) string {
	pct := r * 100
	if pct == math.Trunc(pct) {
		return fmt.Sprintf("%.0f%%", pct)
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", pct), "0"), ".") + "%"
}

// FormatDelta formats a money delta with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta)
	}
	return "-" + FormatMoney(-delta)
}
