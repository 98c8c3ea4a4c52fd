package cli

import (
	"fmt"
	"strconv"
	"strings"
)

var moneySuffixes = []struct {
	suffix string
	mult   float64
}{
	{"cr", 1e7},
	{"k", 1e3},
	{"l", 1e5},
}

// ParseMoney parses amounts like "37000", "37,000", "₹37,000", "37k" or "3.5L".
func ParseMoney(s string) (float64, error) {
	v := strings.TrimSpace(strings.ToLower(s))
	v = strings.TrimPrefix(v, Currency)
	v = strings.NewReplacer(",", "", "_", "", " ", "").Replace(v)

	mult := 1.0
	for _, ms := range moneySuffixes {
		if strings.HasSuffix(v, ms.suffix) {
			v = strings.TrimSuffix(v, ms.suffix)
			mult = ms.mult
			break
		}
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return n * mult, nil
}

// ParseRate parses an annual return. "10%" and "10" both mean 0.10; values
// at or below 1 without a percent sign are taken as fractions.
func ParseRate(s string) (float64, error) {
	v := strings.TrimSpace(s)
	pct := strings.HasSuffix(v, "%")
	v = strings.TrimSuffix(v, "%")

	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q", s)
	}
	if pct || n > 1 {
		n /= 100
	}
	return n, nil
}
