// Package export writes plans as downloadable CSV and JSON reports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/model"
)

// DefaultFileName is the suggested name for a projection CSV.
const DefaultFileName = "house_savings_projection.csv"

// Headers returns the CSV column headers for a plan.
func Headers(p model.Plan) []string {
	return []string{
		"Year",
		fmt.Sprintf("Without Investment (%s)", cli.Currency),
		fmt.Sprintf("With SIP @%s Return (%s)", cli.FormatRate(p.Input.AnnualReturn), cli.Currency),
	}
}

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// WriteCSV writes one row per projection year with amounts rounded to 2dp.
func WriteCSV(w io.Writer, p model.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers(p)); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range p.Projection {
		rec := []string{
			strconv.Itoa(row.Year),
			Round2(row.UninvestedTotal).StringFixed(2),
			Round2(row.InvestedTotal).StringFixed(2),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv row %d: %w", row.Year, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
