package planner

import (
	"math"

	"github.com/theirongolddev/nestplan/internal/model"
)

// MonthsPerYear is the compounding frequency.
const MonthsPerYear = 12

// ProjectGrowth returns the future value of a fixed contribution made at the
// start of each month for months months, compounding monthly at annualRate/12.
//
// Each contribution is compounded and summed individually; the closed-form
// annuity-due agrees to within float rounding.
func ProjectGrowth(monthlyAmount, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	monthly := 1 + annualRate/MonthsPerYear

	var fv float64
	for i := 1; i <= months; i++ {
		fv += monthlyAmount * math.Pow(monthly, float64(months-i+1))
	}
	return fv
}

// BuildProjectionSeries returns one row per year comparing flat accumulation
// with compounded growth.
func BuildProjectionSeries(monthlySaving, annualRate float64, horizonYears int) model.ProjectionSeries {
	if horizonYears <= 0 {
		return model.ProjectionSeries{}
	}
	annual := monthlySaving * MonthsPerYear

	series := make(model.ProjectionSeries, 0, horizonYears)
	for y := 1; y <= horizonYears; y++ {
		series = append(series, model.ProjectionRow{
			Year:            y,
			UninvestedTotal: annual * float64(y),
			InvestedTotal:   ProjectGrowth(monthlySaving, annualRate, MonthsPerYear*y),
		})
	}
	return series
}
