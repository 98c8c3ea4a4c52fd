package planner

import (
	"fmt"

	"github.com/theirongolddev/nestplan/internal/model"
)

// BuildPlan derives the full plan for in under the given splits.
func BuildPlan(in model.PlanInput, s Splits) model.Plan {
	budget := in.Budget()
	monthly := MonthlySaving(budget.Income, budget.SavingsPercent)
	series := BuildProjectionSeries(monthly, in.AnnualReturn, in.HorizonYears)
	last := series.Last()

	p := model.Plan{
		Input:           in,
		MonthlySaving:   monthly,
		AnnualSaving:    monthly * MonthsPerYear,
		Allocation:      Allocate(budget, s),
		Projection:      series,
		FinalInvested:   last.InvestedTotal,
		FinalUninvested: last.UninvestedTotal,
		Gain:            last.Gain(),
	}

	if p.Allocation.Leisure < 0 {
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"leisure is negative (%.2f): fixed costs plus %.0f%% savings exceed income; keep savings at or below %.0f%%",
			p.Allocation.Leisure, in.SavingsPercent, MaxSavingsPercent(s)))
	}
	if in.AnnualReturn < 0 {
		p.Warnings = append(p.Warnings, "annual return is negative: invested total will trail flat savings")
	}

	return p
}
