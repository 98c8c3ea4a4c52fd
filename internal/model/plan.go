package model

// PlanInput is everything needed to build a Plan.
type PlanInput struct {
	Income         float64 `json:"income"`
	SavingsPercent float64 `json:"savings_percent"`
	AnnualReturn   float64 `json:"annual_return"`
	HorizonYears   int     `json:"horizon_years"`
}

// Budget returns the budget half of the input.
func (in PlanInput) Budget() BudgetInput {
	return BudgetInput{Income: in.Income, SavingsPercent: in.SavingsPercent}
}

// Plan is the full derived view rendered by every surface.
type Plan struct {
	Input           PlanInput        `json:"input"`
	MonthlySaving   float64          `json:"monthly_saving"`
	AnnualSaving    float64          `json:"annual_saving"`
	Allocation      BudgetAllocation `json:"allocation"`
	Projection      ProjectionSeries `json:"projection"`
	FinalInvested   float64          `json:"final_invested"`
	FinalUninvested float64          `json:"final_uninvested"`
	Gain            float64          `json:"gain"`
	Warnings        []string         `json:"warnings,omitempty"`
}

// Share returns amount as a fraction of income (0 when income is not positive).
func (p Plan) Share(amount float64) float64 {
	if p.Input.Income <= 0 {
		return 0
	}
	return amount / p.Input.Income
}

// LeisureDeficit reports whether fixed costs plus savings exceed income.
func (p Plan) LeisureDeficit() bool {
	return p.Allocation.Leisure < 0
}
