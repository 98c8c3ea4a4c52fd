// Package model defines domain types for nestplan budgets and projections.
package model

// BudgetInput is the pair of numbers a plan is derived from.
type BudgetInput struct {
	Income         float64 `json:"income"`
	SavingsPercent float64 `json:"savings_percent"`
}

// BudgetAllocation splits one month of income into six buckets.
// The buckets always sum to the income; Leisure is the residual and may be negative.
type BudgetAllocation struct {
	Essentials    float64 `json:"essentials"`
	Bills         float64 `json:"bills"`
	Insurance     float64 `json:"insurance"`
	EmergencyFund float64 `json:"emergency_fund"`
	Leisure       float64 `json:"leisure"`
	HouseSavings  float64 `json:"house_savings"`
}

// Total returns the sum of all six buckets.
func (a BudgetAllocation) Total() float64 {
	return a.Essentials + a.Bills + a.Insurance + a.EmergencyFund + a.Leisure + a.HouseSavings
}

// Category is one labelled allocation bucket.
type Category struct {
	Label  string
	Amount float64
}

// Categories returns the buckets in display order.
func (a BudgetAllocation) Categories() []Category {
	return []Category{
		{"Essentials", a.Essentials},
		{"Bills", a.Bills},
		{"Insurance", a.Insurance},
		{"Emergency Fund", a.EmergencyFund},
		{"Leisure/Misc", a.Leisure},
		{"House Savings", a.HouseSavings},
	}
}

// ProjectionRow holds the accumulated savings at the end of one year.
type ProjectionRow struct {
	Year            int     `json:"year"`
	UninvestedTotal float64 `json:"uninvested_total"`
	InvestedTotal   float64 `json:"invested_total"`
}

// Gain is what compounding adds over flat accumulation.
func (r ProjectionRow) Gain() float64 {
	return r.InvestedTotal - r.UninvestedTotal
}

// ProjectionSeries is one row per year, ascending.
type ProjectionSeries []ProjectionRow

// Last returns the final row, or a zero row for an empty series.
func (s ProjectionSeries) Last() ProjectionRow {
	if len(s) == 0 {
		return ProjectionRow{}
	}
	return s[len(s)-1]
}
