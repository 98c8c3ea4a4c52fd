// Package planner computes budget allocations and savings projections.
// Every function here is pure: no I/O, no shared state.
package planner

import "github.com/theirongolddev/nestplan/internal/model"

// Fixed shares of monthly income, as fractions.
const (
	EssentialsShare = 0.41
	BillsShare      = 0.08
	InsuranceShare  = 0.05
	EmergencyShare  = 0.03
)

// Splits holds the fixed-share buckets of an allocation as fractions of income.
type Splits struct {
	Essentials float64
	Bills      float64
	Insurance  float64
	Emergency  float64
}

// DefaultSplits is the 41/8/5/3 split.
var DefaultSplits = Splits{
	Essentials: EssentialsShare,
	Bills:      BillsShare,
	Insurance:  InsuranceShare,
	Emergency:  EmergencyShare,
}

// Fixed returns the combined share of the fixed buckets.
func (s Splits) Fixed() float64 {
	return s.Essentials + s.Bills + s.Insurance + s.Emergency
}

// ComputeAllocation splits income using DefaultSplits.
func ComputeAllocation(income, savingsPercent float64) model.BudgetAllocation {
	return ComputeAllocationWith(income, savingsPercent, DefaultSplits)
}

// ComputeAllocationWith splits income into fixed buckets plus house savings,
// leaving the remainder as leisure. Leisure is not clamped: a negative value
// means the plan overspends income, and callers decide how to surface that.
func ComputeAllocationWith(income, savingsPercent float64, s Splits) model.BudgetAllocation {
	a := model.BudgetAllocation{
		Essentials:    income * s.Essentials,
		Bills:         income * s.Bills,
		Insurance:     income * s.Insurance,
		EmergencyFund: income * s.Emergency,
		HouseSavings:  MonthlySaving(income, savingsPercent),
	}
	a.Leisure = income - (a.Essentials + a.Bills + a.Insurance + a.EmergencyFund + a.HouseSavings)
	return a
}

// Allocate splits a budget input under s.
func Allocate(b model.BudgetInput, s Splits) model.BudgetAllocation {
	return ComputeAllocationWith(b.Income, b.SavingsPercent, s)
}

// MonthlySaving returns savingsPercent% of income.
func MonthlySaving(income, savingsPercent float64) float64 {
	return income * savingsPercent / 100
}

// MaxSavingsPercent is the largest savings percent that keeps leisure
// non-negative under s.
func MaxSavingsPercent(s Splits) float64 {
	return (1 - s.Fixed()) * 100
}
