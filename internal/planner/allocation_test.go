package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAllocation_ReferenceScenario(t *testing.T) {
	a := ComputeAllocation(37000, 32)

	assert.InDelta(t, 15170, a.Essentials, 1e-6)
	assert.InDelta(t, 2960, a.Bills, 1e-6)
	assert.InDelta(t, 1850, a.Insurance, 1e-6)
	assert.InDelta(t, 1110, a.EmergencyFund, 1e-6)
	assert.InDelta(t, 11840, a.HouseSavings, 1e-6)
	assert.InDelta(t, 4070, a.Leisure, 1e-6)
}

func TestComputeAllocation_SumsToIncome(t *testing.T) {
	for _, income := range []float64{10000, 12345.67, 37000, 100000} {
		for pct := 0.0; pct <= 100; pct += 5 {
			a := ComputeAllocation(income, pct)
			assert.InDeltaf(t, income, a.Total(), 1e-6, "income=%v pct=%v", income, pct)
		}
	}
}

func TestComputeAllocation_LeisureGoesNegative(t *testing.T) {
	// 57% fixed + 60% savings overshoots income by 17%.
	a := ComputeAllocation(10000, 60)
	assert.InDelta(t, -1700, a.Leisure, 1e-6)
	assert.InDelta(t, 10000, a.Total(), 1e-6)
}

func TestComputeAllocationWith_CustomSplits(t *testing.T) {
	s := Splits{Essentials: 0.5, Bills: 0.1, Insurance: 0, Emergency: 0}
	a := ComputeAllocationWith(20000, 20, s)

	assert.InDelta(t, 10000, a.Essentials, 1e-9)
	assert.InDelta(t, 2000, a.Bills, 1e-9)
	assert.Zero(t, a.Insurance)
	assert.InDelta(t, 4000, a.HouseSavings, 1e-9)
	assert.InDelta(t, 4000, a.Leisure, 1e-9)
}

func TestMaxSavingsPercent(t *testing.T) {
	assert.InDelta(t, 43, MaxSavingsPercent(DefaultSplits), 1e-9)
}

func TestCategoriesOrder(t *testing.T) {
	cats := ComputeAllocation(37000, 32).Categories()
	labels := make([]string, len(cats))
	for i, c := range cats {
		labels[i] = c.Label
	}
	assert.Equal(t, []string{"Essentials", "Bills", "Insurance", "Emergency Fund", "Leisure/Misc", "House Savings"}, labels)
}
