package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/nestplan/internal/model"
)

func referenceInput() model.PlanInput {
	return model.PlanInput{Income: 37000, SavingsPercent: 32, AnnualReturn: 0.10, HorizonYears: 5}
}

func TestBuildPlan_ReferenceScenario(t *testing.T) {
	p := BuildPlan(referenceInput(), DefaultSplits)

	assert.InDelta(t, 11840, p.MonthlySaving, 1e-9)
	assert.InDelta(t, 142080, p.AnnualSaving, 1e-9)
	require.Len(t, p.Projection, 5)
	assert.InDelta(t, 710400, p.FinalUninvested, 1e-6)
	assert.InDelta(t, p.Projection[4].InvestedTotal, p.FinalInvested, 1e-9)
	assert.InDelta(t, p.FinalInvested-p.FinalUninvested, p.Gain, 1e-9)
	assert.Empty(t, p.Warnings)
	assert.False(t, p.LeisureDeficit())
}

func TestAllocate_MatchesPlanBudget(t *testing.T) {
	in := referenceInput()
	b := in.Budget()
	assert.Equal(t, model.BudgetInput{Income: 37000, SavingsPercent: 32}, b)

	a := Allocate(b, DefaultSplits)
	assert.Equal(t, ComputeAllocation(37000, 32), a)
	assert.Equal(t, a, BuildPlan(in, DefaultSplits).Allocation)
}

func TestBuildPlan_FlagsLeisureDeficit(t *testing.T) {
	in := model.PlanInput{Income: 10000, SavingsPercent: 60, AnnualReturn: 0.10, HorizonYears: 5}
	p := BuildPlan(in, DefaultSplits)

	assert.True(t, p.LeisureDeficit())
	assert.InDelta(t, -1700, p.Allocation.Leisure, 1e-6, "leisure must not be clamped")
	require.Len(t, p.Warnings, 1)
	assert.Contains(t, p.Warnings[0], "leisure is negative")
	assert.Contains(t, p.Warnings[0], "43%")
}

func TestBuildPlan_ZeroHorizon(t *testing.T) {
	in := referenceInput()
	in.HorizonYears = 0
	p := BuildPlan(in, DefaultSplits)

	assert.Empty(t, p.Projection)
	assert.Zero(t, p.FinalInvested)
	assert.Zero(t, p.Gain)
}

func TestPlanShare(t *testing.T) {
	p := BuildPlan(referenceInput(), DefaultSplits)
	assert.InDelta(t, 0.32, p.Share(p.Allocation.HouseSavings), 1e-12)
	assert.Zero(t, model.Plan{}.Share(100))
}

func TestHeadline(t *testing.T) {
	p := BuildPlan(referenceInput(), DefaultSplits)
	assert.Equal(t,
		"You're saving ₹11,840/month. In 5 years, that becomes ₹924,495 with investment returns!",
		Headline(p))

	in := referenceInput()
	in.HorizonYears = 1
	assert.True(t, strings.Contains(Headline(BuildPlan(in, DefaultSplits)), "In 1 year,"))
}

func TestTipsReturnsCopy(t *testing.T) {
	got := Tips()
	require.Len(t, got, 5)
	got[0] = "mutated"
	assert.NotEqual(t, "mutated", Tips()[0])
}
