package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectGrowth_ZeroMonths(t *testing.T) {
	assert.Zero(t, ProjectGrowth(11840, 0.10, 0))
	assert.Zero(t, ProjectGrowth(500, 0.25, -3))
}

func TestProjectGrowth_ZeroRateIsFlat(t *testing.T) {
	for _, n := range []int{1, 12, 60, 360} {
		assert.InDelta(t, 11840*float64(n), ProjectGrowth(11840, 0, n), 1e-6)
	}
}

func TestProjectGrowth_CompoundingDominates(t *testing.T) {
	for _, rate := range []float64{0.01, 0.10, 0.24} {
		for _, n := range []int{1, 12, 60} {
			got := ProjectGrowth(1000, rate, n)
			assert.Greaterf(t, got, 1000*float64(n), "rate=%v n=%v", rate, n)
		}
	}
}

func TestProjectGrowth_FiveYearSIP(t *testing.T) {
	got := ProjectGrowth(11840, 0.10, 60)
	assert.InDelta(t, 924495.39, math.Round(got*100)/100, 0.01)
}

func TestProjectGrowth_MatchesAnnuityDue(t *testing.T) {
	// FV = P * ((1+i)^n - 1) / i * (1+i), equal up to rounding.
	p, r, n := 2500.0, 0.12, 120
	i := r / 12
	closed := p * (math.Pow(1+i, float64(n)) - 1) / i * (1 + i)
	assert.InEpsilon(t, closed, ProjectGrowth(p, r, n), 1e-10)
}

func TestProjectGrowth_SingleMonth(t *testing.T) {
	assert.InDelta(t, 1000*(1+0.12/12), ProjectGrowth(1000, 0.12, 1), 1e-9)
}

func TestBuildProjectionSeries_ReferenceScenario(t *testing.T) {
	series := BuildProjectionSeries(11840, 0.10, 5)
	require.Len(t, series, 5)

	for i, row := range series {
		y := i + 1
		assert.Equal(t, y, row.Year)
		assert.InDelta(t, 142080*float64(y), row.UninvestedTotal, 1e-6)
		assert.GreaterOrEqual(t, row.InvestedTotal, row.UninvestedTotal)
		assert.InDelta(t, ProjectGrowth(11840, 0.10, 12*y), row.InvestedTotal, 1e-9)
	}
	assert.InDelta(t, 150016.13, math.Round(series[0].InvestedTotal*100)/100, 0.01)
}

func TestBuildProjectionSeries_ZeroRateMatchesFlat(t *testing.T) {
	for _, row := range BuildProjectionSeries(5000, 0, 3) {
		assert.InDelta(t, row.UninvestedTotal, row.InvestedTotal, 1e-6)
	}
}

func TestBuildProjectionSeries_EmptyHorizon(t *testing.T) {
	assert.Empty(t, BuildProjectionSeries(11840, 0.10, 0))
	assert.Empty(t, BuildProjectionSeries(11840, 0.10, -1))
}

func TestBuildProjectionSeries_Ascending(t *testing.T) {
	series := BuildProjectionSeries(1000, 0.08, 10)
	for i := 1; i < len(series); i++ {
		assert.Greater(t, series[i].InvestedTotal, series[i-1].InvestedTotal)
		assert.Greater(t, series[i].Year, series[i-1].Year)
	}
}

func BenchmarkProjectGrowth(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ProjectGrowth(11840, 0.10, 360)
	}
}
