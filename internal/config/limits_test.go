package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/theirongolddev/nestplan/internal/model"
)

func TestClamp(t *testing.T) {
	l := DefaultLimits
	assert.Equal(t, 10000.0, l.ClampIncome(500))
	assert.Equal(t, 100000.0, l.ClampIncome(1e9))
	assert.Equal(t, 37000.0, l.ClampIncome(37000))
	assert.Equal(t, 10.0, l.ClampSavings(2))
	assert.Equal(t, 60.0, l.ClampSavings(75))
}

func TestValidate(t *testing.T) {
	ok := model.PlanInput{Income: 37000, SavingsPercent: 32, AnnualReturn: 0.1, HorizonYears: 5}
	assert.NoError(t, DefaultLimits.Validate(ok))

	cases := []struct {
		name   string
		mutate func(*model.PlanInput)
		want   error
	}{
		{"income low", func(in *model.PlanInput) { in.Income = 9999 }, ErrIncomeOutOfRange},
		{"income high", func(in *model.PlanInput) { in.Income = 100001 }, ErrIncomeOutOfRange},
		{"savings low", func(in *model.PlanInput) { in.SavingsPercent = 9 }, ErrSavingsOutOfRange},
		{"savings high", func(in *model.PlanInput) { in.SavingsPercent = 61 }, ErrSavingsOutOfRange},
		{"negative rate", func(in *model.PlanInput) { in.AnnualReturn = -0.01 }, ErrInvalidRate},
		{"percent as rate", func(in *model.PlanInput) { in.AnnualReturn = 10 }, ErrInvalidRate},
		{"zero horizon", func(in *model.PlanInput) { in.HorizonYears = 0 }, ErrInvalidHorizon},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := ok
			tc.mutate(&in)
			assert.ErrorIs(t, DefaultLimits.Validate(in), tc.want)
		})
	}
}
