package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/theirongolddev/nestplan/internal/model"
)

// Validation errors returned by Limits.Validate.
var (
	ErrIncomeOutOfRange  = errors.New("income out of range")
	ErrSavingsOutOfRange = errors.New("savings percent out of range")
	ErrInvalidRate       = errors.New("invalid annual return")
	ErrInvalidHorizon    = errors.New("invalid horizon")
)

// Limits bounds the interactive inputs. The planner itself accepts any
// number; these ranges keep the dashboard and CLI inside sane territory.
type Limits struct {
	MinIncome      float64
	MaxIncome      float64
	IncomeStep     float64
	DefaultIncome  float64
	MinSavings     float64
	MaxSavings     float64
	SavingsStep    float64
	DefaultSavings float64
	MaxRate        float64
	MaxHorizon     int
}

// DefaultLimits are the ranges of the dashboard input controls.
var DefaultLimits = Limits{
	MinIncome:      10_000,
	MaxIncome:      100_000,
	IncomeStep:     500,
	DefaultIncome:  37_000,
	MinSavings:     10,
	MaxSavings:     60,
	SavingsStep:    1,
	DefaultSavings: 32,
	MaxRate:        1,
	MaxHorizon:     50,
}

// ClampIncome keeps v inside [MinIncome, MaxIncome].
func (l Limits) ClampIncome(v float64) float64 {
	return math.Max(l.MinIncome, math.Min(l.MaxIncome, v))
}

// ClampSavings keeps v inside [MinSavings, MaxSavings].
func (l Limits) ClampSavings(v float64) float64 {
	return math.Max(l.MinSavings, math.Min(l.MaxSavings, v))
}

// Validate checks in against the limits.
func (l Limits) Validate(in model.PlanInput) error {
	if in.Income < l.MinIncome || in.Income > l.MaxIncome || math.IsNaN(in.Income) {
		return fmt.Errorf("%w: %.0f not in [%.0f, %.0f]", ErrIncomeOutOfRange, in.Income, l.MinIncome, l.MaxIncome)
	}
	if in.SavingsPercent < l.MinSavings || in.SavingsPercent > l.MaxSavings || math.IsNaN(in.SavingsPercent) {
		return fmt.Errorf("%w: %.1f not in [%.0f, %.0f]", ErrSavingsOutOfRange, in.SavingsPercent, l.MinSavings, l.MaxSavings)
	}
	if in.AnnualReturn < 0 || in.AnnualReturn > l.MaxRate || math.IsNaN(in.AnnualReturn) {
		return fmt.Errorf("%w: %.4f not in [0, %.2f]", ErrInvalidRate, in.AnnualReturn, l.MaxRate)
	}
	if in.HorizonYears < 1 || in.HorizonYears > l.MaxHorizon {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidHorizon, in.HorizonYears, l.MaxHorizon)
	}
	return nil
}
