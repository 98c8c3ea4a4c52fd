package cmd

import (
	"strconv"

	"github.com/spf13/pflag"
	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/model"
)

// moneyFlag is a rupee amount flag accepting "37000", "37,000" or "37k".
type moneyFlag float64

func (m *moneyFlag) String() string {
	return strconv.FormatFloat(float64(*m), 'f', -1, 64)
}

func (m *moneyFlag) Set(s string) error {
	v, err := cli.ParseMoney(s)
	if err != nil {
		return err
	}
	*m = moneyFlag(v)
	return nil
}

func (m *moneyFlag) Type() string { return "amount" }

// rateFlag is an annual return flag accepting "10%", "10" or "0.10".
type rateFlag float64

func (r *rateFlag) String() string {
	return cli.FormatRate(float64(*r))
}

func (r *rateFlag) Set(s string) error {
	v, err := cli.ParseRate(s)
	if err != nil {
		return err
	}
	*r = rateFlag(v)
	return nil
}

func (r *rateFlag) Type() string { return "rate" }

// planFlags are the plan overrides shared by every command.
type planFlags struct {
	income  moneyFlag
	savings float64
	rate    rateFlag
	years   int
}

func bindPlanFlags(fs *pflag.FlagSet, f *planFlags) {
	fs.VarP(&f.income, "income", "i", "Monthly income in rupees (37000, 37,000, 37k)")
	fs.Float64VarP(&f.savings, "savings", "s", 0, "Percent of income saved toward the house")
	fs.VarP(&f.rate, "rate", "r", "Expected annual return (10% or 0.10)")
	fs.IntVarP(&f.years, "years", "y", 0, "Projection horizon in years")
}

// resolveInput layers explicitly set flags over the configured defaults
// (which already include environment overrides) and validates the result.
func resolveInput(cfg config.Config, fs *pflag.FlagSet, f *planFlags) (model.PlanInput, error) {
	in := cfg.Plan.Input()
	if fs.Changed("income") {
		in.Income = float64(f.income)
	}
	if fs.Changed("savings") {
		in.SavingsPercent = f.savings
	}
	if fs.Changed("rate") {
		in.AnnualReturn = float64(f.rate)
	}
	if fs.Changed("years") {
		in.HorizonYears = f.years
	}

	if err := config.DefaultLimits.Validate(in); err != nil {
		return in, err
	}
	return in, nil
}
