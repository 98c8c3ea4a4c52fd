package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/nestplan/internal/config"
)

func newTestFlagSet(t *testing.T, args ...string) (*pflag.FlagSet, *planFlags) {
	t.Helper()
	f := &planFlags{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindPlanFlags(fs, f)
	require.NoError(t, fs.Parse(args))
	return fs, f
}

func TestMoneyFlag(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"37000", 37000},
		{"37,000", 37000},
		{"37k", 37000},
		{"₹45,500", 45500},
		{"1.2L", 120000},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var m moneyFlag
			require.NoError(t, m.Set(tt.in))
			assert.InDelta(t, tt.want, float64(m), 1e-9)
		})
	}

	var m moneyFlag
	assert.Error(t, m.Set("plenty"))
	assert.Equal(t, "amount", m.Type())
}

func TestRateFlag(t *testing.T) {
	var r rateFlag
	require.NoError(t, r.Set("12%"))
	assert.InDelta(t, 0.12, float64(r), 1e-12)
	assert.Equal(t, "12%", r.String())

	require.NoError(t, r.Set("0.08"))
	assert.InDelta(t, 0.08, float64(r), 1e-12)
}

func TestResolveInputDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	fs, f := newTestFlagSet(t)

	in, err := resolveInput(cfg, fs, f)
	require.NoError(t, err)
	assert.Equal(t, cfg.Plan.Input(), in)
}

func TestResolveInputFlagsOverrideConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	fs, f := newTestFlagSet(t, "-i", "45k", "--savings", "25", "-r", "8%", "--years=10")

	in, err := resolveInput(cfg, fs, f)
	require.NoError(t, err)
	assert.Equal(t, 45000.0, in.Income)
	assert.Equal(t, 25.0, in.SavingsPercent)
	assert.InDelta(t, 0.08, in.AnnualReturn, 1e-12)
	assert.Equal(t, 10, in.HorizonYears)
}

func TestResolveInputOnlyChangedFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Plan.Income = 50000
	fs, f := newTestFlagSet(t, "-s", "40")

	in, err := resolveInput(cfg, fs, f)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, in.Income)
	assert.Equal(t, 40.0, in.SavingsPercent)
	assert.Equal(t, 5, in.HorizonYears)
}

func TestResolveInputRejectsOutOfRange(t *testing.T) {
	cfg := config.DefaultConfig()

	fs, f := newTestFlagSet(t, "--income", "5000")
	_, err := resolveInput(cfg, fs, f)
	assert.ErrorIs(t, err, config.ErrIncomeOutOfRange)

	fs, f = newTestFlagSet(t, "--savings", "75")
	_, err = resolveInput(cfg, fs, f)
	assert.ErrorIs(t, err, config.ErrSavingsOutOfRange)

	fs, f = newTestFlagSet(t, "--years", "0")
	_, err = resolveInput(cfg, fs, f)
	assert.ErrorIs(t, err, config.ErrInvalidHorizon)
}
