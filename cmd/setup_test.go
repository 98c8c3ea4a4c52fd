package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/tui"
)

func TestSaveSetupLeavesEnvOverridesOut(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvIncome, "")
	t.Setenv(config.EnvSavingsPercent, "")
	t.Setenv(config.EnvAnnualReturn, "0.15")
	t.Setenv(config.EnvHorizonYears, "9")

	cfg, err := config.LoadSaved()
	require.NoError(t, err)
	vals := tui.SetupValuesFrom(cfg)
	assert.Equal(t, "5", vals.Horizon)

	vals.Theme = "tokyo-night"
	_, err = saveSetup(vals)
	require.NoError(t, err)

	onDisk, err := config.LoadFile(config.Path())
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", onDisk.Appearance.Theme)
	assert.Equal(t, 5, onDisk.Plan.HorizonYears)
	assert.InDelta(t, 0.10, onDisk.Plan.AnnualReturn, 1e-12)
}

func TestSaveSetupRejectsBadAnswers(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	vals := tui.SetupValuesFrom(config.DefaultConfig())
	vals.Income = "5"
	_, err := saveSetup(vals)
	assert.ErrorIs(t, err, config.ErrIncomeOutOfRange)
	assert.False(t, config.Exists())
}
