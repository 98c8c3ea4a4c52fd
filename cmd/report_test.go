package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/model"
	"github.com/theirongolddev/nestplan/internal/planner"
	"github.com/theirongolddev/nestplan/internal/store"
)

func referencePlan() model.Plan {
	return planner.BuildPlan(config.DefaultConfig().Plan.Input(), planner.DefaultSplits)
}

func TestRenderBudget(t *testing.T) {
	out := renderBudget(referencePlan())

	assert.Contains(t, out, "Monthly Budget")
	assert.Contains(t, out, "House Savings")
	assert.Contains(t, out, "₹11,840")
	assert.Contains(t, out, "₹15,170")
	assert.Contains(t, out, "32.0%")
	assert.Contains(t, out, "₹37,000")
}

func TestRenderProjection(t *testing.T) {
	out := renderProjection(referencePlan())

	assert.Contains(t, out, "With SIP @10%")
	assert.Contains(t, out, "Year 5")
	assert.Contains(t, out, "₹710,400")
	assert.Contains(t, out, "₹924,495")
	assert.Contains(t, out, "Growth")
}

func TestRenderSummaryHeadline(t *testing.T) {
	out := renderSummary(referencePlan())
	assert.Contains(t, out, "You're saving ₹11,840/month. In 5 years, that becomes ₹924,495")
}

func TestRenderComparison(t *testing.T) {
	a := referencePlan()
	in := a.Input
	in.SavingsPercent = 40
	b := planner.BuildPlan(in, planner.DefaultSplits)

	out := renderComparison("base", a, "stretch", b)
	assert.Contains(t, out, "base vs stretch")
	assert.Contains(t, out, "+8 pts")
	assert.Contains(t, out, "+₹2,960") // 37000 * 8%
	assert.Contains(t, out, "₹14,800")
}

func TestRenderScenarioList(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	list := []store.Scenario{{
		Name:      "base",
		Input:     config.DefaultConfig().Plan.Input(),
		UpdatedAt: now.Add(-2 * time.Hour),
	}}

	out := renderScenarioList(list, config.DefaultConfig(), now)
	assert.Contains(t, out, "base")
	assert.Contains(t, out, "₹9.2L")
	assert.Contains(t, out, "2 hours ago")
}

func TestExportFormat(t *testing.T) {
	tests := []struct {
		explicit, path, want string
	}{
		{"", "", "csv"},
		{"", "plan.json", "json"},
		{"", "plan.JSON", "json"},
		{"csv", "plan.json", "csv"},
		{"JSON", "", "json"},
	}
	for _, tt := range tests {
		got, err := exportFormat(tt.explicit, tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "explicit=%q path=%q", tt.explicit, tt.path)
	}

	_, err := exportFormat("xlsx", "")
	assert.Error(t, err)
}

func TestExportFormatFollowsCheckFile(t *testing.T) {
	got, err := exportFormat("", exportTarget("plan.csv", "golden.json"))
	require.NoError(t, err)
	assert.Equal(t, "json", got)

	got, err = exportFormat("", exportTarget("plan.json", ""))
	require.NoError(t, err)
	assert.Equal(t, "json", got)

	got, err = exportFormat("", exportTarget("plan.json", "golden.csv"))
	require.NoError(t, err)
	assert.Equal(t, "csv", got)

	// The --out path must not leak into the --check path's extension.
	got, err = exportFormat("", exportTarget("plan.", "json"))
	require.NoError(t, err)
	assert.Equal(t, "csv", got)
}

func TestDefaultExportPath(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, "house_savings_projection.csv", defaultExportPath(cfg, "csv"))

	cfg.Export.Dir = "/tmp/out"
	assert.Equal(t, filepath.Join("/tmp/out", "house_savings_projection.json"), defaultExportPath(cfg, "json"))
}

func TestCheckExport(t *testing.T) {
	p := referencePlan()
	path := filepath.Join(t.TempDir(), "plan.csv")

	data, err := renderExport(p, "csv", time.Now())
	require.NoError(t, err)
	require.NoError(t, writeExportFile(path, data))

	assert.NoError(t, checkExport(path, data, "csv"))

	in := p.Input
	in.SavingsPercent = 33
	changed, err := renderExport(planner.BuildPlan(in, planner.DefaultSplits), "csv", time.Now())
	require.NoError(t, err)
	assert.ErrorIs(t, checkExport(path, changed, "csv"), errExportStale)

	assert.Error(t, checkExport(filepath.Join(t.TempDir(), "missing.csv"), data, "csv"))
}

func TestCheckExportIgnoresJSONTimestamp(t *testing.T) {
	p := referencePlan()
	path := filepath.Join(t.TempDir(), "plan.json")

	first, err := renderExport(p, "json", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, first, 0o600))

	later, err := renderExport(p, "json", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NoError(t, checkExport(path, later, "json"))
}

func TestFilterDetachArg(t *testing.T) {
	got := filterDetachArg([]string{"serve", "--detach", "--addr", ":9000", "--detach=true"})
	assert.Equal(t, []string{"serve", "--addr", ":9000"}, got)
}

func TestPIDAndStateFiles(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "nestplan.pid")

	require.NoError(t, ensureServiceNotRunning(pidFile))

	require.NoError(t, writePID(pidFile, 4242))
	pid, err := readPID(pidFile)
	require.NoError(t, err)
	assert.Equal(t, 4242, pid)

	st := serveRuntimeState{PID: 4242, Addr: "127.0.0.1:8788", StartedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, writeState(statePath(pidFile), st))
	got, err := readState(statePath(pidFile))
	require.NoError(t, err)
	assert.Equal(t, st.Addr, got.Addr)
	assert.True(t, st.StartedAt.Equal(got.StartedAt))

	require.NoError(t, os.WriteFile(pidFile, []byte("nope\n"), 0o600))
	_, err = readPID(pidFile)
	assert.Error(t, err)
}

func TestProcessAliveSelf(t *testing.T) {
	assert.True(t, processAlive(os.Getpid()))
}
