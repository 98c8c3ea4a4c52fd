package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/nestplan/internal/model"
	"github.com/theirongolddev/nestplan/internal/planner"
)

func referencePlan() model.Plan {
	return planner.BuildPlan(model.PlanInput{
		Income: 37000, SavingsPercent: 32, AnnualReturn: 0.10, HorizonYears: 5,
	}, planner.DefaultSplits)
}

func TestWriteCSV_ReferenceScenario(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, referencePlan()))

	want := strings.Join([]string{
		"Year,Without Investment (₹),With SIP @10% Return (₹)",
		"1,142080.00,150016.13",
		"2,284160.00,315740.91",
		"3,426240.00,498819.23",
		"4,568320.00,701068.26",
		"5,710400.00,924495.39",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_EmptyProjection(t *testing.T) {
	p := referencePlan()
	p.Projection = nil

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, p))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestHeadersUseRate(t *testing.T) {
	p := referencePlan()
	p.Input.AnnualReturn = 0.125
	assert.Equal(t, "With SIP @12.5% Return (₹)", Headers(p)[2])
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "2.50", Round2(2.499999).StringFixed(2))
	assert.Equal(t, "1.13", Round2(1.125).StringFixed(2))
	assert.Equal(t, "-1.13", Round2(-1.125).StringFixed(2))
}

func TestWriteJSON(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, referencePlan(), now))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2026-01-02T03:04:05Z", got["generated_at"])

	alloc, ok := got["allocation"].([]any)
	require.True(t, ok)
	require.Len(t, alloc, 6)
	first := alloc[0].(map[string]any)
	assert.Equal(t, "Essentials", first["category"])
	assert.Equal(t, "15170", first["amount"])
	assert.Equal(t, "0.41", first["share"])

	summary := got["summary"].(map[string]any)
	assert.Equal(t, "924495.39", summary["final_invested"])
	assert.Contains(t, summary["headline"], "₹11,840/month")
}

func TestDiff(t *testing.T) {
	assert.Empty(t, Diff("a\nb\n", "a\nb\n"))

	d := Diff("Year\n1,100\n2,200\n", "Year\n1,100\n2,250\n")
	assert.Contains(t, d, "- 2,200\n")
	assert.Contains(t, d, "+ 2,250\n")
	assert.Contains(t, d, "  1,100\n")
}
