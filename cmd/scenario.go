package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/model"
	"github.com/theirongolddev/nestplan/internal/planner"
	"github.com/theirongolddev/nestplan/internal/store"
)

var flagScenarioDB string

var scenarioCmd = &cobra.Command{
	Use:     "scenario",
	Aliases: []string{"sc"},
	Short:   "Save, list and compare named plans",
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the current inputs (config, env and flags) under NAME",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioSave,
}

var scenarioListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved scenarios",
	Args:    cobra.NoArgs,
	RunE:    runScenarioList,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show the plan for a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioShow,
}

var scenarioRmCmd = &cobra.Command{
	Use:     "rm NAME",
	Aliases: []string{"delete"},
	Short:   "Delete a saved scenario",
	Args:    cobra.ExactArgs(1),
	RunE:    runScenarioRm,
}

var scenarioCompareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Compare two saved scenarios side by side",
	Args:  cobra.ExactArgs(2),
	RunE:  runScenarioCompare,
}

func init() {
	scenarioCmd.PersistentFlags().StringVar(&flagScenarioDB, "db", store.DefaultPath(), "Scenario database path")
	scenarioCmd.AddCommand(scenarioSaveCmd, scenarioListCmd, scenarioShowCmd, scenarioRmCmd, scenarioCompareCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func openLibrary() (*store.Library, error) {
	lib, err := store.Open(flagScenarioDB)
	if err != nil {
		return nil, fmt.Errorf("opening scenario library: %w", err)
	}
	return lib, nil
}

func runScenarioSave(cmd *cobra.Command, args []string) error {
	_, p, err := loadPlan(cmd)
	if err != nil {
		return err
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer func() { _ = lib.Close() }()

	s, err := lib.Save(cmd.Context(), store.Scenario{Name: args[0], Input: p.Input})
	if err != nil {
		return err
	}

	fmt.Printf("  Saved scenario %q\n", s.Name)
	fmt.Println(cli.RenderMuted(renderInputs(p)))
	return nil
}

func runScenarioList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer func() { _ = lib.Close() }()

	list, err := lib.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("\n  No saved scenarios.")
		fmt.Println("  Save one with: nestplan scenario save NAME --income 45k --savings 30")
		return nil
	}

	fmt.Println()
	fmt.Print(renderScenarioList(list, cfg, time.Now()))
	fmt.Println()
	return nil
}

func runScenarioShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := getScenario(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	p := planner.BuildPlan(s.Input, cfg.Allocation.Splits())
	warn(p.Warnings...)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SCENARIO  " + s.Name))
	fmt.Println(cli.RenderMuted(renderInputs(p)))
	fmt.Println()
	fmt.Print(renderBudget(p))
	fmt.Println()
	fmt.Print(renderProjection(p))
	fmt.Println()
	fmt.Print(renderSummary(p))
	fmt.Println()
	return nil
}

func runScenarioRm(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer func() { _ = lib.Close() }()

	if err := lib.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("  Deleted scenario %q\n", args[0])
	return nil
}

func runScenarioCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a, err := getScenario(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	b, err := getScenario(cmd.Context(), args[1])
	if err != nil {
		return err
	}

	splits := cfg.Allocation.Splits()
	fmt.Println()
	fmt.Print(renderComparison(a.Name, planner.BuildPlan(a.Input, splits), b.Name, planner.BuildPlan(b.Input, splits)))
	fmt.Println()
	return nil
}

func getScenario(ctx context.Context, name string) (store.Scenario, error) {
	lib, err := openLibrary()
	if err != nil {
		return store.Scenario{}, err
	}
	defer func() { _ = lib.Close() }()

	return lib.Get(ctx, name)
}

func renderScenarioList(list []store.Scenario, cfg config.Config, now time.Time) string {
	splits := cfg.Allocation.Splits()
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		p := planner.BuildPlan(s.Input, splits)
		rows = append(rows, []string{
			s.Name,
			cli.FormatMoney(s.Input.Income),
			fmt.Sprintf("%.0f%%", s.Input.SavingsPercent),
			cli.FormatRate(s.Input.AnnualReturn),
			yearsLabel(s.Input.HorizonYears),
			cli.FormatCompact(p.FinalInvested),
			humanize.RelTime(s.UpdatedAt, now, "ago", "from now"),
		})
	}
	return cli.RenderTable(cli.Table{
		Title:   "Scenarios",
		Headers: []string{"Name", "Income", "Saving", "Return", "Horizon", "With SIP", "Updated"},
		Rows:    rows,
	})
}

// renderComparison lays two plans side by side with the B-minus-A delta.
func renderComparison(nameA string, a model.Plan, nameB string, b model.Plan) string {
	money := func(label string, va, vb float64) []string {
		return []string{label, cli.FormatMoney(va), cli.FormatMoney(vb), cli.FormatDelta(vb, va)}
	}

	rows := [][]string{
		money("Income", a.Input.Income, b.Input.Income),
		{"Saving", fmt.Sprintf("%.0f%%", a.Input.SavingsPercent), fmt.Sprintf("%.0f%%", b.Input.SavingsPercent),
			fmt.Sprintf("%+.0f pts", b.Input.SavingsPercent-a.Input.SavingsPercent)},
		{"Return", cli.FormatRate(a.Input.AnnualReturn), cli.FormatRate(b.Input.AnnualReturn), ""},
		{"Horizon", yearsLabel(a.Input.HorizonYears), yearsLabel(b.Input.HorizonYears), ""},
		{"---"},
		money("Monthly saving", a.MonthlySaving, b.MonthlySaving),
		money("Leisure/Misc", a.Allocation.Leisure, b.Allocation.Leisure),
		money("Without investment", a.FinalUninvested, b.FinalUninvested),
		money("With SIP", a.FinalInvested, b.FinalInvested),
		money("Investment gain", a.Gain, b.Gain),
	}

	return cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s vs %s", nameA, nameB),
		Headers: []string{"", nameA, nameB, "Δ"},
		Rows:    rows,
	})
}
