package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/planner"
	"github.com/theirongolddev/nestplan/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Plan]")
	fmt.Printf("    Income:          %s\n", cli.FormatMoney(cfg.Plan.Income))
	fmt.Printf("    Savings:         %.0f%%\n", cfg.Plan.SavingsPercent)
	fmt.Printf("    Annual return:   %s\n", cli.FormatRate(cfg.Plan.AnnualReturn))
	fmt.Printf("    Horizon:         %s\n", yearsLabel(cfg.Plan.HorizonYears))
	for _, env := range []string{config.EnvIncome, config.EnvSavingsPercent, config.EnvAnnualReturn, config.EnvHorizonYears} {
		if v := os.Getenv(env); v != "" {
			fmt.Printf("    %s=%s (override)\n", env, v)
		}
	}
	if err := config.DefaultLimits.Validate(cfg.Plan.Input()); err != nil {
		fmt.Println(cli.RenderWarning(err.Error()))
	}
	fmt.Println()

	fmt.Println("  [Allocation]")
	fmt.Printf("    Essentials:      %.0f%%\n", cfg.Allocation.EssentialsPct)
	fmt.Printf("    Bills:           %.0f%%\n", cfg.Allocation.BillsPct)
	fmt.Printf("    Insurance:       %.0f%%\n", cfg.Allocation.InsurancePct)
	fmt.Printf("    Emergency fund:  %.0f%%\n", cfg.Allocation.EmergencyPct)
	fmt.Printf("    Max savings:     %.0f%% before leisure goes negative\n",
		planner.MaxSavingsPercent(cfg.Allocation.Splits()))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    Directory: %s\n", cfg.ExportDir())
	fmt.Println()

	fmt.Println("  [Serve]")
	fmt.Printf("    Address:  %s\n", cfg.Serve.Addr)
	fmt.Printf("    Interval: %ds\n", cfg.Serve.IntervalSec)
	fmt.Println()

	fmt.Printf("  Scenarios: %s\n", store.DefaultPath())
	fmt.Println("  Run `nestplan setup` to reconfigure.")
	return nil
}
