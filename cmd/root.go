// Package cmd implements the nestplan CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/model"
	"github.com/theirongolddev/nestplan/internal/planner"
)

var (
	flagPlan    planFlags
	flagQuiet   bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "nestplan",
	Short: "House savings planner",
	Long: "Split a monthly income into a budget and see how the house savings share\n" +
		"grows with and without a monthly SIP.",
	SilenceUsage:      true,
	PersistentPreRunE: setupOutput,
	RunE:              runPlan,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	bindPlanFlags(rootCmd.PersistentFlags(), &flagPlan)
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings and tips")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

func setupOutput(_ *cobra.Command, _ []string) error {
	if flagNoColor || os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

// loadPlan is the shared path used by every report command: config, then
// environment, then flags.
func loadPlan(cmd *cobra.Command) (config.Config, model.Plan, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, model.Plan{}, err
	}

	in, err := resolveInput(cfg, cmd.Flags(), &flagPlan)
	if err != nil {
		return cfg, model.Plan{}, err
	}

	p := planner.BuildPlan(in, cfg.Allocation.Splits())
	warn(p.Warnings...)
	return cfg, p, nil
}

func warn(msgs ...string) {
	if flagQuiet {
		return
	}
	for _, m := range msgs {
		fmt.Fprintf(os.Stderr, "  warning: %s\n", m)
	}
}
