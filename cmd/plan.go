package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theirongolddev/nestplan/internal/cli"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Full report: budget, projection, summary and tips",
	RunE:  runPlan,
}

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Monthly budget allocation",
	RunE:  runBudget,
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Year-by-year savings projection",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(planCmd, budgetCmd, projectCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	_, p, err := loadPlan(cmd)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("HOUSE SAVINGS PLAN"))
	fmt.Println(cli.RenderMuted(renderInputs(p)))
	fmt.Println()
	fmt.Print(renderBudget(p))
	fmt.Println()
	fmt.Print(renderProjection(p))
	fmt.Println()
	fmt.Print(renderSummary(p))
	if !flagQuiet {
		fmt.Println()
		fmt.Print(renderTips())
	}
	fmt.Println()
	return nil
}

func runBudget(cmd *cobra.Command, _ []string) error {
	_, p, err := loadPlan(cmd)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderMuted(renderInputs(p)))
	fmt.Println()
	fmt.Print(renderBudget(p))
	fmt.Println()
	return nil
}

func runProject(cmd *cobra.Command, _ []string) error {
	_, p, err := loadPlan(cmd)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderMuted(renderInputs(p)))
	fmt.Println()
	fmt.Print(renderProjection(p))
	fmt.Println()
	fmt.Print(renderSummary(p))
	fmt.Println()
	return nil
}
