package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/tui"
	"github.com/theirongolddev/nestplan/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive planner dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("tui needs an interactive terminal; try `nestplan plan` instead")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	in, err := resolveInput(cfg, cmd.Flags(), &flagPlan)
	if err != nil {
		return err
	}

	profile := termenv.NewOutput(os.Stdout).EnvColorProfile()
	if flagNoColor {
		profile = termenv.Ascii
	}
	theme.SetActive(cfg.Appearance.Theme, profile)

	// Background styling needs TrueColor; lesser terminals get the ANSI theme.
	if profile == termenv.TrueColor || profile == termenv.ANSI256 {
		lipgloss.SetColorProfile(termenv.TrueColor)
	} else {
		lipgloss.SetColorProfile(profile)
	}

	app := tui.NewApp(cfg, in, !config.Exists())
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
