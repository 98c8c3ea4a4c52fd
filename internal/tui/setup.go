package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/tui/theme"
)

// SetupValues holds the raw answers of the setup form.
type SetupValues struct {
	Income  string
	Savings string
	Rate    string
	Horizon string
	Theme   string
}

// SetupValuesFrom pre-fills the form from an existing config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Income:  strconv.FormatFloat(cfg.Plan.Income, 'f', -1, 64),
		Savings: strconv.FormatFloat(cfg.Plan.SavingsPercent, 'f', -1, 64),
		Rate:    cli.FormatRate(cfg.Plan.AnnualReturn),
		Horizon: strconv.Itoa(cfg.Plan.HorizonYears),
		Theme:   cfg.Appearance.Theme,
	}
}

// Apply parses the answers into cfg, validating them against the input limits.
func (v SetupValues) Apply(cfg config.Config) (config.Config, error) {
	income, err := cli.ParseMoney(v.Income)
	if err != nil {
		return cfg, err
	}
	savings, err := strconv.ParseFloat(strings.TrimSpace(v.Savings), 64)
	if err != nil {
		return cfg, fmt.Errorf("invalid savings percent %q", v.Savings)
	}
	rate, err := cli.ParseRate(v.Rate)
	if err != nil {
		return cfg, err
	}
	horizon, err := strconv.Atoi(strings.TrimSpace(v.Horizon))
	if err != nil {
		return cfg, fmt.Errorf("invalid horizon %q", v.Horizon)
	}

	cfg.Plan = config.PlanConfig{
		Income:         income,
		SavingsPercent: savings,
		AnnualReturn:   rate,
		HorizonYears:   horizon,
	}
	if err := config.DefaultLimits.Validate(cfg.Plan.Input()); err != nil {
		return cfg, err
	}
	if theme.Valid(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
	return cfg, nil
}

// NewSetupForm builds the first-run form writing into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	l := config.DefaultLimits

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to nestplan").
				Description("Plan a monthly budget and see how house savings grow.\nThese become your defaults; change them anytime with `nestplan setup`."),
			huh.NewInput().
				Title("Monthly income (₹)").
				Description(fmt.Sprintf("%s to %s", cli.FormatMoney(l.MinIncome), cli.FormatMoney(l.MaxIncome))).
				Placeholder("37000").
				Value(&vals.Income).
				Validate(validateIncome),
			huh.NewInput().
				Title("Savings toward the house (%)").
				Description(fmt.Sprintf("%.0f to %.0f", l.MinSavings, l.MaxSavings)).
				Placeholder("32").
				Value(&vals.Savings).
				Validate(validateSavings),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Expected annual return").
				Placeholder("10%").
				Value(&vals.Rate).
				Validate(validateRate),
			huh.NewInput().
				Title("Horizon (years)").
				Placeholder("5").
				Value(&vals.Horizon).
				Validate(validateHorizon),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.Theme),
		),
	).WithTheme(setupHuhTheme()).WithShowHelp(false)
}

func validateIncome(s string) error {
	v, err := cli.ParseMoney(s)
	if err != nil {
		return err
	}
	l := config.DefaultLimits
	if v < l.MinIncome || v > l.MaxIncome {
		return config.ErrIncomeOutOfRange
	}
	return nil
}

func validateSavings(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	l := config.DefaultLimits
	if v < l.MinSavings || v > l.MaxSavings {
		return config.ErrSavingsOutOfRange
	}
	return nil
}

func validateRate(s string) error {
	v, err := cli.ParseRate(s)
	if err != nil {
		return err
	}
	if v < 0 || v > config.DefaultLimits.MaxRate {
		return config.ErrInvalidRate
	}
	return nil
}

func validateHorizon(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 || v > config.DefaultLimits.MaxHorizon {
		return config.ErrInvalidHorizon
	}
	return nil
}

func setupHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	p := theme.Active

	t.Focused.Title = lipgloss.NewStyle().Foreground(p.AccentBright).Bold(true)
	t.Focused.NoteTitle = lipgloss.NewStyle().Foreground(p.AccentBright).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(p.TextMuted)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(p.Accent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(p.Positive)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(p.TextPrimary)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(p.Accent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.Accent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(p.TextPrimary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(p.TextDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(p.Negative)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(p.TextDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.TextDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(p.TextDim)

	return t
}

// applySetup saves the completed form and switches the dashboard to it.
// The answers are written over the file's own contents; environment
// overrides are layered back on only for the live view.
func (a *App) applySetup() {
	saved, err := a.loadSaved()
	if err != nil {
		a.inputErr = err.Error()
		return
	}
	saved, err = a.setupVals.Apply(saved)
	if err != nil {
		a.inputErr = err.Error()
		return
	}
	if err := a.saveConfig(saved); err != nil {
		a.inputErr = "saving config: " + err.Error()
	}

	live, err := config.WithEnv(saved)
	if err != nil {
		a.inputErr = err.Error()
		live = saved
	}
	a.cfg = live
	theme.SetActive(live.Appearance.Theme, lipgloss.ColorProfile())
	a.projTable.SetStyles(projectionTableStyles())
	a.setInput(live.Plan.Input())
	a.resizeTable()
}
