package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/tui/components"
	"github.com/theirongolddev/nestplan/internal/tui/theme"
)

const (
	settingsFieldTheme = iota
	settingsFieldIncome
	settingsFieldSavings
	settingsFieldRate
	settingsFieldHorizon
	settingsFieldExportDir
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message
	saveErr error // non-nil if the last edit or save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := a.cfg
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldIncome:
		ti.Placeholder = "37000 (also 37k, 37,000)"
		ti.SetValue(strconv.FormatFloat(cfg.Plan.Income, 'f', -1, 64))
	case settingsFieldSavings:
		ti.Placeholder = fmt.Sprintf("%.0f-%.0f", a.limits.MinSavings, a.limits.MaxSavings)
		ti.SetValue(strconv.FormatFloat(cfg.Plan.SavingsPercent, 'f', -1, 64))
	case settingsFieldRate:
		ti.Placeholder = "10% or 0.10"
		ti.SetValue(cli.FormatRate(cfg.Plan.AnnualReturn))
	case settingsFieldHorizon:
		ti.Placeholder = fmt.Sprintf("1-%d", a.limits.MaxHorizon)
		ti.SetValue(strconv.Itoa(cfg.Plan.HorizonYears))
	case settingsFieldExportDir:
		ti.Placeholder = ". (working directory)"
		ti.SetValue(cfg.Export.Dir)
	}

	ti.Focus()
	a.settings.input = ti
	return a, textinput.Blink
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited field. Return rate and horizon also apply
// to the plan on screen; income and savings only change the saved defaults.
// The file is rewritten from its own contents plus the one edited field, so
// environment overrides in a.cfg stay out of it.
func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())
	a.settings.saveErr = nil

	var edit func(*config.Config)
	switch a.settings.cursor {
	case settingsFieldTheme:
		if !theme.Valid(val) {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return
		}
		edit = func(c *config.Config) { c.Appearance.Theme = val }
		theme.SetActive(val, lipgloss.ColorProfile())
		a.projTable.SetStyles(projectionTableStyles())
	case settingsFieldIncome:
		v, err := cli.ParseMoney(val)
		if err == nil && v != a.limits.ClampIncome(v) {
			err = fmt.Errorf("%w: %s", config.ErrIncomeOutOfRange, cli.FormatMoney(v))
		}
		if err != nil {
			a.settings.saveErr = err
			return
		}
		edit = func(c *config.Config) { c.Plan.Income = v }
	case settingsFieldSavings:
		v, err := strconv.ParseFloat(val, 64)
		if err == nil && v != a.limits.ClampSavings(v) {
			err = fmt.Errorf("%w: %s", config.ErrSavingsOutOfRange, val)
		}
		if err != nil {
			a.settings.saveErr = err
			return
		}
		edit = func(c *config.Config) { c.Plan.SavingsPercent = v }
	case settingsFieldRate:
		v, err := cli.ParseRate(val)
		if err == nil && (v < 0 || v > a.limits.MaxRate) {
			err = fmt.Errorf("%w: %s", config.ErrInvalidRate, val)
		}
		if err != nil {
			a.settings.saveErr = err
			return
		}
		edit = func(c *config.Config) { c.Plan.AnnualReturn = v }
		in := a.input
		in.AnnualReturn = v
		a.setInput(in)
	case settingsFieldHorizon:
		v, err := strconv.Atoi(val)
		if err == nil && (v < 1 || v > a.limits.MaxHorizon) {
			err = fmt.Errorf("%w: %s", config.ErrInvalidHorizon, val)
		}
		if err != nil {
			a.settings.saveErr = err
			return
		}
		edit = func(c *config.Config) { c.Plan.HorizonYears = v }
		in := a.input
		in.HorizonYears = v
		a.setInput(in)
		a.resizeTable()
	case settingsFieldExportDir:
		edit = func(c *config.Config) { c.Export.Dir = val }
	default:
		return
	}

	edit(&a.cfg)

	saved, err := a.loadSaved()
	if err != nil {
		a.settings.saveErr = err
		return
	}
	edit(&saved)
	a.settings.saveErr = a.saveConfig(saved)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Positive).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	exportDir := cfg.Export.Dir
	if exportDir == "" {
		exportDir = "(working directory)"
	}

	fields := []struct{ label, value string }{
		{"Theme", cfg.Appearance.Theme},
		{"Default Income", cli.FormatMoney(cfg.Plan.Income)},
		{"Default Savings", cli.FormatPercent(cfg.Plan.SavingsPercent / 100)},
		{"Annual Return", cli.FormatRate(cfg.Plan.AnnualReturn)},
		{"Horizon", yearsLabel(cfg.Plan.HorizonYears)},
		{"Export Dir", exportDir},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := components.CardInnerWidth(cw) - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Not saved: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	splits := a.splits
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()) + "\n")
	infoBody.WriteString(labelStyle.Render("Fixed splits: ") + valueStyle.Render(fmt.Sprintf(
		"essentials %s · bills %s · insurance %s · emergency %s",
		cli.FormatPercent(splits.Essentials), cli.FormatPercent(splits.Bills),
		cli.FormatPercent(splits.Insurance), cli.FormatPercent(splits.Emergency))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
