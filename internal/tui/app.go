// Package tui provides the interactive Bubble Tea dashboard for nestplan.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/nestplan/internal/cli"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/model"
	"github.com/theirongolddev/nestplan/internal/planner"
	"github.com/theirongolddev/nestplan/internal/tui/components"
	"github.com/theirongolddev/nestplan/internal/tui/theme"
)

// Tab indexes, in tab bar order.
const (
	tabBudget = iota
	tabProjection
	tabExport
	tabSettings
)

// App is the root Bubble Tea model.
type App struct {
	cfg    config.Config
	limits config.Limits
	splits planner.Splits

	// Current inputs and the plan derived from them
	input model.PlanInput
	plan  model.Plan

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Direct income entry
	editingIncome bool
	incomeInput   textinput.Model
	inputErr      string

	// Per-tab state
	projTable table.Model
	export    exportState
	settings  settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues // pointer: the form writes through it across model copies
	needSetup bool

	// Injected for tests
	loadSaved  func() (config.Config, error)
	saveConfig func(config.Config) error
	now        func() time.Time
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5 // minimum content area height
)

// NewApp creates a new dashboard model for cfg, starting from in. When
// needSetup is set the first-run form is shown before the dashboard.
func NewApp(cfg config.Config, in model.PlanInput, needSetup bool) App {
	a := App{
		cfg:        cfg,
		limits:     config.DefaultLimits,
		splits:     cfg.Allocation.Splits(),
		projTable:  newProjectionTable(),
		needSetup:  needSetup,
		loadSaved:  config.LoadSaved,
		saveConfig: config.Save,
		now:        time.Now,
	}
	a.setInput(in)

	if needSetup {
		// Pre-fill from the file, not from env overrides.
		saved, err := a.loadSaved()
		if err != nil {
			saved = config.DefaultConfig()
		}
		vals := SetupValuesFrom(saved)
		a.setupVals = &vals
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a
}

// Plan returns the plan currently shown.
func (a App) Plan() model.Plan {
	return a.plan
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// setInput clamps in to the interactive limits and rebuilds the plan.
func (a *App) setInput(in model.PlanInput) {
	in.Income = a.limits.ClampIncome(in.Income)
	in.SavingsPercent = a.limits.ClampSavings(in.SavingsPercent)
	if in.HorizonYears < 1 {
		in.HorizonYears = 1
	}
	a.input = in
	a.plan = planner.BuildPlan(in, a.splits)
	a.projTable.SetRows(projectionRows(a.plan))
}

func (a *App) adjustSavings(delta float64) {
	in := a.input
	in.SavingsPercent += delta
	a.setInput(in)
}

func (a *App) adjustIncome(delta float64) {
	in := a.input
	in.Income += delta
	a.setInput(in)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeTable()
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabProjection {
				a.projTable.MoveUp(1)
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == tabProjection {
				a.projTable.MoveDown(1)
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar is the first line
			if msg.Action == tea.MouseActionPress && msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.editingIncome {
		var cmd tea.Cmd
		a.incomeInput, cmd = a.incomeInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if a.editingIncome {
		return a.updateIncomeInput(msg)
	}

	// Settings tab has its own keybindings (text input)
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// Dismiss help
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "+", "=":
		a.adjustSavings(a.limits.SavingsStep)
		return a, nil
	case "-", "_":
		a.adjustSavings(-a.limits.SavingsStep)
		return a, nil
	case "]":
		a.adjustIncome(a.limits.IncomeStep)
		return a, nil
	case "[":
		a.adjustIncome(-a.limits.IncomeStep)
		return a, nil
	case "i":
		return a.startIncomeInput()
	}

	switch a.activeTab {
	case tabProjection:
		switch key {
		case "j", "down":
			a.projTable.MoveDown(1)
			return a, nil
		case "k", "up":
			a.projTable.MoveUp(1)
			return a, nil
		case "g":
			a.projTable.GotoTop()
			return a, nil
		case "G":
			a.projTable.GotoBottom()
			return a, nil
		}

	case tabExport:
		switch key {
		case "w", "enter":
			a.writeExport(formatCSV)
			return a, nil
		case "W":
			a.writeExport(formatJSON)
			return a, nil
		}

	case tabSettings:
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	// Tab navigation
	switch key {
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

func (a App) startIncomeInput() (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Prompt = cli.Currency + " "
	ti.Placeholder = fmt.Sprintf("%.0f (also 37k, 37,000)", a.input.Income)
	ti.CharLimit = 16
	ti.Width = 24
	ti.Focus()

	a.incomeInput = ti
	a.editingIncome = true
	a.inputErr = ""
	return a, textinput.Blink
}

func (a App) updateIncomeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		val := strings.TrimSpace(a.incomeInput.Value())
		a.editingIncome = false
		if val == "" {
			return a, nil
		}
		v, err := cli.ParseMoney(val)
		if err != nil {
			a.inputErr = err.Error()
			return a, nil
		}
		if v != a.limits.ClampIncome(v) {
			a.inputErr = fmt.Sprintf("income clamped to %s–%s",
				cli.FormatMoney(a.limits.MinIncome), cli.FormatMoney(a.limits.MaxIncome))
		}
		in := a.input
		in.Income = v
		a.setInput(in)
		return a, nil
	case "esc":
		a.editingIncome = false
		return a, nil
	}

	var cmd tea.Cmd
	a.incomeInput, cmd = a.incomeInput.Update(msg)
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  nestplan needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Plan", []struct{ key, desc string }{
			{"+ -", fmt.Sprintf("Savings %% up / down by %.0f", a.limits.SavingsStep)},
			{"] [", fmt.Sprintf("Income up / down by %s", cli.FormatMoney(a.limits.IncomeStep))},
			{"i", "Type an income"},
		}},
		{"Navigation", []struct{ key, desc string }{
			{"b p e x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move in tables and settings"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"w W", "Write CSV / JSON (Export tab)"},
			{"Enter", "Edit setting / Confirm"},
			{"Esc", "Cancel"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + input pill
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	pill := pillStyle.Render(" income ") + pillAccent.Render(cli.FormatMoney(a.input.Income)) +
		pillStyle.Render(" │ savings ") + pillAccent.Render(cli.FormatPercent(a.input.SavingsPercent/100)) +
		pillStyle.Render(" │ return ") + pillAccent.Render(cli.FormatRate(a.input.AnnualReturn)) +
		pillStyle.Render(" │ horizon ") + pillAccent.Render(yearsLabel(a.input.HorizonYears))
	if a.editingIncome {
		pill = pillStyle.Render(" new income ") + a.incomeInput.View()
	} else if a.inputErr != "" {
		pill += pillStyle.Render(" │ ") + lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface).Render(a.inputErr)
	}

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(pill)

	// 2. Status bar
	warning := ""
	if a.plan.LeisureDeficit() {
		warning = fmt.Sprintf("leisure deficit %s", cli.FormatMoney(a.plan.Allocation.Leisure))
	}
	summary := fmt.Sprintf("%s/mo → %s in %s",
		cli.FormatMoney(a.plan.MonthlySaving), cli.FormatCompact(a.plan.FinalInvested), yearsLabel(a.input.HorizonYears))
	statusBar := components.RenderStatusBar(w, summary, warning)

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabProjection:
		content = a.renderProjectionTab(cw)
	case tabExport:
		content = a.renderExportTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func yearsLabel(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes use the same widths RenderTabBar draws.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
