package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/nestplan/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar. A non-empty warning replaces
// the right-hand summary and is drawn in the warning color.
func RenderStatusBar(width int, summary, warning string) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	left := base.Render(" ") +
		keyStyle.Render("+/-") + base.Render(" savings  ") +
		keyStyle.Render("[/]") + base.Render(" income  ") +
		keyStyle.Render("i") + base.Render(" type  ") +
		keyStyle.Render("?") + base.Render(" help  ") +
		keyStyle.Render("q") + base.Render(" quit")

	right := base.Render(summary + " ")
	if warning != "" {
		right = lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface).Bold(true).Render("⚠ " + warning + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return left + base.Render(strings.Repeat(" ", padding)) + right
}
