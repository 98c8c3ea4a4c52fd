package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/nestplan/internal/export"
	"github.com/theirongolddev/nestplan/internal/planner"
	"github.com/theirongolddev/nestplan/internal/tui/components"
	"github.com/theirongolddev/nestplan/internal/tui/theme"
)

type exportFormat int

const (
	formatCSV exportFormat = iota
	formatJSON
)

// exportState tracks the last export written from the Export tab.
type exportState struct {
	lastPath string
	changed  int // lines that differ from the file previously at lastPath
	err      error
}

func (f exportFormat) fileName() string {
	if f == formatJSON {
		return strings.TrimSuffix(export.DefaultFileName, ".csv") + ".json"
	}
	return export.DefaultFileName
}

func (a App) exportPath(f exportFormat) string {
	return filepath.Join(a.cfg.ExportDir(), f.fileName())
}

// writeExport renders the current plan and writes it to the export dir.
func (a *App) writeExport(f exportFormat) {
	path := a.exportPath(f)

	var buf bytes.Buffer
	var err error
	if f == formatJSON {
		err = export.WriteJSON(&buf, a.plan, a.now())
	} else {
		err = export.WriteCSV(&buf, a.plan)
	}
	if err != nil {
		a.export = exportState{err: err}
		return
	}

	changed := -1
	if prev, readErr := os.ReadFile(path); readErr == nil { //nolint:gosec // user-chosen export dir
		changed = countChangedLines(export.Diff(string(prev), buf.String()))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		a.export = exportState{err: fmt.Errorf("creating export dir: %w", err)}
		return
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // exports are meant to be shared
		a.export = exportState{err: fmt.Errorf("writing %s: %w", path, err)}
		return
	}
	a.export = exportState{lastPath: path, changed: changed}
}

func countChangedLines(diff string) int {
	n := 0
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+ ") || strings.HasPrefix(line, "- ") {
			n++
		}
	}
	return n
}

func (a App) renderExportTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	okStyle := lipgloss.NewStyle().Foreground(t.Positive).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Negative).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)

	var body strings.Builder
	body.WriteString(labelStyle.Render("CSV:   ") + valueStyle.Render(a.exportPath(formatCSV)) + "\n")
	body.WriteString(labelStyle.Render("JSON:  ") + valueStyle.Render(a.exportPath(formatJSON)) + "\n\n")
	body.WriteString(keyStyle.Render("[w]") + labelStyle.Render(" write CSV   ") +
		keyStyle.Render("[W]") + labelStyle.Render(" write JSON"))

	switch {
	case a.export.err != nil:
		body.WriteString("\n\n" + errStyle.Render("Export failed: "+a.export.err.Error()))
	case a.export.lastPath != "":
		msg := "Wrote " + a.export.lastPath
		switch {
		case a.export.changed == 0:
			msg += " (unchanged)"
		case a.export.changed > 0:
			msg += fmt.Sprintf(" (%d lines changed)", a.export.changed)
		}
		body.WriteString("\n\n" + okStyle.Render(msg))
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Download Projection", body.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Summary", accentStyle.Render(planner.Headline(a.plan)), cw))
	b.WriteString("\n")

	var tips strings.Builder
	for i, tip := range planner.Tips() {
		if i > 0 {
			tips.WriteString("\n")
		}
		tips.WriteString(keyStyle.Render("• ") + valueStyle.Render(tip))
	}
	b.WriteString(components.ContentCard("Tips for Your House Goal", tips.String(), cw))

	return b.String()
}
