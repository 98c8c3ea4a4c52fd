package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < 4; active++ {
		a := App{activeTab: active}
		pos := 0

		for i := 0; i < 4; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < 3 {
				pos++ // separator
			}
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Fatalf("active=%d x past last tab -> %d, want -1", active, got)
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Budget"),
		len("Projection"),
		len("Export"),
		len("Settings"),
	}

	w := nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx {
		w += 2 // "[" and "]" around the shortcut
		if tabIdx == 3 {
			w++ // inactive Settings appends "[x]" instead
		}
	}
	return w
}

func TestMouseClickSelectsTab(t *testing.T) {
	a := newTestApp(t)

	// Budget is active: " Budget " is 8 wide, then a separator.
	m, _ := a.Update(tea.MouseMsg{X: 12, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	a = m.(App)
	if a.activeTab != tabProjection {
		t.Fatalf("activeTab = %d, want %d", a.activeTab, tabProjection)
	}

	// Clicks below the tab bar are ignored.
	m, _ = a.Update(tea.MouseMsg{X: 2, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	a = m.(App)
	if a.activeTab != tabProjection {
		t.Fatalf("click outside tab bar changed tab to %d", a.activeTab)
	}
}
