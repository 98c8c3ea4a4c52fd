// Package theme defines color themes for the nestplan dashboard.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme maps the dashboard's color roles to one palette.
type Theme struct {
	Name string

	// Chrome.
	Background    lipgloss.Color
	Surface       lipgloss.Color // cards and panels
	SurfaceHover  lipgloss.Color // active tab, selected row
	SurfaceBright lipgloss.Color
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // help overlay, focused input
	TextDim       lipgloss.Color
	TextMuted     lipgloss.Color
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color

	// Status, from healthy to overspent.
	Positive lipgloss.Color
	Caution  lipgloss.Color
	Warning  lipgloss.Color
	Negative lipgloss.Color

	// Buckets is indexed in model.BudgetAllocation.Categories order:
	// essentials, bills, insurance, emergency fund, leisure, house savings.
	Buckets [6]lipgloss.Color

	// Projection chart series.
	Invested   lipgloss.Color
	Uninvested lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default: warm paper tones on near-black.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    "#100F0F",
	Surface:       "#1C1B1A",
	SurfaceHover:  "#282726",
	SurfaceBright: "#343331",
	Border:        "#403E3C",
	BorderAccent:  "#3AA99F",
	TextDim:       "#575653",
	TextMuted:     "#878580",
	TextPrimary:   "#FFFCF0",
	Accent:        "#3AA99F",
	AccentBright:  "#5BC8BE",

	Positive: "#A3B859",
	Caution:  "#D0A215",
	Warning:  "#DA702C",
	Negative: "#D14D41",

	Buckets: [6]lipgloss.Color{"#4385BE", "#24837B", "#CE5D97", "#D0A215", "#DA702C", "#879A39"},

	Invested:   "#879A39",
	Uninvested: "#878580",
}

// CatppuccinMocha is the pastel mocha palette.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    "#1E1E2E",
	Surface:       "#313244",
	SurfaceHover:  "#45475A",
	SurfaceBright: "#585B70",
	Border:        "#585B70",
	BorderAccent:  "#89B4FA",
	TextDim:       "#6C7086",
	TextMuted:     "#A6ADC8",
	TextPrimary:   "#CDD6F4",
	Accent:        "#89B4FA",
	AccentBright:  "#B4D0FB",

	Positive: "#C6F6C1",
	Caution:  "#F9E2AF",
	Warning:  "#FAB387",
	Negative: "#F38BA8",

	Buckets: [6]lipgloss.Color{"#89B4FA", "#94E2D5", "#F5C2E7", "#F9E2AF", "#FAB387", "#A6E3A1"},

	Invested:   "#A6E3A1",
	Uninvested: "#A6ADC8",
}

// TokyoNight is a cool blue and purple palette.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    "#1A1B26",
	Surface:       "#24283B",
	SurfaceHover:  "#343A52",
	SurfaceBright: "#414868",
	Border:        "#565F89",
	BorderAccent:  "#7AA2F7",
	TextDim:       "#565F89",
	TextMuted:     "#A9B1D6",
	TextPrimary:   "#C0CAF5",
	Accent:        "#7AA2F7",
	AccentBright:  "#A9C1FF",

	Positive: "#B9E87A",
	Caution:  "#E0AF68",
	Warning:  "#FF9E64",
	Negative: "#F7768E",

	Buckets: [6]lipgloss.Color{"#7AA2F7", "#7DCFFF", "#BB9AF7", "#E0AF68", "#FF9E64", "#9ECE6A"},

	Invested:   "#9ECE6A",
	Uninvested: "#A9B1D6",
}

// Terminal sticks to the 16 ANSI colors so it renders anywhere.
var Terminal = Theme{
	Name:          "terminal",
	Background:    "0",
	Surface:       "0",
	SurfaceHover:  "8",
	SurfaceBright: "8",
	Border:        "8",
	BorderAccent:  "6",
	TextDim:       "8",
	TextMuted:     "7",
	TextPrimary:   "15",
	Accent:        "6",
	AccentBright:  "14",

	Positive: "10",
	Caution:  "3",
	Warning:  "11",
	Negative: "1",

	Buckets: [6]lipgloss.Color{"4", "6", "5", "3", "11", "2"},

	Invested:   "2",
	Uninvested: "7",
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// Names returns the names of all themes in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Valid reports whether name is a known theme.
func Valid(name string) bool {
	for _, t := range All {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ForProfile picks the named theme, falling back to Terminal when the
// output cannot show 256 colors or more.
func ForProfile(name string, p termenv.Profile) Theme {
	if p == termenv.ANSI || p == termenv.Ascii {
		return Terminal
	}
	return ByName(name)
}

// SetActive sets the active theme by name, downgrading to Terminal when
// the output profile cannot show the palette.
func SetActive(name string, p termenv.Profile) {
	Active = ForProfile(name, p)
}
