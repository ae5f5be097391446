package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// namedColors maps the color names players can type to ANSI 256 codes.
// Anything else is handed to lipgloss unchanged, so "#ff3366" and "208"
// work too.
var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"gray":           "245",
	"grey":           "245",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
	"orange":         "208",
	"purple":         "93",
	"pink":           "205",
	"brown":          "130",
	"teal":           "30",
	"gold":           "220",
	"lime":           "118",
	"navy":           "18",
}

// resolveColor turns a cell color into something lipgloss can render.
func resolveColor(c core.Color) lipgloss.TerminalColor {
	name := strings.ToLower(strings.TrimSpace(string(c)))
	if name == "" {
		return lipgloss.NoColor{}
	}
	if code, ok := namedColors[name]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.Color(strings.TrimSpace(string(c)))
}

// ColorNames returns the named colors, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Swatch renders a short block in the given color.
func Swatch(r *lipgloss.Renderer, color string) string {
	return r.NewStyle().Foreground(resolveColor(core.Color(color))).Render("██")
}
