package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by the calculator window
type Theme struct {
	Digit    lipgloss.Color
	Operator lipgloss.Color
	Equals   lipgloss.Color
	Clear    lipgloss.Color
	Display  lipgloss.Color
	Focus    lipgloss.Color
	Error    lipgloss.Color
	Muted    lipgloss.Color
}

// DefaultTheme returns the default theme
func DefaultTheme() Theme {
	return Theme{
		Digit:    lipgloss.Color("#ffffff"), // White
		Operator: lipgloss.Color("#00ff00"), // Green
		Equals:   lipgloss.Color("#0000ff"), // Blue
		Clear:    lipgloss.Color("#ff0000"), // Red
		Display:  lipgloss.Color("#ffff00"), // Yellow
		Focus:    lipgloss.Color("#ffa500"), // Orange
		Error:    lipgloss.Color("#ff00ff"), // Magenta
		Muted:    lipgloss.Color("240"),
	}
}

// Themes contains all available themes
var Themes = map[string]Theme{
	"default": DefaultTheme(),
	"monokai": {
		Digit:    lipgloss.Color("#f8f8f2"),
		Operator: lipgloss.Color("#a6e22e"),
		Equals:   lipgloss.Color("#66d9ef"),
		Clear:    lipgloss.Color("#f92672"),
		Display:  lipgloss.Color("#e6db74"),
		Focus:    lipgloss.Color("#fd971f"),
		Error:    lipgloss.Color("#ae81ff"),
		Muted:    lipgloss.Color("#75715e"),
	},
	"solarized": {
		Digit:    lipgloss.Color("#839496"),
		Operator: lipgloss.Color("#859900"),
		Equals:   lipgloss.Color("#268bd2"),
		Clear:    lipgloss.Color("#dc322f"),
		Display:  lipgloss.Color("#b58900"),
		Focus:    lipgloss.Color("#cb4b16"),
		Error:    lipgloss.Color("#d33682"),
		Muted:    lipgloss.Color("#586e75"),
	},
	"nord": {
		Digit:    lipgloss.Color("#d8dee9"),
		Operator: lipgloss.Color("#88c0d0"),
		Equals:   lipgloss.Color("#5e81ac"),
		Clear:    lipgloss.Color("#bf616a"),
		Display:  lipgloss.Color("#ebcb8b"),
		Focus:    lipgloss.Color("#d08770"),
		Error:    lipgloss.Color("#b48ead"),
		Muted:    lipgloss.Color("#4c566a"),
	},
	"dracula": {
		Digit:    lipgloss.Color("#f8f8f2"),
		Operator: lipgloss.Color("#50fa7b"),
		Equals:   lipgloss.Color("#8be9fd"),
		Clear:    lipgloss.Color("#ff5555"),
		Display:  lipgloss.Color("#f1fa8c"),
		Focus:    lipgloss.Color("#ffb86c"),
		Error:    lipgloss.Color("#ff79c6"),
		Muted:    lipgloss.Color("#6272a4"),
	},
}

// ThemeNames lists the keys of Themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
