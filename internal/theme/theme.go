package theme

import (
	"github.com/charmbracelet/lipgloss"

	"davar/internal/scripture"
)

// Theme defines the color scheme for the application
type Theme struct {
	Name string

	// Text colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Hint      lipgloss.Color

	// UI element colors
	Border       lipgloss.Color
	BorderActive lipgloss.Color
	Background   lipgloss.Color
	Surface      lipgloss.Color
	Highlight    lipgloss.Color
}

// Available themes
var (
	Light = Theme{
		Name:         "light",
		Primary:      lipgloss.Color("#1a1a1a"),
		Secondary:    lipgloss.Color("#0038B8"),
		Accent:       lipgloss.Color("#CD7F32"),
		Muted:        lipgloss.Color("#6b6b6b"),
		Hint:         lipgloss.Color("#B87333"),
		Border:       lipgloss.Color("#cccccc"),
		BorderActive: lipgloss.Color("#0038B8"),
		Background:   lipgloss.Color("#FDFDF9"),
		Surface:      lipgloss.Color("#F5F4F0"),
		Highlight:    lipgloss.Color("#faf6f0"),
	}

	Dark = Theme{
		Name:         "dark",
		Primary:      lipgloss.Color("#ebdbb2"),
		Secondary:    lipgloss.Color("#7AA0D6"),
		Accent:       lipgloss.Color("#CD7F32"),
		Muted:        lipgloss.Color("#a89984"),
		Hint:         lipgloss.Color("#B87333"),
		Border:       lipgloss.Color("#32302f"),
		BorderActive: lipgloss.Color("#5C6199"),
		Background:   lipgloss.Color("#0F0E12"),
		Surface:      lipgloss.Color("#17161A"),
		Highlight:    lipgloss.Color("#1F1E23"),
	}
)

// AllThemes returns a list of all available themes
func AllThemes() []Theme {
	return []Theme{Light, Dark}
}

// GetTheme returns a theme by name, defaulting to Light if not found
func GetTheme(name string) Theme {
	if name == Dark.Name {
		return Dark
	}
	return Light
}

// variantColors are the sticky-note colors for word variants.
var variantColors = map[scripture.ColorTag]lipgloss.Color{
	scripture.ColorYellow: lipgloss.Color("#F6D55C"),
	scripture.ColorPink:   lipgloss.Color("#F4A7C0"),
	scripture.ColorGreen:  lipgloss.Color("#8BC48A"),
	scripture.ColorLime:   lipgloss.Color("#C6E377"),
	scripture.ColorRed:    lipgloss.Color("#E57373"),
	scripture.ColorTeal:   lipgloss.Color("#4DB6AC"),
}

// VariantColor maps a variant tag to its note color. Unknown tags are yellow.
func VariantColor(tag scripture.ColorTag) lipgloss.Color {
	if c, ok := variantColors[tag]; ok {
		return c
	}
	return variantColors[scripture.ColorYellow]
}
