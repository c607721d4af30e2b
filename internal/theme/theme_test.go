package theme

import (
	"testing"

	"davar/internal/scripture"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, Dark, GetTheme("dark"))
	assert.Equal(t, Light, GetTheme("light"))
	assert.Equal(t, Light, GetTheme("dracula"))
	assert.Len(t, AllThemes(), 2)
}

func TestVariantColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#F4A7C0"), VariantColor(scripture.ColorPink))
	assert.Equal(t, VariantColor(scripture.ColorYellow), VariantColor("mauve"))
}

func TestHintIsCopper(t *testing.T) {
	for _, th := range AllThemes() {
		assert.Equal(t, lipgloss.Color("#B87333"), th.Hint, th.Name)
	}
}
