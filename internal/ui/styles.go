package ui

import (
	"github.com/charmbracelet/lipgloss"

	"davar/internal/scripture"
	"davar/internal/theme"
)

type styles struct {
	theme theme.Theme

	pill        lipgloss.Style
	reference   lipgloss.Style
	muted       lipgloss.Style
	verseNum    lipgloss.Style
	hebrew      lipgloss.Style
	cursor      lipgloss.Style
	plain       lipgloss.Style
	onboarding  lipgloss.Style
	pulse       lipgloss.Style
	hint        lipgloss.Style
	translation lipgloss.Style
	altLabel    lipgloss.Style
	sheet       lipgloss.Style
	sheetTitle  lipgloss.Style
	selected    lipgloss.Style
	tab         lipgloss.Style
	tabActive   lipgloss.Style
	logo        lipgloss.Style
	err         lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	return styles{
		theme: t,
		pill: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			Background(t.Surface).
			Padding(0, 1),
		reference: lipgloss.NewStyle().Foreground(t.Muted),
		muted:     lipgloss.NewStyle().Foreground(t.Muted),
		verseNum:  lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		hebrew:    lipgloss.NewStyle().Foreground(t.Primary).Underline(true),
		cursor: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Highlight).
			Underline(true),
		plain:       lipgloss.NewStyle().Foreground(t.Primary),
		onboarding:  lipgloss.NewStyle().Bold(true).Foreground(t.Hint).Underline(true),
		pulse:       lipgloss.NewStyle().Foreground(t.Accent).Underline(true),
		hint:        lipgloss.NewStyle().Italic(true).Foreground(t.Hint),
		translation: lipgloss.NewStyle().Foreground(t.Primary),
		altLabel:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(t.BorderActive).
			Padding(0, 2),
		sheetTitle: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		selected:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Background(t.Highlight),
		tab:        lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1),
		tabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			Underline(true).
			Padding(0, 1),
		logo: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		err:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d20f39")),
	}
}

// note is the sticky-note style for a variant reading.
func (s styles) note(tag scripture.ColorTag) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1a1a1a")).
		Background(theme.VariantColor(tag))
}
