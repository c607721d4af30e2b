package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"davar/internal/nav"
	"davar/internal/scripture"
)

// headerHeight is the header line plus the blank line under it.
const headerHeight = 2

// readerFrame is the rendered reader plus the screen regions that react to
// the mouse.
type readerFrame struct {
	lines          []string
	spans          map[int][]wordSpan // word columns by screen row
	translationTop int
	translationEnd int
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.launching {
		return m.launchView()
	}

	s := m.store.State()

	var body []string
	if s.ShowFullChapter {
		body = append(body, m.renderHeader(), "")
		body = append(body, strings.Split(m.viewport.View(), "\n")...)
	} else {
		body = m.renderReader().lines
	}

	if m.searching && len(body) > 1 {
		body[1] = m.searchView()
	}

	height := m.bodyHeight()
	body = fitLines(body, height)

	if s.Sheet != nav.SheetNone {
		sheet := strings.Split(m.renderSheet(), "\n")
		top := max(height-len(sheet), 0)
		body = fitLines(append(body[:top:top], sheet...), height)
	}

	return strings.Join(body, "\n") + "\n" + m.helpView()
}

func (m Model) launchView() string {
	st := m.styles()
	logo := st.logo.Render("דבר")
	tagline := st.muted.Render(m.labels().Tagline)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, logo, "", tagline))
}

func (m Model) helpView() string {
	return m.help.View(m.keys)
}

func (m Model) bodyHeight() int {
	return max(m.height-lipgloss.Height(m.helpView()), 1)
}

// sheetTop is the first screen row covered by the open sheet.
func (m Model) sheetTop() int {
	if m.store.State().Sheet == nav.SheetNone {
		return m.bodyHeight()
	}
	return max(m.bodyHeight()-lipgloss.Height(m.renderSheet()), 0)
}

func (m Model) searchView() string {
	st := m.styles()
	ti := m.textInput
	ti.Prompt = "/ "
	ti.Placeholder = m.labels().GoTo
	line := ti.View()
	if m.searchErr != nil {
		line += "  " + st.err.Render(m.searchErr.Error())
	}
	return line
}

func (m Model) renderHeader() string {
	st := m.styles()
	s := m.store.State()
	pos := s.Position

	book, _ := scripture.LookupBook(pos.Book)
	pill := st.pill.Render(strings.ToUpper(book.English) + " | " + book.Hebrew)
	ref := st.reference.Render(book.Name(s.Language) + " " + strconv.Itoa(pos.Chapter) + ":" + strconv.Itoa(pos.Verse))
	left := pill + " " + ref
	right := st.logo.Render("דבר")

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// textWidth is the column budget for verse text.
func (m Model) textWidth() int {
	return max(min(m.width-4, 64), 10)
}

func (m Model) center(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

func (m Model) renderReader() readerFrame {
	st := m.styles()
	lb := m.labels()
	s := m.store.State()

	f := readerFrame{spans: map[int][]wordSpan{}}
	add := func(lines ...string) {
		f.lines = append(f.lines, lines...)
	}

	add(m.renderHeader(), "")

	if m.verse.key.Book == "" {
		add(m.center(st.muted.Render(lb.Loading)))
		return f
	}

	width := m.textWidth()
	margin := max((m.width-width)/2, 0)
	rec := m.verse.record
	tokens := m.verse.tokens

	add(m.center(st.muted.Render(ansi.Truncate(m.verse.prev, width, "…"))), "")
	add(m.center(st.verseNum.Render(strconv.Itoa(s.Position.Verse))), "")

	for _, line := range wrapWords(tokens, width) {
		row := len(f.lines)
		var b strings.Builder
		col := 0
		spans := placeWords(tokens, line, width)
		for i := range spans {
			spans[i].start += margin
			spans[i].end += margin
			b.WriteString(strings.Repeat(" ", spans[i].start-col))
			b.WriteString(m.wordStyle(st, s, spans[i].index).Render(tokens[spans[i].index]))
			col = spans[i].end
		}
		f.spans[row] = spans
		add(b.String())
	}

	if s.ShowAlternate {
		for _, tok := range tokens {
			if v, ok := scripture.ResolveWordVariant(rec, tok); ok {
				add("", m.center(variantNote(st, v)))
			}
		}
	}

	add("")
	f.translationTop = len(f.lines)
	if !s.HebrewOnly {
		add(m.block(st.translation, width, rec.Translation(s.Language))...)
	}
	f.translationEnd = len(f.lines)

	if s.ShowAlternate && rec.HasAlternate() {
		add("", m.center(st.altLabel.Render(lb.Alternate)))
		add(m.block(st.plain, width, rec.AltText)...)
		if !s.HebrewOnly && rec.AltTranslation != "" {
			add(m.block(st.muted, width, rec.AltTranslation)...)
		}
	}

	add("", m.center(st.muted.Render(ansi.Truncate(m.verse.next, width, "…"))), "")

	switch {
	case m.longPress.Visible():
		add(m.center(st.hint.Render(lb.SwipeHint)))
	case nav.ShowOnboardingHint(s):
		add(m.center(st.hint.Render(lb.TapHint)))
	}

	return f
}

// block wraps text to width and centers every line on screen.
func (m Model) block(style lipgloss.Style, width int, text string) []string {
	if text == "" {
		return nil
	}
	rendered := style.Width(width).Align(lipgloss.Center).Render(text)
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		lines[i] = m.center(l)
	}
	return lines
}

func (m Model) wordStyle(st styles, s nav.State, index int) lipgloss.Style {
	tok := m.verse.tokens[index]
	if s.ShowAlternate {
		if v, ok := scripture.ResolveWordVariant(m.verse.record, tok); ok {
			return st.note(v.Color)
		}
	}
	switch {
	case index == 0 && nav.ShowOnboardingHint(s) && m.pulse:
		return st.pulse
	case index == 0 && nav.ShowOnboardingHint(s):
		return st.onboarding
	case index == m.cursor:
		return st.cursor
	}
	if _, ok := m.verse.entries[tok]; ok {
		return st.hebrew
	}
	return st.plain
}

func variantNote(st styles, v scripture.WordVariant) string {
	return st.note(v.Color).Render(" "+v.Label+" ") + " " + v.AlternateForm + " ← " + v.StandardForm
}

// renderChapter draws every verse of the loaded chapter for the viewport.
func (m Model) renderChapter() string {
	st := m.styles()
	lb := m.labels()
	s := m.store.State()

	if len(m.chapter.verses) == 0 {
		return st.muted.Render(lb.Loading)
	}

	width := m.textWidth()
	var b strings.Builder
	for _, kv := range m.chapter.verses {
		num := st.verseNum.Render(strconv.Itoa(kv.Key.Verse))
		if kv.Key == s.Position {
			num = st.selected.Render(strconv.Itoa(kv.Key.Verse))
		}
		b.WriteString(num + "\n")

		for _, line := range m.chapterHebrew(st, s, kv.Record, width) {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, line) + "\n")
		}
		if !s.HebrewOnly {
			b.WriteString(st.translation.Width(width).Render(kv.Record.Translation(s.Language)) + "\n")
		}
		if s.ShowAlternate && kv.Record.HasAlternate() {
			b.WriteString(st.altLabel.Render(lb.Alternate) + "\n")
			b.WriteString(st.muted.Width(width).Render(kv.Record.AltText) + "\n")
			if !s.HebrewOnly && kv.Record.AltTranslation != "" {
				b.WriteString(st.muted.Width(width).Render(kv.Record.AltTranslation) + "\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// chapterHebrew lays out one verse right to left with variants inline.
func (m Model) chapterHebrew(st styles, s nav.State, rec scripture.VerseRecord, width int) []string {
	tokens := scripture.Tokenize(rec.Hebrew)
	plain := make([]string, len(tokens))
	styled := make([]string, len(tokens))
	for i, tok := range tokens {
		plain[i] = tok
		styled[i] = st.plain.Render(tok)
		if !s.ShowAlternate {
			continue
		}
		if v, ok := scripture.ResolveWordVariant(rec, tok); ok {
			plain[i] = v.AlternateForm + " (" + tok + ")"
			styled[i] = st.note(v.Color).Render(v.AlternateForm) + " " + st.muted.Render("("+tok+")")
		}
	}

	var lines []string
	for _, line := range wrapWords(plain, width) {
		parts := make([]string, 0, len(line))
		for i := len(line) - 1; i >= 0; i-- {
			parts = append(parts, styled[line[i]])
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

// fitLines pads or cuts lines to exactly n.
func fitLines(lines []string, n int) []string {
	if len(lines) >= n {
		return lines[:n]
	}
	out := make([]string, n)
	copy(out, lines)
	return out
}
