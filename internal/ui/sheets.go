package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"davar/internal/calendar"
	"davar/internal/gesture"
	"davar/internal/nav"
	"davar/internal/scripture"
)

const (
	settingsRows = 5
	bookColumns  = 4
	numberCols   = 10
)

func (m *Model) handleSheetKey(msg tea.KeyMsg) tea.Cmd {
	s := m.store.State()
	if key.Matches(msg, m.keys.Close) {
		return m.dispatch(nav.CloseSheet{})
	}

	switch s.Sheet {
	case nav.SheetWord:
		return m.handleWordKey(msg, s)

	case nav.SheetSettings:
		if cmd, ok := m.handleToggleKey(msg); ok {
			return cmd
		}
		switch msg.String() {
		case "up", "k":
			m.picker.row = max(m.picker.row-1, 0)
		case "down", "j":
			m.picker.row = min(m.picker.row+1, settingsRows-1)
		case "enter", " ":
			return m.activateSetting(s)
		}

	case nav.SheetBook:
		books := scripture.Books()
		if msg.String() == "enter" {
			m.picker = picker{book: books[m.picker.row].English}
			return m.dispatch(nav.OpenSheet{Sheet: nav.SheetChapterVerse})
		}
		m.picker.row = moveGrid(m.picker.row, len(books), bookColumns, msg)

	case nav.SheetHome:
		if key.Matches(msg, m.keys.Tap) {
			return m.dispatch(nav.CloseSheet{})
		}

	case nav.SheetChapterVerse:
		p := m.picker
		if p.chapter == 0 {
			if msg.String() == "enter" {
				m.picker.chapter = p.row + 1
				m.picker.row = 0
				return nil
			}
			m.picker.row = moveGrid(p.row, scripture.ChapterCount(p.book), numberCols, msg)
			return nil
		}
		if msg.String() == "enter" {
			return tea.Batch(
				m.dispatch(nav.GoTo{Key: scripture.NewKey(p.book, p.chapter, p.row+1)}),
				m.dispatch(nav.CloseSheet{}),
			)
		}
		m.picker.row = moveGrid(p.row, scripture.VerseCount(p.book, p.chapter), numberCols, msg)
	}
	return nil
}

func (m *Model) handleWordKey(msg tea.KeyMsg, s nav.State) tea.Cmd {
	n := len(m.verse.tokens)
	switch {
	case key.Matches(msg, m.keys.NextWord):
		m.picker.instance = 0
		return m.dispatch(nav.SwipeWord{Direction: gesture.Left, Count: n})
	case key.Matches(msg, m.keys.PrevWord):
		m.picker.instance = 0
		return m.dispatch(nav.SwipeWord{Direction: gesture.Right, Count: n})
	case key.Matches(msg, m.keys.Tab):
		m.picker.instance = 0
		if s.WordTab == nav.TabMeanings {
			return m.dispatch(nav.SetWordTab{Tab: nav.TabInstances})
		}
		return m.dispatch(nav.SetWordTab{Tab: nav.TabMeanings})
	}

	if s.WordTab != nav.TabInstances {
		return nil
	}
	e, ok := m.currentEntry(s)
	if !ok || len(e.Instances) == 0 {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.NextVerse):
		m.picker.instance = min(m.picker.instance+1, len(e.Instances)-1)
	case key.Matches(msg, m.keys.PrevVerse):
		m.picker.instance = max(m.picker.instance-1, 0)
	case key.Matches(msg, m.keys.Tap):
		ref := e.Instances[min(m.picker.instance, len(e.Instances)-1)].VerseRef
		return m.dispatch(nav.FollowInstance{Ref: ref})
	}
	return nil
}

func (m *Model) activateSetting(s nav.State) tea.Cmd {
	switch m.picker.row {
	case 0:
		return m.dispatch(nav.ToggleTheme{})
	case 1:
		return m.dispatch(nav.SetLanguage{Language: nextLanguage(s.Language)})
	case 2:
		return m.dispatch(nav.Toggle{Flag: nav.FlagAlternate})
	case 3:
		return m.dispatch(nav.Toggle{Flag: nav.FlagFullChapter})
	case 4:
		return m.dispatch(nav.Toggle{Flag: nav.FlagHebrewOnly})
	}
	return nil
}

// moveGrid moves a cursor over n cells laid out in rows of cols.
func moveGrid(cursor, n, cols int, msg tea.KeyMsg) int {
	next := cursor
	switch msg.String() {
	case "left", "h":
		next--
	case "right", "l":
		next++
	case "up", "k":
		next -= cols
	case "down", "j":
		next += cols
	}
	if next < 0 || next >= n {
		return cursor
	}
	return next
}

func (m Model) currentEntry(s nav.State) (scripture.LexicalEntry, bool) {
	if s.WordIndex < 0 || s.WordIndex >= len(m.verse.tokens) {
		return scripture.LexicalEntry{}, false
	}
	e, ok := m.verse.entries[m.verse.tokens[s.WordIndex]]
	return e, ok
}

func (m Model) renderSheet() string {
	st := m.styles()
	s := m.store.State()

	var content string
	switch s.Sheet {
	case nav.SheetWord:
		content = m.wordCard(st, s)
	case nav.SheetSettings:
		content = m.settingsSheet(st, s)
	case nav.SheetBook:
		content = m.bookSheet(st, s)
	case nav.SheetChapterVerse:
		content = m.chapterVerseSheet(st, s)
	case nav.SheetHome:
		content = m.homeSheet(st)
	default:
		return ""
	}
	return st.sheet.Width(max(m.width-2, 10)).Render(content)
}

func (m Model) wordCard(st styles, s nav.State) string {
	lb := m.labels()
	tokens := m.verse.tokens
	if len(tokens) == 0 {
		return st.muted.Render(lb.NoEntry)
	}
	idx := min(max(s.WordIndex, 0), len(tokens)-1)
	word := tokens[idx]
	e, ok := m.verse.entries[word]

	title := st.sheetTitle.Render(word)
	if ok && e.Transliteration != "" {
		title += "  " + st.muted.Render(e.Transliteration)
	}
	lines := []string{title, progressDots(st, idx, len(tokens)), ""}

	if s.ShowAlternate {
		if v, found := scripture.ResolveWordVariant(m.verse.record, word); found {
			lines = append(lines, variantNote(st, v), "")
		}
	}

	if !ok {
		return strings.Join(append(lines, st.muted.Render(lb.NoEntry)), "\n")
	}

	meanings, instances := st.tab, st.tab
	if s.WordTab == nav.TabMeanings {
		meanings = st.tabActive
	} else {
		instances = st.tabActive
	}
	lines = append(lines, meanings.Render(lb.Meanings)+" "+instances.Render(lb.Instances), "")

	if s.WordTab == nav.TabMeanings {
		for i, meaning := range e.Meanings {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, meaning))
		}
		if e.Root != "" {
			lines = append(lines, "", st.altLabel.Render(lb.Root))
			lines = append(lines, st.plain.Render(e.Root)+"  "+st.muted.Render(e.RootTransliteration))
			if e.RootMeaning != "" {
				lines = append(lines, st.muted.Render(e.RootMeaning))
			}
		}
		return strings.Join(lines, "\n")
	}

	for i, in := range e.Instances {
		line := in.VerseRef + "  " + in.Excerpt
		if i == m.picker.instance {
			lines = append(lines, st.selected.Render("▸ "+line))
		} else {
			lines = append(lines, "  "+line)
		}
	}
	lines = append(lines, "", st.muted.Render(lb.TapNavigate))
	return strings.Join(lines, "\n")
}

func progressDots(st styles, active, n int) string {
	dots := make([]string, n)
	for i := range dots {
		if i == active {
			dots[i] = st.verseNum.Render("●")
		} else {
			dots[i] = st.muted.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (m Model) settingsSheet(st styles, s nav.State) string {
	lb := m.labels()

	mode := lb.LightMode
	if s.Theme == nav.Dark {
		mode = lb.DarkMode
	}
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}

	rows := []struct{ label, value, desc string }{
		{lb.Theme, mode, ""},
		{lb.Language, s.Language.NativeName(), ""},
		{lb.Alternate, check(s.ShowAlternate), lb.AltDesc},
		{lb.FullChapter, check(s.ShowFullChapter), lb.FullDesc},
		{lb.HebrewOnly, check(s.HebrewOnly), lb.HebrewDesc},
	}

	lines := []string{st.sheetTitle.Render(lb.Settings), ""}
	for i, r := range rows {
		line := fmt.Sprintf("%-20s %s", r.label, r.value)
		if i == m.picker.row {
			line = st.selected.Render(line)
		}
		if r.desc != "" {
			line += "  " + st.muted.Render(r.desc)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) bookSheet(st styles, s nav.State) string {
	books := scripture.Books()
	cells := make([]string, len(books))
	for i, b := range books {
		cells[i] = b.Name(s.Language)
	}
	cellWidth := max((m.width-8)/bookColumns, 8)
	return st.sheetTitle.Render(m.labels().Books) + "\n\n" +
		renderGrid(st, cells, bookColumns, cellWidth, m.picker.row)
}

func (m Model) chapterVerseSheet(st styles, s nav.State) string {
	lb := m.labels()
	p := m.picker
	book, _ := scripture.LookupBook(p.book)

	var title string
	var n int
	if p.chapter == 0 {
		title = book.Name(s.Language) + " · " + lb.Chapter
		n = scripture.ChapterCount(p.book)
	} else {
		title = book.Name(s.Language) + " " + strconv.Itoa(p.chapter) + " · " + lb.Verse
		n = scripture.VerseCount(p.book, p.chapter)
	}

	cells := make([]string, n)
	for i := range cells {
		cells[i] = strconv.Itoa(i + 1)
	}
	return st.sheetTitle.Render(title) + "\n\n" + renderGrid(st, cells, numberCols, 5, p.row)
}

func renderGrid(st styles, cells []string, cols, cellWidth, cursor int) string {
	cell := lipgloss.NewStyle().Width(cellWidth)
	active := st.selected.Width(cellWidth)

	var rows []string
	for start := 0; start < len(cells); start += cols {
		var row strings.Builder
		for i := start; i < min(start+cols, len(cells)); i++ {
			if i == cursor {
				row.WriteString(active.Render(cells[i]))
			} else {
				row.WriteString(cell.Render(cells[i]))
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func (m Model) homeSheet(st styles) string {
	lb := m.labels()
	header := st.muted.Render(lb.TodayIs) + " " + st.sheetTitle.Render(calendar.Today())

	days := calendar.UpcomingDays(7)
	cells := make([]string, len(days))
	for i, d := range days {
		style := lipgloss.NewStyle().Width(8).Align(lipgloss.Center).Foreground(st.theme.Primary)
		if d.Shabbat {
			style = style.Bold(true).Foreground(st.theme.Accent)
		}
		if i == 0 {
			style = style.Background(st.theme.Highlight)
		}
		cells[i] = style.Render(d.Weekday + "\n" + strconv.Itoa(d.Number) + "\n" + d.Feast)
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return header + "\n\n" + strip + "\n\n" + st.selected.Render(lb.Continue+": "+m.positionName())
}

// positionName is the current reference with the book in the UI language.
func (m Model) positionName() string {
	s := m.store.State()
	name := s.Position.Book
	if b, ok := scripture.LookupBook(name); ok {
		name = b.Name(s.Language)
	}
	return fmt.Sprintf("%s %d:%d", name, s.Position.Chapter, s.Position.Verse)
}
