// Package ui is the terminal reader: one bubbletea model that draws the
// verse, the word card and the other sheets, and turns keys and mouse drags
// into navigation actions.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"davar/internal/gesture"
	"davar/internal/nav"
	"davar/internal/scripture"
	"davar/internal/settings"
	"davar/internal/theme"
)

const (
	launchDuration = 2500 * time.Millisecond
	pulseInterval  = 600 * time.Millisecond
)

// Options configures a Model.
type Options struct {
	Resolver     *scripture.Resolver
	Prefs        settings.Store
	State        nav.State
	Metrics      gesture.CellMetrics
	LaunchScreen bool
	Logger       zerolog.Logger
}

type Model struct {
	resolver *scripture.Resolver
	store    *nav.Store
	log      zerolog.Logger

	keys      keyMap
	help      help.Model
	viewport  viewport.Model
	textInput textinput.Model

	metrics    gesture.CellMetrics
	vertical   *gesture.Recognizer
	horizontal *gesture.Recognizer
	longPress  *gesture.LongPress
	press      pressInfo

	verse   verseData
	chapter chapterData
	cursor  int
	picker  picker

	launching bool
	pulse     bool
	searching bool
	searchErr error
	loading   bool
	width     int
	height    int
	ready     bool
}

// verseData is everything the reader shows for one position.
type verseData struct {
	key     scripture.VerseKey
	record  scripture.VerseRecord
	tokens  []string
	entries map[string]scripture.LexicalEntry
	prev    string
	next    string
}

type chapterData struct {
	book    string
	chapter int
	verses  []scripture.KeyedVerse
}

// picker is the cursor state of the sheet that is open.
type picker struct {
	row      int
	book     string
	chapter  int // 0 while the chapter is being picked
	instance int
}

// pressInfo is the cell where the current mouse press started.
type pressInfo struct {
	active bool
	x, y   int
}

type launchDoneMsg struct{}
type verseLoadedMsg struct{ verse verseData }
type chapterLoadedMsg struct{ chapter chapterData }

// NewModel builds the reader. Saved preferences in opts.Prefs override the
// theme and language of opts.State.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.CharLimit = 40
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)

	prefs := opts.Prefs
	if prefs == nil {
		prefs = settings.NewMemory()
	}
	log := opts.Logger.With().Str("component", "ui").Logger()

	store := nav.NewStore(applyPrefs(opts.State, prefs))
	store.Subscribe(func(prev, next nav.State) {
		if prev.Theme != next.Theme {
			if err := prefs.Set(settings.KeyTheme, string(next.Theme)); err != nil {
				log.Warn().Err(err).Msg("save theme")
			}
		}
		if prev.Language != next.Language {
			if err := prefs.Set(settings.KeyLanguage, string(next.Language)); err != nil {
				log.Warn().Err(err).Msg("save language")
			}
		}
	})

	metrics := opts.Metrics
	if metrics.Width <= 0 || metrics.Height <= 0 {
		metrics = gesture.DefaultCellMetrics
	}

	return Model{
		resolver:   opts.Resolver,
		store:      store,
		log:        log,
		keys:       defaultKeyMap(),
		help:       help.New(),
		textInput:  ti,
		metrics:    metrics,
		vertical:   gesture.NewVertical(),
		horizontal: gesture.NewHorizontal(),
		longPress:  gesture.NewLongPress(),
		launching:  opts.LaunchScreen,
		loading:    true,
	}
}

func applyPrefs(s nav.State, prefs settings.Store) nav.State {
	if v, ok := prefs.Get(settings.KeyTheme); ok {
		if mode, ok := nav.ParseThemeMode(v); ok {
			s.Theme = mode
		}
	}
	if v, ok := prefs.Get(settings.KeyLanguage); ok {
		if lang, err := scripture.ParseLanguage(v); err == nil {
			s.Language = lang
		}
	}
	return s
}

// State returns the current reader state.
func (m Model) State() nav.State {
	return m.store.State()
}

func (m Model) Init() tea.Cmd {
	s := m.store.State()
	cmds := []tea.Cmd{loadVerse(m.resolver, s.Position)}
	if s.ShowFullChapter {
		cmds = append(cmds, loadChapter(m.resolver, s.Position.Book, s.Position.Chapter))
	}
	if nav.ShowOnboardingHint(s) {
		cmds = append(cmds, pulseTick())
	}
	if m.launching {
		cmds = append(cmds, tea.Tick(launchDuration, func(time.Time) tea.Msg {
			return launchDoneMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

// pulseMsg flips the onboarding highlight. The tick stops once the hint is
// latched off.
type pulseMsg struct{}

func pulseTick() tea.Cmd {
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg { return pulseMsg{} })
}

func loadVerse(r *scripture.Resolver, key scripture.VerseKey) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		rec := r.ResolveVerse(ctx, key)
		tokens := scripture.Tokenize(rec.Hebrew)

		entries := make(map[string]scripture.LexicalEntry)
		for _, tok := range tokens {
			if _, seen := entries[tok]; seen {
				continue
			}
			if e, ok := r.ResolveWord(ctx, tok); ok {
				entries[tok] = e
			}
		}

		v := verseData{key: key, record: rec, tokens: tokens, entries: entries}
		if key.Verse > 1 {
			prevKey := scripture.NewKey(key.Book, key.Chapter, key.Verse-1)
			if prev, ok := r.LookupVerse(ctx, prevKey); ok {
				v.prev = prev.Hebrew
			}
		}
		nextKey := scripture.NewKey(key.Book, key.Chapter, key.Verse+1)
		if next, ok := r.LookupVerse(ctx, nextKey); ok {
			v.next = next.Hebrew
		}
		return verseLoadedMsg{v}
	}
}

func loadChapter(r *scripture.Resolver, book string, chapter int) tea.Cmd {
	return func() tea.Msg {
		verses := r.ResolveChapter(context.Background(), book, chapter)
		return chapterLoadedMsg{chapterData{book: book, chapter: chapter, verses: verses}}
	}
}

// dispatch applies a to the store and returns the loads the change needs.
func (m *Model) dispatch(a nav.Action) tea.Cmd {
	prev := m.store.State()
	next := m.store.Dispatch(a)

	if prev.Sheet == nav.SheetWord && next.Sheet != nav.SheetWord {
		m.cursor = next.WordIndex
	}
	if next.Sheet != prev.Sheet {
		m.picker.instance = 0
	}

	var cmds []tea.Cmd
	if next.Position != prev.Position {
		m.cursor = 0
		m.loading = true
		cmds = append(cmds, loadVerse(m.resolver, next.Position))
	}
	if next.ShowFullChapter && (!prev.ShowFullChapter ||
		next.Position.Book != m.chapter.book || next.Position.Chapter != m.chapter.chapter) {
		cmds = append(cmds, loadChapter(m.resolver, next.Position.Book, next.Position.Chapter))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.viewportHeight())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.viewportHeight()
		}

	case launchDoneMsg:
		m.launching = false

	case pulseMsg:
		if !nav.ShowOnboardingHint(m.store.State()) {
			m.pulse = false
			break
		}
		m.pulse = !m.pulse
		cmds = append(cmds, pulseTick())

	case verseLoadedMsg:
		if msg.verse.key != m.store.State().Position {
			break
		}
		m.verse = msg.verse
		m.loading = false
		if m.cursor >= len(m.verse.tokens) {
			m.cursor = 0
		}

	case chapterLoadedMsg:
		m.chapter = msg.chapter
		m.viewport.GotoTop()

	case gesture.LongPressMsg, gesture.HintExpiredMsg:
		cmds = append(cmds, m.longPress.Update(msg))

	case tea.MouseMsg:
		if !m.launching && !m.searching {
			cmds = append(cmds, m.handleMouse(msg))
		}

	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)
	}

	m.syncViewport()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.launching {
		m.launching = false
		return nil, msg.String() == "ctrl+c"
	}

	if m.searching {
		return m.handleSearchKey(msg), false
	}

	if key.Matches(msg, m.keys.Quit) {
		return nil, true
	}

	if m.store.State().Sheet != nav.SheetNone {
		return m.handleSheetKey(msg), false
	}
	return m.handleReaderKey(msg), false
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.searching = false
		m.searchErr = nil
		m.textInput.Blur()
		m.textInput.SetValue("")
		return nil
	case "enter":
		k, err := scripture.ParseVerseKey(m.textInput.Value())
		if err != nil {
			m.searchErr = err
			return nil
		}
		m.searching = false
		m.searchErr = nil
		m.textInput.Blur()
		m.textInput.SetValue("")
		return m.dispatch(nav.GoTo{Key: k})
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

// handleToggleKey covers the keys that work both in the reader and in the
// settings sheet.
func (m *Model) handleToggleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Theme):
		return m.dispatch(nav.ToggleTheme{}), true
	case key.Matches(msg, m.keys.Language):
		return m.dispatch(nav.SetLanguage{Language: nextLanguage(m.store.State().Language)}), true
	case key.Matches(msg, m.keys.Alternate):
		return m.dispatch(nav.Toggle{Flag: nav.FlagAlternate}), true
	case key.Matches(msg, m.keys.FullChapter):
		return m.dispatch(nav.Toggle{Flag: nav.FlagFullChapter}), true
	case key.Matches(msg, m.keys.HebrewOnly):
		return m.dispatch(nav.Toggle{Flag: nav.FlagHebrewOnly}), true
	}
	return nil, false
}

func (m *Model) handleReaderKey(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.handleToggleKey(msg); ok {
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.NextVerse):
		return m.dispatch(nav.NextVerse{})
	case key.Matches(msg, m.keys.PrevVerse):
		return m.dispatch(nav.PrevVerse{})
	case key.Matches(msg, m.keys.NextChapter):
		return m.dispatch(nav.NextChapter{})
	case key.Matches(msg, m.keys.PrevChapter):
		return m.dispatch(nav.PrevChapter{})
	case key.Matches(msg, m.keys.NextWord):
		m.cursor = nav.CycleWord(m.cursor, len(m.verse.tokens), gesture.Left)
	case key.Matches(msg, m.keys.PrevWord):
		m.cursor = nav.CycleWord(m.cursor, len(m.verse.tokens), gesture.Right)
	case key.Matches(msg, m.keys.Tap):
		return m.tapWord(m.cursor)
	case key.Matches(msg, m.keys.Books):
		return m.openSheet(nav.SheetBook)
	case key.Matches(msg, m.keys.ChapterVerse):
		return m.openSheet(nav.SheetChapterVerse)
	case key.Matches(msg, m.keys.Settings):
		return m.openSheet(nav.SheetSettings)
	case key.Matches(msg, m.keys.Home):
		return m.openSheet(nav.SheetHome)
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m.textInput.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeViewport()
	default:
		if m.store.State().ShowFullChapter {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
	}
	return nil
}

// tapWord handles a tap on the token at index. Words without a lexicon entry
// open nothing, but still count as an interaction.
func (m *Model) tapWord(index int) tea.Cmd {
	if index < 0 || index >= len(m.verse.tokens) {
		return nil
	}
	m.cursor = index
	_, ok := m.verse.entries[m.verse.tokens[index]]
	return m.dispatch(nav.TapWord{Index: index, HasEntry: ok})
}

func (m *Model) openSheet(sheet nav.Sheet) tea.Cmd {
	pos := m.store.State().Position
	m.picker = picker{}
	switch sheet {
	case nav.SheetBook:
		m.picker.row = max(scripture.BookIndex(pos.Book), 0)
	case nav.SheetChapterVerse:
		m.picker.book = pos.Book
		m.picker.row = max(pos.Chapter-1, 0)
	}
	return m.dispatch(nav.OpenSheet{Sheet: sheet})
}

func nextLanguage(l scripture.Language) scripture.Language {
	langs := scripture.Languages()
	for i, candidate := range langs {
		if candidate == l {
			return langs[(i+1)%len(langs)]
		}
	}
	return scripture.English
}

func (m Model) viewportHeight() int {
	return max(m.height-headerHeight-lipgloss.Height(m.helpView()), 1)
}

func (m *Model) resizeViewport() {
	if m.ready {
		m.viewport.Height = m.viewportHeight()
	}
}

// syncViewport re-renders the full chapter so scrolling sees current content.
func (m *Model) syncViewport() {
	if !m.ready || !m.store.State().ShowFullChapter {
		return
	}
	m.viewport.SetContent(m.renderChapter())
}

func (m Model) styles() styles {
	return newStyles(theme.GetTheme(string(m.store.State().Theme)))
}

func (m Model) labels() labels {
	return labelsFor(m.store.State().Language)
}
