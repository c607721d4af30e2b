package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"davar/internal/gesture"
	"davar/internal/nav"
	"davar/internal/scripture"
	"davar/internal/settings"
	"davar/internal/store"
)

func newTestModel(t *testing.T, prefs settings.Store) Model {
	t.Helper()
	mem := store.NewMemory()
	m := NewModel(Options{
		Resolver: scripture.NewResolver(mem, mem, zerolog.Nop()),
		Prefs:    prefs,
		State:    nav.DefaultState(),
		Logger:   zerolog.Nop(),
	})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return run(t, m, loadVerse(m.resolver, m.State().Position))
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// press sends a key and runs the loads it triggers.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(keyMsg(k))
		m = run(t, next.(Model), cmd)
	}
	return m
}

// run executes cmd and feeds its messages back into the model. Commands
// returned by those updates are dropped so timers never block a test.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = run(t, m, c)
		}
		return m
	}
	return send(t, m, msg)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func view(m Model) string {
	return ansi.Strip(m.View())
}

// wordCell returns a screen cell inside the token at index.
func wordCell(t *testing.T, m Model, index int) (int, int) {
	t.Helper()
	for row, spans := range m.renderReader().spans {
		for _, s := range spans {
			if s.index == index {
				return s.start, row
			}
		}
	}
	t.Fatalf("word %d not on screen", index)
	return 0, 0
}

func TestReaderShowsVerse(t *testing.T) {
	m := newTestModel(t, nil)
	out := view(m)

	assert.Contains(t, out, "GENESIS | בראשית")
	assert.Contains(t, out, "Genesis 1:1")
	assert.Contains(t, out, "בְּרֵאשִׁית")
	assert.Contains(t, out, "In the beginning God created the heavens and the earth.")
	assert.Contains(t, out, "Tap a word to explore")
	assert.Contains(t, out, "וְהָאָרֶץ", "next verse snippet")
}

func TestVerseNavigationKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "j")
	assert.Equal(t, scripture.NewKey("Genesis", 1, 2), m.State().Position)
	assert.Equal(t, scripture.NewKey("Genesis", 1, 2), m.verse.key)
	assert.Contains(t, view(m), "formless")

	m = press(t, m, "k", "k")
	assert.Equal(t, 1, m.State().Position.Verse)

	m = press(t, m, "J")
	assert.Equal(t, scripture.NewKey("Genesis", 2, 1), m.State().Position)
}

func TestMissingVerseFallsBackToDefaultRecord(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "J")

	assert.Equal(t, scripture.NewKey("Genesis", 2, 1), m.State().Position)
	assert.Equal(t, scripture.DefaultVerse().Hebrew, m.verse.record.Hebrew)
}

func TestStaleVerseIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	stale := loadVerse(m.resolver, scripture.NewKey("Psalms", 23, 1))()
	m = send(t, m, stale)
	assert.Equal(t, scripture.DefaultKey, m.verse.key)
}

func TestTapWordOpensCard(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "enter")
	s := m.State()
	assert.Equal(t, nav.SheetWord, s.Sheet)
	assert.Equal(t, 0, s.WordIndex)
	assert.True(t, s.HasInteractedWithWord)

	out := view(m)
	assert.Contains(t, out, "bereshit")
	assert.Contains(t, out, "in the beginning")
	assert.Contains(t, out, "ראש")
	assert.NotContains(t, out, "Tap a word to explore")
}

func TestTapWordWithoutEntry(t *testing.T) {
	m := newTestModel(t, nil)

	// Token 3 is אֵת, which has no lexicon entry.
	m = press(t, m, "h", "h", "h", "enter")
	s := m.State()
	assert.Equal(t, nav.SheetNone, s.Sheet)
	assert.True(t, s.HasInteractedWithWord)
	assert.Equal(t, 3, m.cursor)
}

func TestOnboardingLatchSurvivesNavigation(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "enter", "esc", "j", "J", "K")
	assert.True(t, m.State().HasInteractedWithWord)
	assert.NotContains(t, view(m), "Tap a word to explore")
}

func TestWordCardCycling(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "enter")

	m = press(t, m, "h")
	assert.Equal(t, 1, m.State().WordIndex)
	assert.Contains(t, view(m), "bara")

	m = press(t, m, "l", "l")
	assert.Equal(t, 6, m.State().WordIndex)

	for range 7 {
		m = press(t, m, "h")
	}
	assert.Equal(t, 6, m.State().WordIndex, "seven left swipes come back around")

	m = press(t, m, "esc")
	assert.Equal(t, nav.SheetNone, m.State().Sheet)
	assert.Equal(t, 6, m.cursor, "cursor follows the card")
}

func TestWordCardInstances(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "h", "h", "enter", "tab")

	assert.Equal(t, nav.TabInstances, m.State().WordTab)
	out := view(m)
	assert.Contains(t, out, "Genesis 1:2")
	assert.Contains(t, out, "Tap to Navigate")

	m = press(t, m, "j", "enter")
	assert.Equal(t, scripture.NewKey("Genesis", 1, 2), m.State().Position)
	assert.Equal(t, nav.SheetNone, m.State().Sheet)
	assert.Equal(t, scripture.NewKey("Genesis", 1, 2), m.verse.key)
}

func TestMouseTapOnWord(t *testing.T) {
	m := newTestModel(t, nil)
	x, y := wordCell(t, m, 2)

	m = send(t, m, mouse(tea.MouseActionPress, x, y))
	next, cmd := m.Update(mouse(tea.MouseActionRelease, x, y))
	m = run(t, next.(Model), cmd)

	assert.Equal(t, nav.SheetWord, m.State().Sheet)
	assert.Equal(t, 2, m.State().WordIndex)
	assert.Contains(t, view(m), "elohim")
}

func TestMouseSwipeChangesVerse(t *testing.T) {
	m := newTestModel(t, nil)

	// Ten rows of 16px is past the 100px threshold.
	m = send(t, m, mouse(tea.MouseActionPress, 5, 30))
	m = send(t, m, mouse(tea.MouseActionMotion, 5, 25))
	next, cmd := m.Update(mouse(tea.MouseActionRelease, 5, 20))
	m = run(t, next.(Model), cmd)
	assert.Equal(t, 2, m.State().Position.Verse)

	m = send(t, m, mouse(tea.MouseActionPress, 5, 20))
	next, cmd = m.Update(mouse(tea.MouseActionRelease, 5, 30))
	m = run(t, next.(Model), cmd)
	assert.Equal(t, 1, m.State().Position.Verse)

	// Six rows is 96px, not enough.
	m = send(t, m, mouse(tea.MouseActionPress, 5, 30))
	m = send(t, m, mouse(tea.MouseActionRelease, 5, 24))
	assert.Equal(t, 1, m.State().Position.Verse)
}

func TestMouseSwipesInWordCard(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "enter")

	m = send(t, m, mouse(tea.MouseActionPress, 60, 30))
	m = send(t, m, mouse(tea.MouseActionRelease, 50, 30))
	assert.Equal(t, 1, m.State().WordIndex, "80px drag to the left advances")

	m = send(t, m, mouse(tea.MouseActionPress, 50, 30))
	m = send(t, m, mouse(tea.MouseActionRelease, 54, 30))
	assert.Equal(t, 1, m.State().WordIndex, "32px is below the word threshold")

	m = send(t, m, mouse(tea.MouseActionPress, 10, 20))
	m = send(t, m, mouse(tea.MouseActionRelease, 10, 28))
	assert.Equal(t, nav.SheetNone, m.State().Sheet, "swipe down closes")
}

func TestBackdropTapClosesSheet(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "s")
	require.Equal(t, nav.SheetSettings, m.State().Sheet)

	m = send(t, m, mouse(tea.MouseActionPress, 3, 0))
	m = send(t, m, mouse(tea.MouseActionRelease, 3, 0))
	assert.Equal(t, nav.SheetNone, m.State().Sheet)
}

func TestLongPressHint(t *testing.T) {
	m := newTestModel(t, nil)
	row := m.renderReader().translationTop

	m = send(t, m, mouse(tea.MouseActionPress, 50, row))
	m = send(t, m, gesture.LongPressMsg{ID: 1})
	assert.Contains(t, view(m), "Swipe to navigate")

	m = send(t, m, gesture.HintExpiredMsg{ID: 1})
	assert.NotContains(t, view(m), "Swipe to navigate")
}

func TestLongPressReleasedEarly(t *testing.T) {
	m := newTestModel(t, nil)
	row := m.renderReader().translationTop

	next, cmd := m.Update(mouse(tea.MouseActionPress, 50, row))
	require.NotNil(t, cmd)
	m = next.(Model)
	m = send(t, m, mouse(tea.MouseActionRelease, 50, row))
	m = send(t, m, gesture.LongPressMsg{ID: 1})
	assert.NotContains(t, view(m), "Swipe to navigate")
}

func TestSettingsPersistPreferences(t *testing.T) {
	prefs := settings.NewMemory()
	m := newTestModel(t, prefs)

	m = press(t, m, "t")
	assert.Equal(t, nav.Dark, m.State().Theme)
	v, _ := prefs.Get(settings.KeyTheme)
	assert.Equal(t, "dark", v)

	m = press(t, m, "L")
	assert.Equal(t, scripture.Spanish, m.State().Language)
	v, _ = prefs.Get(settings.KeyLanguage)
	assert.Equal(t, "es", v)
	assert.Contains(t, view(m), "En el principio creó Dios")
}

func TestPreferencesAppliedAtStartup(t *testing.T) {
	prefs := settings.NewMemory()
	require.NoError(t, prefs.Set(settings.KeyTheme, "dark"))
	require.NoError(t, prefs.Set(settings.KeyLanguage, "he"))
	require.NoError(t, prefs.Set("unrelated", "x"))

	m := newTestModel(t, prefs)
	assert.Equal(t, nav.Dark, m.State().Theme)
	assert.Equal(t, scripture.Hebrew, m.State().Language)
}

func TestSettingsSheet(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "s")
	assert.Contains(t, view(m), "Qumran Variants")

	m = press(t, m, "j", "j", "enter")
	assert.True(t, m.State().ShowAlternate)

	m = press(t, m, "j", "j", "enter")
	assert.True(t, m.State().HebrewOnly)
	assert.NotContains(t, view(m), "In the beginning")
}

func TestAlternateReading(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "/")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Isaiah 53:11")})
	m = press(t, m, "enter", "a")

	require.Equal(t, scripture.NewKey("Isaiah", 53, 11), m.State().Position)
	out := view(m)
	assert.Contains(t, out, "1QIsaᵃ")
	assert.Contains(t, out, "יראה אור")
	assert.Contains(t, out, "he shall see light")
}

func TestSearch(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "/")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Psalms")})
	m = press(t, m, "enter")
	assert.True(t, m.searching, "bad reference keeps the prompt open")
	assert.Equal(t, scripture.DefaultKey, m.State().Position)

	m = press(t, m, "esc")
	assert.False(t, m.searching)

	m = press(t, m, "/")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Psalms 23:1")})
	m = press(t, m, "enter")
	assert.False(t, m.searching)
	assert.Equal(t, scripture.NewKey("Psalms", 23, 1), m.State().Position)
	assert.Contains(t, view(m), "The LORD is my shepherd")
}

func TestBookAndChapterVerseSheets(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "b")
	require.Equal(t, nav.SheetBook, m.State().Sheet)
	assert.Contains(t, view(m), "Ecclesiastes")

	// Psalms is index 15: row 3, column 3 of a four-column grid.
	m = press(t, m, "j", "j", "j", "l", "l", "l", "enter")
	require.Equal(t, nav.SheetChapterVerse, m.State().Sheet)
	assert.Contains(t, view(m), "Psalms · Chapter")

	// Chapter 23 is index 22 in rows of ten.
	m = press(t, m, "j", "j", "l", "l", "enter")
	assert.Contains(t, view(m), "Psalms 23 · Verse")

	m = press(t, m, "enter")
	assert.Equal(t, nav.SheetNone, m.State().Sheet)
	assert.Equal(t, scripture.NewKey("Psalms", 23, 1), m.State().Position)
}

func TestHomeSheet(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "j", "j", "H")

	out := view(m)
	assert.Contains(t, out, "Today is")
	assert.Contains(t, out, "Aviv 10th")
	assert.Contains(t, out, "Pesach")
	assert.Contains(t, out, "Continue reading: Genesis 1:3")

	m = press(t, m, "enter")
	assert.Equal(t, nav.SheetNone, m.State().Sheet)
	assert.Equal(t, scripture.NewKey("Genesis", 1, 3), m.State().Position)
	assert.False(t, m.State().HasInteractedWithWord, "continuing is not a word tap")
}

func TestHomeSheetContinueByTap(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "L", "H")
	assert.Contains(t, view(m), "Seguir leyendo: Génesis 1:1")

	y := m.bodyHeight() - 1
	require.GreaterOrEqual(t, y, m.sheetTop())
	m = send(t, m, mouse(tea.MouseActionPress, 10, y))
	m = send(t, m, mouse(tea.MouseActionRelease, 10, y))
	assert.Equal(t, nav.SheetNone, m.State().Sheet)
}

func TestOnboardingPulse(t *testing.T) {
	m := newTestModel(t, nil)
	require.True(t, nav.ShowOnboardingHint(m.State()))

	next, cmd := m.Update(pulseMsg{})
	m = next.(Model)
	assert.True(t, m.pulse)
	assert.NotNil(t, cmd, "pulse keeps ticking while the hint shows")

	next, _ = m.Update(pulseMsg{})
	m = next.(Model)
	assert.False(t, m.pulse)

	m = press(t, m, "enter", "esc")
	next, cmd = m.Update(pulseMsg{})
	m = next.(Model)
	assert.False(t, m.pulse)
	assert.Nil(t, cmd, "pulse stops once a word was tapped")
}

func TestFullChapter(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "f")
	require.True(t, m.State().ShowFullChapter)
	require.Len(t, m.chapter.verses, 3)

	out := view(m)
	assert.Contains(t, out, "In the beginning")
	assert.Contains(t, out, "formless")
	assert.Contains(t, out, "Let there be light")
}

func TestLaunchScreen(t *testing.T) {
	mem := store.NewMemory()
	m := NewModel(Options{
		Resolver:     scripture.NewResolver(mem, mem, zerolog.Nop()),
		State:        nav.DefaultState(),
		LaunchScreen: true,
	})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	out := view(m)
	assert.Contains(t, out, "דבר")
	assert.Contains(t, out, "focus on what's really important")

	m = send(t, m, launchDoneMsg{})
	assert.NotContains(t, view(m), "focus on what's really important")
}

func TestLaunchScreenDismissedByKey(t *testing.T) {
	mem := store.NewMemory()
	m := NewModel(Options{
		Resolver:     scripture.NewResolver(mem, mem, zerolog.Nop()),
		State:        nav.DefaultState(),
		LaunchScreen: true,
	})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)
	assert.Nil(t, cmd, "q only dismisses the launch screen")
	assert.False(t, m.launching)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
