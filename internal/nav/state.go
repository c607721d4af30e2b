package nav

import (
	"davar/internal/gesture"
	"davar/internal/scripture"
)

// ThemeMode is the reader color scheme.
type ThemeMode string

const (
	Light ThemeMode = "light"
	Dark  ThemeMode = "dark"
)

// ParseThemeMode accepts "light" or "dark".
func ParseThemeMode(s string) (ThemeMode, bool) {
	switch ThemeMode(s) {
	case Light, Dark:
		return ThemeMode(s), true
	}
	return "", false
}

// Sheet identifies the bottom sheet drawn over the reader.
type Sheet int

const (
	SheetNone Sheet = iota
	SheetWord
	SheetSettings
	SheetBook
	SheetChapterVerse
	SheetHome
)

// WordTab is the tab shown in the word card.
type WordTab int

const (
	TabMeanings WordTab = iota
	TabInstances
)

// Flag names a boolean display toggle.
type Flag int

const (
	FlagAlternate Flag = iota
	FlagFullChapter
	FlagHebrewOnly
)

// State is the complete reader state. Values are never mutated in place;
// Reduce returns a new one.
type State struct {
	Position scripture.VerseKey
	Theme    ThemeMode
	Language scripture.Language

	ShowAlternate   bool
	ShowFullChapter bool
	HebrewOnly      bool

	// HasInteractedWithWord latches once the reader taps any word.
	HasInteractedWithWord bool

	Sheet     Sheet
	WordIndex int
	WordTab   WordTab
}

// DefaultState opens Genesis 1:1 in light mode and English.
func DefaultState() State {
	return State{
		Position: scripture.DefaultKey,
		Theme:    Light,
		Language: scripture.English,
	}
}

// ShowOnboardingHint reports whether the first word should still pulse.
func ShowOnboardingHint(s State) bool {
	return !s.HasInteractedWithWord
}

// CycleWord moves the word cursor. Left advances because Hebrew reads right
// to left.
func CycleWord(index, count int, dir gesture.Direction) int {
	if count <= 0 {
		return 0
	}
	switch dir {
	case gesture.Left:
		return (index + 1) % count
	case gesture.Right:
		return (index - 1 + count) % count
	}
	return index
}

// Action is a state transition.
type Action interface {
	reduce(State) State
}

// Reduce applies a to s.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.reduce(s)
}

// GoTo jumps to a position without bounds checks.
type GoTo struct{ Key scripture.VerseKey }

func (a GoTo) reduce(s State) State {
	s.Position = a.Key
	return s
}

type NextVerse struct{}

func (NextVerse) reduce(s State) State {
	s.Position = nextVerse(s.Position)
	return s
}

type PrevVerse struct{}

func (PrevVerse) reduce(s State) State {
	s.Position = prevVerse(s.Position)
	return s
}

type NextChapter struct{}

func (NextChapter) reduce(s State) State {
	s.Position = nextChapter(s.Position)
	return s
}

type PrevChapter struct{}

func (PrevChapter) reduce(s State) State {
	s.Position = prevChapter(s.Position)
	return s
}

type SetTheme struct{ Theme ThemeMode }

func (a SetTheme) reduce(s State) State {
	if _, ok := ParseThemeMode(string(a.Theme)); ok {
		s.Theme = a.Theme
	}
	return s
}

type ToggleTheme struct{}

func (ToggleTheme) reduce(s State) State {
	if s.Theme == Dark {
		s.Theme = Light
	} else {
		s.Theme = Dark
	}
	return s
}

type SetLanguage struct{ Language scripture.Language }

func (a SetLanguage) reduce(s State) State {
	if _, err := scripture.ParseLanguage(string(a.Language)); err == nil {
		s.Language = a.Language
	}
	return s
}

// Toggle flips one display flag.
type Toggle struct{ Flag Flag }

func (a Toggle) reduce(s State) State {
	switch a.Flag {
	case FlagAlternate:
		s.ShowAlternate = !s.ShowAlternate
	case FlagFullChapter:
		s.ShowFullChapter = !s.ShowFullChapter
	case FlagHebrewOnly:
		s.HebrewOnly = !s.HebrewOnly
	}
	return s
}

// TapWord records a tap on the word at Index. When HasEntry is set the word
// card opens on that word; the onboarding latch is set either way.
type TapWord struct {
	Index    int
	HasEntry bool
}

func (a TapWord) reduce(s State) State {
	s.HasInteractedWithWord = true
	if a.HasEntry {
		s.Sheet = SheetWord
		s.WordIndex = a.Index
		s.WordTab = TabMeanings
	}
	return s
}

// SwipeWord cycles the word card through the verse's Count tokens.
type SwipeWord struct {
	Direction gesture.Direction
	Count     int
}

func (a SwipeWord) reduce(s State) State {
	s.WordIndex = CycleWord(s.WordIndex, a.Count, a.Direction)
	return s
}

type OpenSheet struct{ Sheet Sheet }

func (a OpenSheet) reduce(s State) State {
	s.Sheet = a.Sheet
	return s
}

type CloseSheet struct{}

func (CloseSheet) reduce(s State) State {
	s.Sheet = SheetNone
	return s
}

type SetWordTab struct{ Tab WordTab }

func (a SetWordTab) reduce(s State) State {
	s.WordTab = a.Tab
	return s
}

// FollowInstance navigates to a word instance reference such as
// "Genesis 1:1" and closes the word card. Unparseable references are ignored.
type FollowInstance struct{ Ref string }

func (a FollowInstance) reduce(s State) State {
	key, err := scripture.ParseVerseKey(a.Ref)
	if err != nil {
		return s
	}
	s.Position = key
	s.Sheet = SheetNone
	return s
}
