package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextVerse    key.Binding
	PrevVerse    key.Binding
	NextChapter  key.Binding
	PrevChapter  key.Binding
	NextWord     key.Binding
	PrevWord     key.Binding
	Tap          key.Binding
	Books        key.Binding
	ChapterVerse key.Binding
	Settings     key.Binding
	Home         key.Binding
	Search       key.Binding
	Tab          key.Binding
	Theme        key.Binding
	Language     key.Binding
	Alternate    key.Binding
	FullChapter  key.Binding
	HebrewOnly   key.Binding
	Close        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// Hebrew reads right to left, so the next word is to the left.
func defaultKeyMap() keyMap {
	return keyMap{
		NextVerse:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next verse")),
		PrevVerse:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev verse")),
		NextChapter:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "next chapter")),
		PrevChapter:  key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "prev chapter")),
		NextWord:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "next word")),
		PrevWord:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "prev word")),
		Tap:          key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open word")),
		Books:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "books")),
		ChapterVerse: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "chapter/verse")),
		Settings:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Home:         key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "home")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "go to")),
		Tab:          key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "meanings/instances")),
		Theme:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Language:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "language")),
		Alternate:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "qumran")),
		FullChapter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "full chapter")),
		HebrewOnly:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "hebrew only")),
		Close:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextVerse, k.PrevVerse, k.NextWord, k.Tap, k.Books, k.Settings, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextVerse, k.PrevVerse, k.NextChapter, k.PrevChapter, k.Search},
		{k.NextWord, k.PrevWord, k.Tap, k.Tab, k.Close},
		{k.Books, k.ChapterVerse, k.Settings, k.Home},
		{k.Theme, k.Language, k.Alternate, k.FullChapter, k.HebrewOnly},
		{k.Help, k.Quit},
	}
}
