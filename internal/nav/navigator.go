// Package nav tracks the reading position and the rest of the reader state.
package nav

import "davar/internal/scripture"

// MaxVerse caps NextVerse. It is a fixed placeholder until verse counts come
// from the data source.
const MaxVerse = 30

// Navigator holds the current verse position. It is the standalone form of
// the position moves; the reader applies the same moves through Reduce.
type Navigator struct {
	pos scripture.VerseKey
}

// NewNavigator starts at key.
func NewNavigator(key scripture.VerseKey) *Navigator {
	return &Navigator{pos: key}
}

// Position returns the current key.
func (n *Navigator) Position() scripture.VerseKey {
	return n.pos
}

// GoToVerse jumps without bounds checks.
func (n *Navigator) GoToVerse(book string, chapter, verse int) {
	n.pos = scripture.NewKey(book, chapter, verse)
}

// NextVerse advances one verse, stopping at MaxVerse.
func (n *Navigator) NextVerse() {
	n.pos = nextVerse(n.pos)
}

// PreviousVerse goes back one verse, stopping at 1.
func (n *Navigator) PreviousVerse() {
	n.pos = prevVerse(n.pos)
}

// NextChapter advances one chapter within the book and resets the verse.
func (n *Navigator) NextChapter() {
	n.pos = nextChapter(n.pos)
}

// PreviousChapter goes back one chapter and resets the verse.
func (n *Navigator) PreviousChapter() {
	n.pos = prevChapter(n.pos)
}

func nextVerse(k scripture.VerseKey) scripture.VerseKey {
	k.Verse = min(k.Verse+1, MaxVerse)
	return k
}

func prevVerse(k scripture.VerseKey) scripture.VerseKey {
	k.Verse = max(k.Verse-1, 1)
	return k
}

func nextChapter(k scripture.VerseKey) scripture.VerseKey {
	if k.Chapter < scripture.ChapterCount(k.Book) {
		k.Chapter++
		k.Verse = 1
	}
	return k
}

func prevChapter(k scripture.VerseKey) scripture.VerseKey {
	if k.Chapter > 1 {
		k.Chapter--
		k.Verse = 1
	}
	return k
}
