// Package store holds the verse and lexicon repositories: the in-memory
// reference tables, JSON data packs and the SQLite backend.
package store

import (
	"context"
	"sort"

	"davar/internal/scripture"
)

// Memory is a read-only repository over in-memory tables.
type Memory struct {
	verses  map[string]scripture.KeyedVerse
	lexicon map[string]scripture.LexicalEntry
}

// NewMemory returns a repository over the built-in reference tables.
func NewMemory() *Memory {
	return NewMemoryFrom(builtinPack())
}

// NewMemoryFrom indexes a pack. Later duplicates replace earlier ones.
func NewMemoryFrom(p Pack) *Memory {
	m := &Memory{
		verses:  make(map[string]scripture.KeyedVerse, len(p.Verses)),
		lexicon: make(map[string]scripture.LexicalEntry, len(p.Lexicon)),
	}
	for _, v := range p.Verses {
		m.verses[v.Key().String()] = scripture.KeyedVerse{Key: v.Key(), Record: v.Record()}
	}
	for _, e := range p.Lexicon {
		m.lexicon[e.Word] = e
	}
	return m
}

// GetVerse implements scripture.VerseRepository.
func (m *Memory) GetVerse(_ context.Context, key scripture.VerseKey) (scripture.VerseRecord, error) {
	kv, ok := m.verses[key.String()]
	if !ok {
		return scripture.VerseRecord{}, scripture.ErrVerseNotFound
	}
	return kv.Record, nil
}

// Chapter implements scripture.VerseRepository.
func (m *Memory) Chapter(_ context.Context, book string, chapter int) ([]scripture.KeyedVerse, error) {
	var out []scripture.KeyedVerse
	for _, kv := range m.verses {
		if kv.Key.Book == book && kv.Key.Chapter == chapter {
			out = append(out, kv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Verse < out[j].Key.Verse })
	return out, nil
}

// GetWord implements scripture.LexiconRepository.
func (m *Memory) GetWord(_ context.Context, word string) (scripture.LexicalEntry, error) {
	e, ok := m.lexicon[word]
	if !ok {
		return scripture.LexicalEntry{}, scripture.ErrWordNotFound
	}
	return e, nil
}

// Keys returns every verse key in book, chapter, verse order.
func (m *Memory) Keys() []scripture.VerseKey {
	keys := make([]scripture.VerseKey, 0, len(m.verses))
	for _, kv := range m.verses {
		keys = append(keys, kv.Key)
	}
	sortKeys(keys)
	return keys
}

// Pack exports the tables.
func (m *Memory) Pack() Pack {
	var p Pack
	for _, k := range m.Keys() {
		p.Verses = append(p.Verses, NewPackVerse(k, m.verses[k.String()].Record))
	}

	words := make([]string, 0, len(m.lexicon))
	for w := range m.lexicon {
		words = append(words, w)
	}
	sort.Strings(words)
	for _, w := range words {
		p.Lexicon = append(p.Lexicon, m.lexicon[w])
	}
	return p
}

func sortKeys(keys []scripture.VerseKey) {
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Book != b.Book {
			return a.Book < b.Book
		}
		if a.Chapter != b.Chapter {
			return a.Chapter < b.Chapter
		}
		return a.Verse < b.Verse
	})
}

func sortVariants(vs []scripture.WordVariant) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].StandardForm < vs[j].StandardForm })
}

var (
	_ scripture.VerseRepository   = (*Memory)(nil)
	_ scripture.LexiconRepository = (*Memory)(nil)
)
