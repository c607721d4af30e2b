package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"davar/internal/scripture"
)

// Pack is the interchange format for verse and lexicon data.
type Pack struct {
	Verses  []PackVerse              `json:"verses"`
	Lexicon []scripture.LexicalEntry `json:"lexicon"`
}

// PackVerse is a verse as it appears in a pack or on the wire.
type PackVerse struct {
	Book           string                        `json:"book"`
	Chapter        int                           `json:"chapter"`
	Verse          int                           `json:"verse"`
	Hebrew         string                        `json:"hebrew"`
	Translations   map[scripture.Language]string `json:"translations,omitempty"`
	AltText        string                        `json:"alt_text,omitempty"`
	AltTranslation string                        `json:"alt_translation,omitempty"`
	Variants       []scripture.WordVariant       `json:"variants,omitempty"`
}

// Key returns the verse key.
func (v PackVerse) Key() scripture.VerseKey {
	return scripture.NewKey(v.Book, v.Chapter, v.Verse)
}

// Record converts the pack form into a VerseRecord.
func (v PackVerse) Record() scripture.VerseRecord {
	rec := scripture.VerseRecord{
		Hebrew:         v.Hebrew,
		AltText:        v.AltText,
		AltTranslation: v.AltTranslation,
	}
	if len(v.Translations) > 0 {
		rec.Translations = make(map[scripture.Language]string, len(v.Translations))
		for l, t := range v.Translations {
			rec.Translations[l] = t
		}
	}
	if len(v.Variants) > 0 {
		rec.WordVariants = make(map[string]scripture.WordVariant, len(v.Variants))
		for _, wv := range v.Variants {
			rec.WordVariants[wv.StandardForm] = wv
		}
	}
	return rec
}

// NewPackVerse is the inverse of PackVerse.Record.
func NewPackVerse(key scripture.VerseKey, rec scripture.VerseRecord) PackVerse {
	v := PackVerse{
		Book:           key.Book,
		Chapter:        key.Chapter,
		Verse:          key.Verse,
		Hebrew:         rec.Hebrew,
		Translations:   rec.Translations,
		AltText:        rec.AltText,
		AltTranslation: rec.AltTranslation,
	}
	for _, wv := range rec.WordVariants {
		v.Variants = append(v.Variants, wv)
	}
	sortVariants(v.Variants)
	return v
}

// Validate checks that every verse has a usable key and text and every
// lexicon entry has a word.
func (p Pack) Validate() error {
	for i, v := range p.Verses {
		if !v.Key().Valid() {
			return fmt.Errorf("verse %d: %w: %s", i, scripture.ErrInvalidKey, v.Key())
		}
		if v.Hebrew == "" {
			return fmt.Errorf("verse %s: missing hebrew text", v.Key().Display())
		}
		for _, wv := range v.Variants {
			if wv.StandardForm == "" {
				return fmt.Errorf("verse %s: variant without standard form", v.Key().Display())
			}
		}
	}
	for i, e := range p.Lexicon {
		if e.Word == "" {
			return fmt.Errorf("lexicon entry %d: missing word", i)
		}
	}
	return nil
}

// DecodePack reads and validates a JSON pack.
func DecodePack(r io.Reader) (Pack, error) {
	var p Pack
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Pack{}, fmt.Errorf("decode pack: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Pack{}, fmt.Errorf("invalid pack: %w", err)
	}
	return p, nil
}

// ReadPackFile decodes the JSON pack at path.
func ReadPackFile(path string) (Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pack{}, err
	}
	defer f.Close()

	return DecodePack(f)
}

// WritePack encodes p as indented JSON.
func WritePack(w io.Writer, p Pack) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Builtin returns a copy of the reference tables as a pack.
func Builtin() Pack {
	return builtinPack()
}
