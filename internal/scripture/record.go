package scripture

import (
	"fmt"
	"sort"
)

// Language is a display language code.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	Hebrew  Language = "he"
)

// Languages lists the supported display languages in menu order.
func Languages() []Language {
	return []Language{English, Spanish, Hebrew}
}

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// NativeName returns the language name as its speakers write it.
func (l Language) NativeName() string {
	switch l {
	case Spanish:
		return "Español"
	case Hebrew:
		return "עברית"
	default:
		return "English"
	}
}

// ColorTag names the highlight used for a variant reading.
type ColorTag string

const (
	ColorYellow ColorTag = "yellow"
	ColorPink   ColorTag = "pink"
	ColorGreen  ColorTag = "green"
	ColorLime   ColorTag = "lime"
	ColorRed    ColorTag = "red"
	ColorTeal   ColorTag = "teal"
)

// WordVariant pairs a standard word-form with an alternate manuscript reading.
type WordVariant struct {
	AlternateForm string   `json:"alternate_form"`
	StandardForm  string   `json:"standard_form"`
	Label         string   `json:"label"`
	Color         ColorTag `json:"color"`
}

// VerseRecord is the reference data for a single verse. Records are treated
// as immutable once built.
type VerseRecord struct {
	Hebrew         string                 `json:"hebrew"`
	Translations   map[Language]string    `json:"translations,omitempty"`
	AltText        string                 `json:"alt_text,omitempty"`
	AltTranslation string                 `json:"alt_translation,omitempty"`
	WordVariants   map[string]WordVariant `json:"word_variants,omitempty"`
}

// Translation returns the translation for lang, falling back to English and
// then to any translation present.
func (r VerseRecord) Translation(lang Language) string {
	if t := r.Translations[lang]; t != "" {
		return t
	}
	if t := r.Translations[English]; t != "" {
		return t
	}

	langs := make([]string, 0, len(r.Translations))
	for l := range r.Translations {
		langs = append(langs, string(l))
	}
	sort.Strings(langs)
	for _, l := range langs {
		if t := r.Translations[Language(l)]; t != "" {
			return t
		}
	}
	return ""
}

// HasAlternate reports whether the record carries an alternate textual tradition.
func (r VerseRecord) HasAlternate() bool {
	return r.AltText != "" || len(r.WordVariants) > 0
}

// KeyedVerse is a record together with its key, used for whole chapters.
type KeyedVerse struct {
	Key    VerseKey
	Record VerseRecord
}

// WordInstance is an occurrence of a word elsewhere in the text.
type WordInstance struct {
	VerseRef string `json:"verse_ref"`
	Excerpt  string `json:"excerpt,omitempty"`
}

// LexicalEntry describes a Hebrew word-form.
type LexicalEntry struct {
	Word                string         `json:"word"`
	Transliteration     string         `json:"transliteration,omitempty"`
	Meanings            []string       `json:"meanings"`
	Root                string         `json:"root,omitempty"`
	RootTransliteration string         `json:"root_transliteration,omitempty"`
	RootMeaning         string         `json:"root_meaning,omitempty"`
	Instances           []WordInstance `json:"instances,omitempty"`
}

// DefaultKey is where readers land when nothing else is known.
var DefaultKey = NewKey("Genesis", 1, 1)

// DefaultVerse returns the record shown when a lookup misses.
func DefaultVerse() VerseRecord {
	return VerseRecord{
		Hebrew: "בְּרֵאשִׁית בָּרָא אֱלֹהִים אֵת הַשָּׁמַיִם וְאֵת הָאָרֶץ",
		Translations: map[Language]string{
			English: "In the beginning God created the heavens and the earth.",
			Spanish: "En el principio creó Dios los cielos y la tierra.",
		},
	}
}
