package scripture

import (
	"fmt"
	"strconv"
	"strings"
)

// VerseKey identifies a verse by book, chapter and verse number.
type VerseKey struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

// NewKey builds a VerseKey without validating it against any canon.
func NewKey(book string, chapter, verse int) VerseKey {
	return VerseKey{Book: book, Chapter: chapter, Verse: verse}
}

// String returns the joined lookup form, e.g. "Genesis-1-1".
func (k VerseKey) String() string {
	return fmt.Sprintf("%s-%d-%d", k.Book, k.Chapter, k.Verse)
}

// Display returns the reference form, e.g. "Genesis 1:1".
func (k VerseKey) Display() string {
	return fmt.Sprintf("%s %d:%d", k.Book, k.Chapter, k.Verse)
}

// Valid reports whether the key has a book and positive chapter and verse.
func (k VerseKey) Valid() bool {
	return strings.TrimSpace(k.Book) != "" && k.Chapter >= 1 && k.Verse >= 1
}

// ParseVerseKey accepts both the lookup form ("Song of Songs-2-1") and the
// reference form ("Song of Songs 2:1"). A reference without a verse
// ("Psalms 23") points at verse 1.
func ParseVerseKey(s string) (VerseKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return VerseKey{}, fmt.Errorf("%w: empty reference", ErrInvalidKey)
	}

	var key VerseKey
	var err error
	if i := strings.LastIndex(s, " "); i > 0 && !strings.Contains(s[i+1:], "-") {
		key, err = parseReference(s[:i], s[i+1:])
	} else {
		key, err = parseJoined(s)
	}
	if err != nil {
		return VerseKey{}, err
	}

	if !key.Valid() {
		return VerseKey{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return key, nil
}

func parseReference(book, chapterVerse string) (VerseKey, error) {
	parts := strings.SplitN(chapterVerse, ":", 2)
	chapter, err := strconv.Atoi(parts[0])
	if err != nil {
		return VerseKey{}, fmt.Errorf("%w: invalid chapter %q", ErrInvalidKey, parts[0])
	}

	verse := 1
	if len(parts) == 2 {
		verse, err = strconv.Atoi(parts[1])
		if err != nil {
			return VerseKey{}, fmt.Errorf("%w: invalid verse %q", ErrInvalidKey, parts[1])
		}
	}

	return NewKey(strings.TrimSpace(book), chapter, verse), nil
}

func parseJoined(s string) (VerseKey, error) {
	parts := strings.Split(s, "-")
	if len(parts) < 3 {
		return VerseKey{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	n := len(parts)
	chapter, err := strconv.Atoi(parts[n-2])
	if err != nil {
		return VerseKey{}, fmt.Errorf("%w: invalid chapter %q", ErrInvalidKey, parts[n-2])
	}
	verse, err := strconv.Atoi(parts[n-1])
	if err != nil {
		return VerseKey{}, fmt.Errorf("%w: invalid verse %q", ErrInvalidKey, parts[n-1])
	}

	return NewKey(strings.Join(parts[:n-2], "-"), chapter, verse), nil
}
