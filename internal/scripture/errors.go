package scripture

import "errors"

var (
	// ErrVerseNotFound is returned by a VerseRepository for an unknown key.
	ErrVerseNotFound = errors.New("verse not found")
	// ErrWordNotFound is returned by a LexiconRepository for a word it has no entry for.
	ErrWordNotFound = errors.New("word not found")
	// ErrInvalidKey is returned when a verse reference cannot be parsed.
	ErrInvalidKey = errors.New("invalid verse key")
)
