package scripture

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// VerseRepository is the source of verse text.
type VerseRepository interface {
	// GetVerse returns ErrVerseNotFound for keys it does not hold.
	GetVerse(ctx context.Context, key VerseKey) (VerseRecord, error)
	// Chapter returns the chapter's verses ordered by verse number.
	Chapter(ctx context.Context, book string, chapter int) ([]KeyedVerse, error)
}

// LexiconRepository is the source of lexical entries.
type LexiconRepository interface {
	// GetWord returns ErrWordNotFound for words it has no entry for.
	GetWord(ctx context.Context, word string) (LexicalEntry, error)
}

// Resolver turns repository lookups into values the reader can always show.
// Misses and backend failures degrade to a default record or to "no entry".
type Resolver struct {
	verses   VerseRepository
	lexicon  LexiconRepository
	fallback VerseRecord
	log      zerolog.Logger
}

// NewResolver wires the repositories. Either may be nil, in which case every
// lookup against it misses.
func NewResolver(verses VerseRepository, lexicon LexiconRepository, log zerolog.Logger) *Resolver {
	return &Resolver{
		verses:   verses,
		lexicon:  lexicon,
		fallback: DefaultVerse(),
		log:      log.With().Str("component", "resolver").Logger(),
	}
}

// LookupVerse returns the record for key and whether it was found.
func (r *Resolver) LookupVerse(ctx context.Context, key VerseKey) (VerseRecord, bool) {
	if r == nil || r.verses == nil {
		return DefaultVerse(), false
	}

	rec, err := r.verses.GetVerse(ctx, key)
	switch {
	case err == nil:
		return rec, true
	case errors.Is(err, ErrVerseNotFound):
		r.log.Debug().Str("key", key.String()).Msg("verse not in repository, using default")
	default:
		r.log.Warn().Err(err).Str("key", key.String()).Msg("verse lookup failed, using default")
	}
	return r.fallback, false
}

// ResolveVerse returns the record for key, or the default record.
func (r *Resolver) ResolveVerse(ctx context.Context, key VerseKey) VerseRecord {
	rec, _ := r.LookupVerse(ctx, key)
	return rec
}

// ResolveChapter returns whatever verses of the chapter the repository holds.
func (r *Resolver) ResolveChapter(ctx context.Context, book string, chapter int) []KeyedVerse {
	if r == nil || r.verses == nil {
		return nil
	}

	verses, err := r.verses.Chapter(ctx, book, chapter)
	if err != nil {
		r.log.Warn().Err(err).Str("book", book).Int("chapter", chapter).Msg("chapter lookup failed")
		return nil
	}
	return verses
}

// ResolveWord returns the lexical entry for word. A false result means the
// word renders as plain, non-interactive text.
func (r *Resolver) ResolveWord(ctx context.Context, word string) (LexicalEntry, bool) {
	if r == nil || r.lexicon == nil || word == "" {
		return LexicalEntry{}, false
	}

	entry, err := r.lexicon.GetWord(ctx, word)
	switch {
	case err == nil:
		return entry, true
	case errors.Is(err, ErrWordNotFound):
	default:
		r.log.Warn().Err(err).Str("word", word).Msg("lexicon lookup failed")
	}
	return LexicalEntry{}, false
}

// WordIndexInVerse returns the position of word in the tokenized verse, or -1.
func (r *Resolver) WordIndexInVerse(ctx context.Context, key VerseKey, word string) int {
	return WordIndex(Tokenize(r.ResolveVerse(ctx, key).Hebrew), word)
}
