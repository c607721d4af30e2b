package scripture

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type tableRepo struct {
	verses  map[string]VerseRecord
	lexicon map[string]LexicalEntry
	err     error
}

func (r tableRepo) GetVerse(_ context.Context, key VerseKey) (VerseRecord, error) {
	if r.err != nil {
		return VerseRecord{}, r.err
	}
	rec, ok := r.verses[key.String()]
	if !ok {
		return VerseRecord{}, ErrVerseNotFound
	}
	return rec, nil
}

func (r tableRepo) Chapter(_ context.Context, book string, chapter int) ([]KeyedVerse, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []KeyedVerse
	for v := 1; v <= 3; v++ {
		k := NewKey(book, chapter, v)
		if rec, ok := r.verses[k.String()]; ok {
			out = append(out, KeyedVerse{Key: k, Record: rec})
		}
	}
	return out, nil
}

func (r tableRepo) GetWord(_ context.Context, word string) (LexicalEntry, error) {
	if r.err != nil {
		return LexicalEntry{}, r.err
	}
	e, ok := r.lexicon[word]
	if !ok {
		return LexicalEntry{}, ErrWordNotFound
	}
	return e, nil
}

func newTableRepo() tableRepo {
	return tableRepo{
		verses: map[string]VerseRecord{
			"Genesis-1-3": {Hebrew: "וַיֹּאמֶר אֱלֹהִים יְהִי אוֹר וַיְהִי־אוֹר"},
			"Psalms-23-1": {Hebrew: "מִזְמוֹר לְדָוִד יְהוָה רֹעִי לֹא אֶחְסָר"},
		},
		lexicon: map[string]LexicalEntry{
			"אוֹר": {Word: "אוֹר", Meanings: []string{"light"}},
		},
	}
}

func TestResolveVerseExactMatch(t *testing.T) {
	repo := newTableRepo()
	r := NewResolver(repo, repo, zerolog.Nop())

	for k, want := range repo.verses {
		key, err := ParseVerseKey(k)
		assert.NoError(t, err)
		assert.Equal(t, want, r.ResolveVerse(context.Background(), key))
	}
}

func TestResolveVerseFallsBack(t *testing.T) {
	repo := newTableRepo()
	r := NewResolver(repo, repo, zerolog.Nop())

	rec, found := r.LookupVerse(context.Background(), NewKey("Job", 9, 9))
	assert.False(t, found)
	assert.Equal(t, DefaultVerse(), rec)

	failing := tableRepo{err: errors.New("backend down")}
	r = NewResolver(failing, failing, zerolog.Nop())
	assert.Equal(t, DefaultVerse(), r.ResolveVerse(context.Background(), NewKey("Genesis", 1, 3)))
	assert.Nil(t, r.ResolveChapter(context.Background(), "Genesis", 1))

	var nilResolver *Resolver
	assert.Equal(t, DefaultVerse(), nilResolver.ResolveVerse(context.Background(), DefaultKey))
}

func TestResolveWord(t *testing.T) {
	repo := newTableRepo()
	r := NewResolver(repo, repo, zerolog.Nop())

	e, ok := r.ResolveWord(context.Background(), "אוֹר")
	assert.True(t, ok)
	assert.Equal(t, []string{"light"}, e.Meanings)

	_, ok = r.ResolveWord(context.Background(), "לֹא")
	assert.False(t, ok)

	_, ok = r.ResolveWord(context.Background(), "")
	assert.False(t, ok)

	r = NewResolver(repo, nil, zerolog.Nop())
	_, ok = r.ResolveWord(context.Background(), "אוֹר")
	assert.False(t, ok)
}

func TestWordIndexInVerse(t *testing.T) {
	repo := newTableRepo()
	r := NewResolver(repo, repo, zerolog.Nop())
	ctx := context.Background()

	assert.Equal(t, 3, r.WordIndexInVerse(ctx, NewKey("Genesis", 1, 3), "אוֹר"))
	assert.Equal(t, 3, r.WordIndexInVerse(ctx, NewKey("Psalms", 23, 1), "רֹעִי"))
	assert.Equal(t, -1, r.WordIndexInVerse(ctx, NewKey("Psalms", 23, 1), "אוֹר"))
	assert.Equal(t, 0, r.WordIndexInVerse(ctx, NewKey("Job", 1, 1), "בְּרֵאשִׁית"), "unknown keys tokenize the default verse")
}

func TestResolveChapter(t *testing.T) {
	repo := newTableRepo()
	r := NewResolver(repo, repo, zerolog.Nop())

	verses := r.ResolveChapter(context.Background(), "Genesis", 1)
	if assert.Len(t, verses, 1) {
		assert.Equal(t, NewKey("Genesis", 1, 3), verses[0].Key)
	}
}
