package store

import (
	"context"
	"path/filepath"
	"testing"

	"davar/internal/scripture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "davar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteImportAndLookup(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	empty, err := db.Empty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, db.Import(ctx, Builtin()))

	empty, err = db.Empty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)

	mem := NewMemory()
	for _, k := range mem.Keys() {
		want, err := mem.GetVerse(ctx, k)
		require.NoError(t, err)
		got, err := db.GetVerse(ctx, k)
		require.NoError(t, err, k.Display())
		assert.Equal(t, want, got, k.Display())
	}

	for _, e := range Builtin().Lexicon {
		got, err := db.GetWord(ctx, e.Word)
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
}

func TestSQLiteMisses(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.GetVerse(ctx, scripture.NewKey("Job", 1, 1))
	assert.ErrorIs(t, err, scripture.ErrVerseNotFound)

	_, err = db.GetWord(ctx, "אֵת")
	assert.ErrorIs(t, err, scripture.ErrWordNotFound)
}

func TestSQLiteChapter(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, db.Import(ctx, Builtin()))

	verses, err := db.Chapter(ctx, "Genesis", 1)
	require.NoError(t, err)
	require.Len(t, verses, 3)
	assert.Equal(t, scripture.NewKey("Genesis", 1, 3), verses[2].Key)
}

func TestSQLiteImportReplaces(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, db.Import(ctx, Builtin()))

	updated := Pack{Verses: []PackVerse{{
		Book: "Genesis", Chapter: 1, Verse: 1,
		Hebrew:       "בְּרֵאשִׁית",
		Translations: map[scripture.Language]string{scripture.Spanish: "En el principio"},
	}}}
	require.NoError(t, db.Import(ctx, updated))

	rec, err := db.GetVerse(ctx, scripture.NewKey("Genesis", 1, 1))
	require.NoError(t, err)
	assert.Equal(t, "בְּרֵאשִׁית", rec.Hebrew)
	assert.Equal(t, map[scripture.Language]string{scripture.Spanish: "En el principio"}, rec.Translations)
}

func TestSQLiteImportRejectsInvalidPack(t *testing.T) {
	db := openTestDB(t)
	err := db.Import(context.Background(), Pack{Verses: []PackVerse{{Book: "Ruth"}}})
	assert.Error(t, err)
}
