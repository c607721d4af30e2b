package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"davar/internal/scripture"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS verses (
	book            TEXT    NOT NULL,
	chapter         INTEGER NOT NULL,
	verse           INTEGER NOT NULL,
	hebrew          TEXT    NOT NULL,
	alt_text        TEXT    NOT NULL DEFAULT '',
	alt_translation TEXT    NOT NULL DEFAULT '',
	PRIMARY KEY (book, chapter, verse)
);
CREATE TABLE IF NOT EXISTS translations (
	book    TEXT    NOT NULL,
	chapter INTEGER NOT NULL,
	verse   INTEGER NOT NULL,
	lang    TEXT    NOT NULL,
	text    TEXT    NOT NULL,
	PRIMARY KEY (book, chapter, verse, lang)
);
CREATE TABLE IF NOT EXISTS variants (
	book           TEXT    NOT NULL,
	chapter        INTEGER NOT NULL,
	verse          INTEGER NOT NULL,
	standard_form  TEXT    NOT NULL,
	alternate_form TEXT    NOT NULL,
	label          TEXT    NOT NULL DEFAULT '',
	color          TEXT    NOT NULL DEFAULT '',
	PRIMARY KEY (book, chapter, verse, standard_form)
);
CREATE TABLE IF NOT EXISTS lexicon (
	word                 TEXT PRIMARY KEY,
	transliteration      TEXT NOT NULL DEFAULT '',
	root                 TEXT NOT NULL DEFAULT '',
	root_transliteration TEXT NOT NULL DEFAULT '',
	root_meaning         TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS meanings (
	word     TEXT    NOT NULL,
	position INTEGER NOT NULL,
	meaning  TEXT    NOT NULL,
	PRIMARY KEY (word, position)
);
CREATE TABLE IF NOT EXISTS instances (
	word      TEXT    NOT NULL,
	position  INTEGER NOT NULL,
	verse_ref TEXT    NOT NULL,
	excerpt   TEXT    NOT NULL DEFAULT '',
	PRIMARY KEY (word, position)
);
`

// SQLite is a verse and lexicon repository backed by a SQLite file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Migrate creates any missing tables.
func (s *SQLite) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Empty reports whether no verses have been imported.
func (s *SQLite) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM verses`).Scan(&n); err != nil {
		return false, fmt.Errorf("count verses: %w", err)
	}
	return n == 0, nil
}

// Import writes the pack in one transaction, replacing existing rows for
// the same verses and words.
func (s *SQLite) Import(ctx context.Context, p Pack) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid pack: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, v := range p.Verses {
		if err := importVerse(ctx, tx, v); err != nil {
			return fmt.Errorf("import %s: %w", v.Key().Display(), err)
		}
	}
	for _, e := range p.Lexicon {
		if err := importEntry(ctx, tx, e); err != nil {
			return fmt.Errorf("import word %q: %w", e.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func importVerse(ctx context.Context, tx *sql.Tx, v PackVerse) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO verses (book, chapter, verse, hebrew, alt_text, alt_translation) VALUES (?, ?, ?, ?, ?, ?)`,
		v.Book, v.Chapter, v.Verse, v.Hebrew, v.AltText, v.AltTranslation,
	); err != nil {
		return err
	}

	for _, table := range []string{"translations", "variants"} {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM `+table+` WHERE book = ? AND chapter = ? AND verse = ?`,
			v.Book, v.Chapter, v.Verse,
		); err != nil {
			return err
		}
	}

	for lang, text := range v.Translations {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO translations (book, chapter, verse, lang, text) VALUES (?, ?, ?, ?, ?)`,
			v.Book, v.Chapter, v.Verse, string(lang), text,
		); err != nil {
			return err
		}
	}

	for _, wv := range v.Variants {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO variants (book, chapter, verse, standard_form, alternate_form, label, color) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			v.Book, v.Chapter, v.Verse, wv.StandardForm, wv.AlternateForm, wv.Label, string(wv.Color),
		); err != nil {
			return err
		}
	}
	return nil
}

func importEntry(ctx context.Context, tx *sql.Tx, e scripture.LexicalEntry) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO lexicon (word, transliteration, root, root_transliteration, root_meaning) VALUES (?, ?, ?, ?, ?)`,
		e.Word, e.Transliteration, e.Root, e.RootTransliteration, e.RootMeaning,
	); err != nil {
		return err
	}

	for _, table := range []string{"meanings", "instances"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE word = ?`, e.Word); err != nil {
			return err
		}
	}

	for i, m := range e.Meanings {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO meanings (word, position, meaning) VALUES (?, ?, ?)`, e.Word, i, m,
		); err != nil {
			return err
		}
	}
	for i, in := range e.Instances {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO instances (word, position, verse_ref, excerpt) VALUES (?, ?, ?, ?)`, e.Word, i, in.VerseRef, in.Excerpt,
		); err != nil {
			return err
		}
	}
	return nil
}

// GetVerse implements scripture.VerseRepository.
func (s *SQLite) GetVerse(ctx context.Context, key scripture.VerseKey) (scripture.VerseRecord, error) {
	var rec scripture.VerseRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT hebrew, alt_text, alt_translation FROM verses WHERE book = ? AND chapter = ? AND verse = ?`,
		key.Book, key.Chapter, key.Verse,
	).Scan(&rec.Hebrew, &rec.AltText, &rec.AltTranslation)
	if errors.Is(err, sql.ErrNoRows) {
		return scripture.VerseRecord{}, scripture.ErrVerseNotFound
	}
	if err != nil {
		return scripture.VerseRecord{}, fmt.Errorf("query verse %s: %w", key, err)
	}

	if rec.Translations, err = s.translations(ctx, key); err != nil {
		return scripture.VerseRecord{}, err
	}
	if rec.WordVariants, err = s.variants(ctx, key); err != nil {
		return scripture.VerseRecord{}, err
	}
	return rec, nil
}

func (s *SQLite) translations(ctx context.Context, key scripture.VerseKey) (map[scripture.Language]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT lang, text FROM translations WHERE book = ? AND chapter = ? AND verse = ?`,
		key.Book, key.Chapter, key.Verse,
	)
	if err != nil {
		return nil, fmt.Errorf("query translations %s: %w", key, err)
	}
	defer rows.Close()

	var out map[scripture.Language]string
	for rows.Next() {
		var lang, text string
		if err := rows.Scan(&lang, &text); err != nil {
			return nil, err
		}
		if out == nil {
			out = make(map[scripture.Language]string)
		}
		out[scripture.Language(lang)] = text
	}
	return out, rows.Err()
}

func (s *SQLite) variants(ctx context.Context, key scripture.VerseKey) (map[string]scripture.WordVariant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT standard_form, alternate_form, label, color FROM variants WHERE book = ? AND chapter = ? AND verse = ?`,
		key.Book, key.Chapter, key.Verse,
	)
	if err != nil {
		return nil, fmt.Errorf("query variants %s: %w", key, err)
	}
	defer rows.Close()

	var out map[string]scripture.WordVariant
	for rows.Next() {
		var wv scripture.WordVariant
		var color string
		if err := rows.Scan(&wv.StandardForm, &wv.AlternateForm, &wv.Label, &color); err != nil {
			return nil, err
		}
		wv.Color = scripture.ColorTag(color)
		if out == nil {
			out = make(map[string]scripture.WordVariant)
		}
		out[wv.StandardForm] = wv
	}
	return out, rows.Err()
}

// Chapter implements scripture.VerseRepository.
func (s *SQLite) Chapter(ctx context.Context, book string, chapter int) ([]scripture.KeyedVerse, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT verse FROM verses WHERE book = ? AND chapter = ? ORDER BY verse`, book, chapter,
	)
	if err != nil {
		return nil, fmt.Errorf("query chapter %s %d: %w", book, chapter, err)
	}

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			rows.Close()
			return nil, err
		}
		numbers = append(numbers, n)
	}
	// The pool holds a single connection, so rows must be closed before the
	// per-verse queries below.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]scripture.KeyedVerse, 0, len(numbers))
	for _, n := range numbers {
		key := scripture.NewKey(book, chapter, n)
		rec, err := s.GetVerse(ctx, key)
		if err != nil {
			return nil, err
		}
		out = append(out, scripture.KeyedVerse{Key: key, Record: rec})
	}
	return out, nil
}

// GetWord implements scripture.LexiconRepository.
func (s *SQLite) GetWord(ctx context.Context, word string) (scripture.LexicalEntry, error) {
	e := scripture.LexicalEntry{Word: word}
	err := s.db.QueryRowContext(ctx,
		`SELECT transliteration, root, root_transliteration, root_meaning FROM lexicon WHERE word = ?`, word,
	).Scan(&e.Transliteration, &e.Root, &e.RootTransliteration, &e.RootMeaning)
	if errors.Is(err, sql.ErrNoRows) {
		return scripture.LexicalEntry{}, scripture.ErrWordNotFound
	}
	if err != nil {
		return scripture.LexicalEntry{}, fmt.Errorf("query word %q: %w", word, err)
	}

	if e.Meanings, err = s.meanings(ctx, word); err != nil {
		return scripture.LexicalEntry{}, err
	}
	if e.Instances, err = s.instances(ctx, word); err != nil {
		return scripture.LexicalEntry{}, err
	}
	return e, nil
}

func (s *SQLite) meanings(ctx context.Context, word string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT meaning FROM meanings WHERE word = ? ORDER BY position`, word)
	if err != nil {
		return nil, fmt.Errorf("query meanings %q: %w", word, err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLite) instances(ctx context.Context, word string) ([]scripture.WordInstance, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT verse_ref, excerpt FROM instances WHERE word = ? ORDER BY position`, word)
	if err != nil {
		return nil, fmt.Errorf("query instances %q: %w", word, err)
	}
	defer rows.Close()

	var out []scripture.WordInstance
	for rows.Next() {
		var in scripture.WordInstance
		if err := rows.Scan(&in.VerseRef, &in.Excerpt); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

var (
	_ scripture.VerseRepository   = (*SQLite)(nil)
	_ scripture.LexiconRepository = (*SQLite)(nil)
)
