package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"davar/internal/scripture"
	"davar/internal/store"
)

type verseOptions struct {
	lang    string
	alt     bool
	chapter bool
	json    bool
}

func newVerseCmd(flags *rootFlags) *cobra.Command {
	opts := &verseOptions{}

	cmd := &cobra.Command{
		Use:   "verse <reference>",
		Short: "Print a verse in Hebrew with its translation",
		Example: "  davar verse Genesis 1:1\n" +
			"  davar verse Isaiah-53-11 --alt\n" +
			"  davar verse Genesis 1:1 --chapter --lang es",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerse(cmd, flags, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.lang, "lang", "", "translation language: en, es, he (default from config)")
	cmd.Flags().BoolVar(&opts.alt, "alt", false, "also print the alternate reading when one exists")
	cmd.Flags().BoolVar(&opts.chapter, "chapter", false, "print every available verse of the chapter")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print verses as pack JSON")

	return cmd
}

func runVerse(cmd *cobra.Command, flags *rootFlags, opts *verseOptions, ref string) error {
	key, err := scripture.ParseVerseKey(ref)
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context(), flags)
	if err != nil {
		return err
	}
	defer a.Close()

	langName := opts.lang
	if langName == "" {
		langName = a.cfg.UI.Language
	}
	lang, err := scripture.ParseLanguage(langName)
	if err != nil {
		return err
	}

	var verses []scripture.KeyedVerse
	if opts.chapter {
		verses = a.resolver.ResolveChapter(cmd.Context(), key.Book, key.Chapter)
		if len(verses) == 0 {
			return fmt.Errorf("%s %d: %w", key.Book, key.Chapter, scripture.ErrVerseNotFound)
		}
	} else {
		rec, found := a.resolver.LookupVerse(cmd.Context(), key)
		if !found {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s is not available, showing the default verse\n", key.Display())
			if opts.json {
				key = scripture.DefaultKey
			}
		}
		verses = []scripture.KeyedVerse{{Key: key, Record: rec}}
	}

	out := cmd.OutOrStdout()
	if opts.json {
		return writeVersesJSON(out, verses)
	}

	for i, kv := range verses {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printVerse(out, kv, lang, opts.alt)
	}
	return nil
}

func printVerse(w io.Writer, kv scripture.KeyedVerse, lang scripture.Language, alt bool) {
	fmt.Fprintln(w, kv.Key.Display())
	fmt.Fprintln(w, kv.Record.Hebrew)
	fmt.Fprintln(w, kv.Record.Translation(lang))

	if alt && kv.Record.HasAlternate() {
		fmt.Fprintf(w, "alternate: %s\n", kv.Record.AltText)
		if kv.Record.AltTranslation != "" {
			fmt.Fprintln(w, kv.Record.AltTranslation)
		}
		words := make([]string, 0, len(kv.Record.WordVariants))
		for word := range kv.Record.WordVariants {
			words = append(words, word)
		}
		sort.Strings(words)
		for _, word := range words {
			v := kv.Record.WordVariants[word]
			fmt.Fprintf(w, "  %s -> %s (%s)\n", v.StandardForm, v.AlternateForm, v.Label)
		}
	}
}

func writeVersesJSON(w io.Writer, verses []scripture.KeyedVerse) error {
	out := make([]store.PackVerse, 0, len(verses))
	for _, kv := range verses {
		out = append(out, store.NewPackVerse(kv.Key, kv.Record))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
