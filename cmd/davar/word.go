package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"davar/internal/scripture"
)

func newWordCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "word <hebrew word>",
		Short:   "Print the lexical entry for a Hebrew word-form",
		Example: "  davar word אוֹר",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.Close()

			entry, ok := a.resolver.ResolveWord(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("%s: %w", args[0], scripture.ErrWordNotFound)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entry)
			}
			printEntry(cmd.OutOrStdout(), entry)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the entry as JSON")

	return cmd
}

func printEntry(w io.Writer, e scripture.LexicalEntry) {
	if e.Transliteration != "" {
		fmt.Fprintf(w, "%s (%s)\n", e.Word, e.Transliteration)
	} else {
		fmt.Fprintln(w, e.Word)
	}

	for i, m := range e.Meanings {
		fmt.Fprintf(w, "  %d. %s\n", i+1, m)
	}

	if e.Root != "" {
		fmt.Fprintf(w, "root: %s", e.Root)
		if e.RootTransliteration != "" {
			fmt.Fprintf(w, " (%s)", e.RootTransliteration)
		}
		if e.RootMeaning != "" {
			fmt.Fprintf(w, " %s", e.RootMeaning)
		}
		fmt.Fprintln(w)
	}

	if len(e.Instances) > 0 {
		fmt.Fprintf(w, "instances (%d):\n", len(e.Instances))
		for _, in := range e.Instances {
			fmt.Fprintf(w, "  %-16s %s\n", in.VerseRef, in.Excerpt)
		}
	}
}
