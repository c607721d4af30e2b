package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"davar/internal/cache"
	"davar/internal/store"
)

func newImportCmd(flags *rootFlags) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <pack file, glob or URL>",
		Short: "Cache data packs and load them into the SQLite database",
		Long: "import validates a JSON data pack (or a zip holding one), keeps a copy in\n" +
			"the pack cache and loads its verses and lexicon entries into the SQLite\n" +
			"database used by the sqlite backend. A glob such as 'packs/**/*.json'\n" +
			"imports every matching file.",
		Example: "  davar import ./psalms.json\n" +
			"  davar import 'downloads/**/*.zip'\n" +
			"  davar import https://example.org/packs/torah.zip --name torah",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := expandSources(args[0])
			if err != nil {
				return err
			}
			if name != "" && len(sources) > 1 {
				return fmt.Errorf("--name needs a single pack, %q matched %d", args[0], len(sources))
			}

			a, err := newApp(flags)
			if err != nil {
				return err
			}
			defer a.Close()

			c, err := cache.New(a.cfg.PacksDir())
			if err != nil {
				return err
			}

			db, err := store.OpenSQLite(cmd.Context(), a.cfg.Data.SQLitePath)
			if err != nil {
				return err
			}
			defer db.Close()

			for _, src := range sources {
				packName := name
				if packName == "" {
					packName = cache.PackName(src)
				}

				pack, err := cachePack(cmd.Context(), c, src, packName)
				if err != nil {
					return fmt.Errorf("import %s: %w", src, err)
				}
				if err := db.Import(cmd.Context(), pack); err != nil {
					return fmt.Errorf("import %s: %w", packName, err)
				}

				logImported(a.log, packName, pack)
				fmt.Fprintf(cmd.OutOrStdout(), "imported %s: %d verses, %d lexicon entries into %s\n",
					packName, len(pack.Verses), len(pack.Lexicon), a.cfg.Data.SQLitePath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "cache name for the pack (default derived from the source)")

	return cmd
}

// expandSources turns a glob into the matching files. URLs and plain paths
// pass through untouched.
func expandSources(source string) ([]string, error) {
	if isURL(source) || !strings.ContainsAny(source, "*?[{") {
		return []string{source}, nil
	}

	matches, err := doublestar.FilepathGlob(source, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", source, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no packs match %q", source)
	}
	return matches, nil
}

func cachePack(ctx context.Context, c *cache.Cache, source, name string) (store.Pack, error) {
	var err error
	if isURL(source) {
		err = c.Download(ctx, source, name)
	} else {
		err = c.Add(source, name)
	}
	if err != nil {
		return store.Pack{}, err
	}
	return c.Load(name)
}

func logImported(l zerolog.Logger, name string, pack store.Pack) {
	l.Info().
		Str("pack", name).
		Int("verses", len(pack.Verses)).
		Int("entries", len(pack.Lexicon)).
		Msg("pack imported")
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
