package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"davar/internal/cache"
)

func newPacksCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packs",
		Short: "List cached data packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, done, err := openCache(flags)
			if err != nil {
				return err
			}
			defer done()

			names, err := c.ListCached()
			if err != nil {
				return err
			}
			size, err := c.GetCacheSize()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "no cached packs")
				return nil
			}
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			fmt.Fprintf(out, "%d packs, %s in %s\n", len(names), formatSize(size), c.Dir())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a cached pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, done, err := openCache(flags)
			if err != nil {
				return err
			}
			defer done()

			if !c.IsCached(args[0]) {
				return fmt.Errorf("pack %s not cached", args[0])
			}
			return c.RemovePack(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached pack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, done, err := openCache(flags)
			if err != nil {
				return err
			}
			defer done()

			return c.ClearCache()
		},
	})

	return cmd
}

func openCache(flags *rootFlags) (*cache.Cache, func(), error) {
	a, err := newApp(flags)
	if err != nil {
		return nil, nil, err
	}
	c, err := cache.New(a.cfg.PacksDir())
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	return c, a.Close, nil
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
