package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"davar/internal/ui"
)

type rootFlags struct {
	configPath string
	dataDir    string
	logLevel   string
	logFile    string
	backend    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "davar",
		Short: "Read the Hebrew scriptures word by word",
		Long: "davar is a terminal reader for the Hebrew scriptures. It shows one verse\n" +
			"at a time in Hebrew with a translation, and opens a lexical card for any\n" +
			"word you tap.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReader(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to config file (default ~/.config/davar/config.yaml)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "data directory (default ~/.local/share/davar)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&flags.logFile, "log-file", "", "log file path")
	pf.StringVar(&flags.backend, "backend", "", "data backend: memory, sqlite, http")

	cmd.AddCommand(newVerseCmd(flags))
	cmd.AddCommand(newWordCmd(flags))
	cmd.AddCommand(newImportCmd(flags))
	cmd.AddCommand(newPacksCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runReader(cmd *cobra.Command, flags *rootFlags) error {
	a, err := openApp(cmd.Context(), flags)
	if err != nil {
		return err
	}
	defer a.Close()

	a.log.Info().
		Str("backend", a.cfg.Data.Backend).
		Str("theme", a.cfg.UI.Theme).
		Str("language", a.cfg.UI.Language).
		Msg("starting reader")

	p := tea.NewProgram(
		ui.NewModel(a.readerOptions()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run reader: %w", err)
	}
	return nil
}
