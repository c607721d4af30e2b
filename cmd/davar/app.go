package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"davar/internal/api"
	"davar/internal/cache"
	"davar/internal/config"
	"davar/internal/gesture"
	"davar/internal/logging"
	"davar/internal/nav"
	"davar/internal/scripture"
	"davar/internal/settings"
	"davar/internal/store"
	"davar/internal/ui"
)

// app is everything a command needs once configuration is resolved.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	resolver *scripture.Resolver
	closers  []func()
}

// newApp loads configuration and opens the log. No backend is opened.
func newApp(flags *rootFlags) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.Logger = logger

	return &app{cfg: cfg, log: logger, closers: []func(){closeLog}}, nil
}

// openApp is newApp plus the configured backend behind a resolver.
func openApp(ctx context.Context, flags *rootFlags) (*app, error) {
	a, err := newApp(flags)
	if err != nil {
		return nil, err
	}

	verses, lexicon, err := a.openBackend(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.resolver = scripture.NewResolver(verses, lexicon, a.log)

	return a, nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	configPath := flags.configPath
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	dataDir := flags.dataDir
	if dataDir == "" {
		d, err := config.DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = d
	}

	cfg, err := config.Load(configPath, dataDir)
	if err != nil {
		return nil, err
	}

	if flags.backend != "" {
		cfg.Data.Backend = flags.backend
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *app) openBackend(ctx context.Context) (scripture.VerseRepository, scripture.LexiconRepository, error) {
	logger := logging.Component(a.log, "backend")

	switch a.cfg.Data.Backend {
	case config.BackendSQLite:
		db, err := store.OpenSQLite(ctx, a.cfg.Data.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, func() { _ = db.Close() })

		empty, err := db.Empty(ctx)
		if err != nil {
			return nil, nil, err
		}
		if empty {
			logger.Info().Str("path", a.cfg.Data.SQLitePath).Msg("seeding database with reference tables")
			if err := db.Import(ctx, store.Builtin()); err != nil {
				return nil, nil, fmt.Errorf("seed database: %w", err)
			}
		}
		return db, db, nil

	case config.BackendHTTP:
		mem, err := a.memory()
		if err != nil {
			return nil, nil, err
		}
		client := api.NewClient(a.cfg.Data.HTTPBaseURL)
		client.SetCache(mem)
		logger.Info().Str("url", a.cfg.Data.HTTPBaseURL).Msg("using remote provider")
		return client, client, nil

	default:
		mem, err := a.memory()
		if err != nil {
			return nil, nil, err
		}
		return mem, mem, nil
	}
}

// memory returns the reference tables, or the configured pack in their place.
func (a *app) memory() (*store.Memory, error) {
	ref := a.cfg.Data.PackPath
	if ref == "" {
		return store.NewMemory(), nil
	}

	c, err := cache.New(a.cfg.PacksDir())
	if err != nil {
		return nil, err
	}

	name := ref
	if isPackFile(ref) {
		name = cache.PackName(ref)
		if err := c.Add(ref, name); err != nil {
			return nil, fmt.Errorf("load pack %s: %w", ref, err)
		}
	}

	pack, err := c.Load(name)
	if err != nil {
		return nil, err
	}
	a.log.Info().Str("pack", name).Int("verses", len(pack.Verses)).Msg("loaded pack")
	return store.NewMemoryFrom(pack), nil
}

func isPackFile(ref string) bool {
	lower := strings.ToLower(ref)
	if !strings.HasSuffix(lower, ".json") && !strings.HasSuffix(lower, ".zip") {
		return false
	}
	_, err := os.Stat(ref)
	return err == nil
}

// readerOptions builds the reader from configuration and saved preferences.
func (a *app) readerOptions() ui.Options {
	var prefs settings.Store
	file, err := settings.Open(a.cfg.SettingsFile())
	if err != nil {
		a.log.Warn().Err(err).Msg("settings unreadable, preferences will not persist")
		prefs = settings.NewMemory()
	} else {
		prefs = file
	}

	state := nav.DefaultState()
	if mode, ok := nav.ParseThemeMode(a.cfg.UI.Theme); ok {
		state.Theme = mode
	}
	if lang, err := scripture.ParseLanguage(a.cfg.UI.Language); err == nil {
		state.Language = lang
	}

	return ui.Options{
		Resolver: a.resolver,
		Prefs:    prefs,
		State:    state,
		Metrics: gesture.CellMetrics{
			Width:  a.cfg.Gesture.CellWidth,
			Height: a.cfg.Gesture.CellHeight,
		},
		LaunchScreen: a.cfg.UI.LaunchScreen,
		Logger:       logging.Component(a.log, "ui"),
	}
}
