// Package config loads the davar configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendHTTP   = "http"
)

// Config is the top-level configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	UI      UIConfig      `yaml:"ui"`
	Gesture GestureConfig `yaml:"gesture"`
	Log     LogConfig     `yaml:"log"`

	DataDir string `yaml:"-"` // set by Load, not from the file
}

// DataConfig selects where verses and lexicon entries come from.
type DataConfig struct {
	Backend     string `yaml:"backend" validate:"oneof=memory sqlite http"`
	SQLitePath  string `yaml:"sqlite_path"`
	HTTPBaseURL string `yaml:"http_base_url" validate:"required_if=Backend http,omitempty,url"`
	PackPath    string `yaml:"pack_path"` // cached pack name or JSON/zip file loaded into memory
}

// UIConfig holds the reader defaults. Saved preferences override Theme and
// Language.
type UIConfig struct {
	Theme        string `yaml:"theme" validate:"oneof=light dark"`
	Language     string `yaml:"language" validate:"oneof=en es he"`
	LaunchScreen bool   `yaml:"launch_screen"`
}

// GestureConfig is the terminal cell size in pixels used to scale mouse drags.
type GestureConfig struct {
	CellWidth  int `yaml:"cell_width" validate:"min=1,max=64"`
	CellHeight int `yaml:"cell_height" validate:"min=1,max=128"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	File  string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Data: DataConfig{
			Backend: BackendMemory,
		},
		UI: UIConfig{
			Theme:        "light",
			Language:     "en",
			LaunchScreen: true,
		},
		Gesture: GestureConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns <config-dir>/davar/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "davar", "config.yaml"), nil
}

// DefaultDataDir returns <data-home>/davar, honoring XDG_DATA_HOME.
func DefaultDataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "davar"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "davar"), nil
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Data.Backend == "" {
		c.Data.Backend = defaults.Data.Backend
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.Language == "" {
		c.UI.Language = defaults.UI.Language
	}
	if c.Gesture.CellWidth == 0 {
		c.Gesture.CellWidth = defaults.Gesture.CellWidth
	}
	if c.Gesture.CellHeight == 0 {
		c.Gesture.CellHeight = defaults.Gesture.CellHeight
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.DataDir != "" {
		if c.Data.SQLitePath == "" {
			c.Data.SQLitePath = filepath.Join(c.DataDir, "davar.db")
		}
		if c.Log.File == "" {
			c.Log.File = filepath.Join(c.DataDir, "davar.log")
		}
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Data.Backend == BackendSQLite && c.Data.SQLitePath == "" {
		return fmt.Errorf("data.sqlite_path cannot be empty for the sqlite backend")
	}

	return nil
}

// PacksDir is where imported data packs are cached.
func (c *Config) PacksDir() string {
	return filepath.Join(c.DataDir, "packs")
}

// SettingsFile is the saved preferences file.
func (c *Config) SettingsFile() string {
	return filepath.Join(c.DataDir, "settings.json")
}
