// Package settings persists reader preferences. Only the theme and the
// language are stored; toggles and onboarding state live for one session.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Preference keys.
const (
	KeyTheme    = "theme"
	KeyLanguage = "language"
)

// Store is a string key/value preference store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// DefaultPath returns <config-dir>/davar/settings.json.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "davar", "settings.json"), nil
}

// File is a Store backed by a JSON object on disk. Every Set rewrites the file.
type File struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// Open loads the file at path. A missing file is an empty store.
func Open(path string) (*File, error) {
	f := &File{path: path, values: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		// No file = just start empty, no error
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &f.values); err != nil {
		return nil, err
	}
	if f.values == nil {
		f.values = map[string]string{}
	}

	return f, nil
}

// Get implements Store.
func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Set implements Store.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(f.path, data, 0o644)
}

// Memory is a Store that never touches disk.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// Get implements Store.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Set implements Store.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

var (
	_ Store = (*File)(nil)
	_ Store = (*Memory)(nil)
)
