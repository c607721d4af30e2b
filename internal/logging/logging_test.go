package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "davar.log")

	l, closer, err := New("info", file)
	require.NoError(t, err)

	cl := Component(l, "resolver")
	cl.Info().Str("key", "Genesis-1-1").Msg("resolved")
	l.Debug().Msg("dropped")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "resolver", entry["component"])
	assert.Equal(t, "Genesis-1-1", entry["key"])
	assert.Contains(t, entry, "time")
}

func TestNewAppends(t *testing.T) {
	file := filepath.Join(t.TempDir(), "davar.log")
	for range 2 {
		l, closer, err := New("info", file)
		require.NoError(t, err)
		l.Info().Msg("start")
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	assert.Error(t, err)
	closer()
}

func TestNewWithoutFileDiscards(t *testing.T) {
	l, closer, err := New("debug", "")
	require.NoError(t, err)
	defer closer()
	l.Info().Msg("nowhere")
}
