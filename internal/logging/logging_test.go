package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"fatal":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equalf(t, want, parseLogLevel(in), "parseLogLevel(%q)", in)
	}
}

func TestSetup_Console(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	console := &bytes.Buffer{}
	closer, err := setup(console, "warn", "")
	require.NoError(t, err)
	defer closer.Close()

	slog.Info("hidden")
	slog.Warn("shown", "key", "value")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "shown")
}

func TestSetup_File(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	dir := filepath.Join(t.TempDir(), "logs")
	console := &bytes.Buffer{}
	closer, err := setup(console, "debug", dir)
	require.NoError(t, err)

	slog.Debug("to both", "offset", 42)
	require.NoError(t, closer.Close())

	matches, err := filepath.Glob(filepath.Join(dir, "zipcomment_*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "to both", entry["msg"])
	assert.EqualValues(t, 42, entry["offset"])

	assert.Contains(t, console.String(), "Logging to file")
	assert.Contains(t, console.String(), "to both")
}
