package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestColorHandler(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, "color").With("component", "catalog")

	logger.Debug("hidden")
	logger.WithGroup("load").Error("catalog load failed", "kind", "parse failure")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "ERR catalog load failed")
	assert.Contains(t, out, " component=catalog")
	assert.Contains(t, out, "load.kind=parse failure")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug, "json")

	logger.Info("catalog loaded", "entries", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "catalog loaded", rec["msg"])
	assert.EqualValues(t, 3, rec["entries"])
}

func TestOpenFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ngs.log")

	f, err := OpenFile(path)
	require.NoError(t, err)
	New(f, slog.LevelInfo, "text").Info("hello")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}
