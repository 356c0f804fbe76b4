package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, FormatLogfmt, &buf)

	New("deck").Info("hello")

	assert.Contains(t, buf.String(), "component=deck")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestInitTextFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, FormatText, &buf)

	New("tui").Warn("slow frame", "ms", 40)

	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "slow frame")
	assert.Contains(t, out, "component=tui")
	assert.NotContains(t, out, "\x1b[", "no color when not writing to a terminal")
}

func TestInitJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, FormatJSON, &buf)

	New("json-test").Info("json check")

	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), `"component":"json-test"`)
}

func TestInitLevelGating(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelWarn, FormatText, &buf)

	logger := New("gate-test")
	logger.Info("should be suppressed")
	logger.Warn("should appear")

	assert.NotContains(t, buf.String(), "should be suppressed")
	assert.Contains(t, buf.String(), "should appear")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termdeck.log")
	f, err := OpenFile(path)
	require.NoError(t, err)
	Init(slog.LevelInfo, FormatJSON, f)
	New("file").Info("first")
	require.NoError(t, f.Close())

	f, err = OpenFile(path)
	require.NoError(t, err)
	Init(slog.LevelInfo, FormatJSON, f)
	New("file").Info("second")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}
