package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termdeck/internal/style"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
fps = 30
foreground = "yellow"
line_numbers = true
log_format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.FPS = 30
	want.Foreground = "yellow"
	want.LineNumbers = true
	want.LogFormat = "json"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"bad color", `background = "beige"`, style.ErrUnsupportedColor},
		{"bad fps", `fps = 0`, nil},
		{"bad level", `log_level = "loud"`, nil},
		{"bad format", `log_format = "xml"`, nil},
		{"bad toml", `fps = `, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if p := DefaultPath(); p != "" {
		assert.Equal(t, "config.toml", filepath.Base(p))
		assert.Equal(t, "termdeck", filepath.Base(filepath.Dir(p)))
	}
}
