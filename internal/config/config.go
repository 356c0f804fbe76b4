// Package config loads user settings from a TOML file.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"termdeck/internal/logging"
	"termdeck/internal/style"
)

// Config holds player settings. Zero-valued keys in the file keep their
// defaults.
type Config struct {
	// FPS is the display frame rate. Live reveals step once every
	// 11-speed frames.
	FPS int `toml:"fps"`

	// Foreground and Background are the colors of slides without a
	// style directive.
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`

	// LineNumbers adds a gutter to source-file reveals.
	LineNumbers bool `toml:"line_numbers"`

	// ResumeOnReentry keeps reveal progress when returning to a slide.
	ResumeOnReentry bool `toml:"resume_on_reentry"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	// LogFile receives log output instead of stderr. The player always
	// logs to a file or discards, since stderr is the screen.
	LogFile string `toml:"log_file,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		FPS:        20,
		Foreground: "black",
		Background: "white",
		LogLevel:   "info",
		LogFormat:  logging.FormatText,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/termdeck/config.toml, or the
// platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "termdeck", "config.toml")
}

// Load reads path over the defaults. A missing file at the default path is
// not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, cfg)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, os.ErrNotExist):
		return cfg, nil
	default:
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "file", path, "key", key.String())
	}
	return cfg, cfg.Validate(style.DefaultPalette())
}

// Validate checks values against p and the accepted ranges.
func (c *Config) Validate(p *style.Palette) error {
	if c.FPS < 1 || c.FPS > 120 {
		return errors.Errorf("fps must be between 1 and 120, got %d", c.FPS)
	}
	if _, ok := p.Color(c.Foreground); !ok {
		return &style.ConfigError{Field: "foreground", Value: c.Foreground, Err: style.ErrUnsupportedColor}
	}
	if _, ok := p.Color(c.Background); !ok {
		return &style.ConfigError{Field: "background", Value: c.Background, Err: style.ErrUnsupportedColor}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatLogfmt, logging.FormatJSON:
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
