// Package config loads and watches the vimbridge configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/vimbridge/internal/engine/tracking"
)

// Config is the top-level configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Tracker TrackerConfig `toml:"tracker"`
	Macro   MacroConfig   `toml:"macro"`
	Log     LogConfig     `toml:"log"`
}

// EditorConfig configures buffer editing behavior.
type EditorConfig struct {
	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tab_width"`

	// ExpandTab inserts spaces when the Tab key is pressed.
	ExpandTab bool `toml:"expand_tab"`
}

// TrackerConfig configures change tracking.
type TrackerConfig struct {
	// Enabled turns change tracking (and with it repeat-last-insert)
	// on or off.
	Enabled bool `toml:"enabled"`

	// NormalizeBlanks treats tab-for-space rewrites by the host as
	// part of the surrounding insertion instead of separate edits.
	NormalizeBlanks bool `toml:"normalize_blanks"`
}

// MacroConfig configures macro replay.
type MacroConfig struct {
	// MaxCount caps the repeat count accepted for a single run.
	MaxCount int `toml:"max_count"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum level to emit: debug, info, warn, error.
	Level string `toml:"level"`

	// File is the log destination; empty means stderr.
	File string `toml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Editor:  EditorConfig{TabWidth: 4, ExpandTab: false},
		Tracker: TrackerConfig{Enabled: true, NormalizeBlanks: true},
		Macro:   MacroConfig{MaxCount: 10000},
		Log:     LogConfig{Level: "info"},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vimbridge", "config.toml")
}

// Load reads configuration from path, applying defaults for absent
// fields. A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width %d out of range [1,16]", c.Editor.TabWidth)
	}
	if c.Macro.MaxCount < 1 {
		return fmt.Errorf("macro.max_count %d must be positive", c.Macro.MaxCount)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q unknown", c.Log.Level)
	}
	return nil
}

// NormalizeBlanks returns the blank-normalization transform for the
// change tracker: tabs count as tabWidth spaces, so a host rewriting one
// for the other produces equivalent text.
func NormalizeBlanks(tabWidth int) tracking.NormalizeFunc {
	if tabWidth < 1 {
		tabWidth = 1
	}
	expanded := strings.Repeat(" ", tabWidth)
	return func(s string) string {
		return strings.ReplaceAll(s, "\t", expanded)
	}
}
