// Package config parses the optional support.toml appearance and logging
// settings. The shell runs with defaults when no file exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/LISSConsulting/LISSTech.SupportTools/internal/logging"
)

// FileName is the config file looked up from the working directory upward.
const FileName = "support.toml"

// DefaultAccentColor is the default title/accent color (blue).
const DefaultAccentColor = "#5B9BD5"

// hexColorRe matches a 6-digit hex color string like "#5B9BD5".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level support.toml configuration.
type Config struct {
	TUI TUIConfig `toml:"tui"`
	Log LogConfig `toml:"log"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// LogConfig controls the diagnostic side channel.
type LogConfig struct {
	File  string `toml:"file"`  // empty = system temp dir
	Level string `toml:"level"` // debug, info, warn, error
}

// Validate checks the configuration and returns all found issues joined
// together.
func (c *Config) Validate() error {
	var errs []error

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#5B9BD5\")"))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error"))
	}

	return errors.Join(errs...)
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// Load reads support.toml from the given path. If path is empty, it walks
// up from the current working directory looking for support.toml and
// returns Defaults when none is found. An explicit path must exist. Unknown
// keys are reported as errors (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		if found == "" {
			cfg := Defaults()
			return &cfg, nil
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	cfg.Path = path
	return &cfg, nil
}

// findConfig walks up from the current directory looking for support.toml.
// It returns "" when the filesystem root is reached without a match.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// InitFile writes a default support.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# support.toml: Support Tools appearance and logging
# Every key is optional; delete the file to use the defaults.

[tui]
accent_color = "#5B9BD5"  # hex color for the title and list highlight

[log]
file = ""       # diagnostic log path (empty = system temp dir)
level = "info"  # debug | info | warn | error
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
