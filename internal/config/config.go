// Package config loads the mathplex CLI configuration from TOML or YAML files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lukaszgryglicki/mathplex"
)

// Output modes
const (
	ModeCanonical  = "canonical"
	ModeFixed      = "fixed"
	ModeScientific = "scientific"
	ModePolar      = "polar"
)

// Config holds the complete CLI configuration
type Config struct {
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	History HistoryConfig `toml:"history" yaml:"history"`
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	Mode   string `toml:"mode" yaml:"mode"`
	Digits int    `toml:"digits" yaml:"digits"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// HistoryConfig holds evaluation history settings
type HistoryConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Output: OutputConfig{
			Mode:   ModeCanonical,
			Digits: 4,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    defaultHistoryPath(),
		},
	}
}

func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "mathplex-history.db"
	}
	return filepath.Join(dir, "mathplex", "history.db")
}

// Load reads the file at path over the defaults. An empty path returns the defaults.
// The format is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors
func (c Config) Validate() error {
	if !slices.Contains([]string{ModeCanonical, ModeFixed, ModeScientific, ModePolar}, c.Output.Mode) {
		return fmt.Errorf("invalid output mode: %q", c.Output.Mode)
	}
	if c.Output.Digits < 0 || c.Output.Digits > 17 {
		return fmt.Errorf("invalid output digits: %d (want 0..17)", c.Output.Digits)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}
	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history enabled without a path")
	}
	return nil
}

// SlogLevel maps the configured level onto slog.
func (c Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level: %q", s)
}

// Render formats c according to the output settings.
func (c Config) Render(v mathplex.Complex) string {
	switch c.Output.Mode {
	case ModeFixed:
		return v.StringFixed(c.Output.Digits)
	case ModeScientific:
		return v.StringScientific(c.Output.Digits)
	case ModePolar:
		return v.StringPolar(c.Output.Digits)
	}
	return v.String()
}
