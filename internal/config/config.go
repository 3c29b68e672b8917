package config

import (
	"errors"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dshills/quill/internal/renderer/style"
)

// Config is the complete configuration.
type Config struct {
	// File is the single file the editor loads and saves.
	File string `mapstructure:"file"`

	// Transient buffers are never saved.
	Transient bool `mapstructure:"transient"`

	// Language selects the highlighting lexer. Empty detects it from File.
	Language string `mapstructure:"language"`

	Log   LogConfig              `mapstructure:"log"`
	Run   RunConfig              `mapstructure:"run"`
	Theme map[string]ColorConfig `mapstructure:"theme"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// RunConfig configures the run command.
type RunConfig struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxOutput     int           `mapstructure:"max_output"`
	CallStackSize int           `mapstructure:"call_stack_size"`
}

// ColorConfig overrides one theme color. Empty sides keep the default.
type ColorConfig struct {
	FG string `mapstructure:"fg"`
	BG string `mapstructure:"bg"`
}

// Defaults.
const (
	DefaultFile          = "demo.lua"
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 5
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
	DefaultRunTimeout    = 2 * time.Second
	DefaultMaxOutput     = 64 * 1024
	DefaultCallStackSize = 256
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		File: DefaultFile,
		Log: LogConfig{
			Level:      DefaultLogLevel,
			File:       DefaultLogFile(),
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
		},
		Run: RunConfig{
			Timeout:       DefaultRunTimeout,
			MaxOutput:     DefaultMaxOutput,
			CallStackSize: DefaultCallStackSize,
		},
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quill", "config.toml")
}

// DefaultLogFile returns the default log file path.
func DefaultLogFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "quill.log")
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "quill", "quill.log")
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(key string, value any, msg string) {
		errs = append(errs, &ValidationError{Key: key, Value: value, Message: msg})
	}

	if strings.TrimSpace(c.File) == "" {
		invalid("file", c.File, "must not be empty")
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		invalid("log.level", c.Log.Level, "must be one of "+strings.Join(logLevels, ", "))
	}
	if c.Log.MaxSizeMB <= 0 {
		invalid("log.max_size_mb", c.Log.MaxSizeMB, "must be positive")
	}
	if c.Log.MaxBackups < 0 {
		invalid("log.max_backups", c.Log.MaxBackups, "must not be negative")
	}
	if c.Log.MaxAgeDays < 0 {
		invalid("log.max_age_days", c.Log.MaxAgeDays, "must not be negative")
	}
	if c.Run.Timeout <= 0 {
		invalid("run.timeout", c.Run.Timeout, "must be positive")
	}
	if c.Run.MaxOutput < 0 {
		invalid("run.max_output", c.Run.MaxOutput, "must not be negative")
	}
	if c.Run.CallStackSize <= 0 {
		invalid("run.call_stack_size", c.Run.CallStackSize, "must be positive")
	}
	for _, name := range sortedKeys(c.Theme) {
		if _, err := c.themeWith(name); err != nil {
			invalid("theme."+name, c.Theme[name], err.Error())
		}
	}
	return errors.Join(errs...)
}

// SlogLevel returns the log level. Unknown levels map to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// BuildTheme returns the default theme with the configured overrides.
func (c *Config) BuildTheme() (*style.Theme, error) {
	t := style.DefaultTheme()
	for _, name := range sortedKeys(c.Theme) {
		cc := c.Theme[name]
		if err := t.Override(name, cc.FG, cc.BG); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// themeWith applies a single override to a fresh theme.
func (c *Config) themeWith(name string) (*style.Theme, error) {
	t := style.DefaultTheme()
	cc := c.Theme[name]
	return t, t.Override(name, cc.FG, cc.BG)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
