package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// fileView is the TOML layout of a Config.
type fileView struct {
	File      string               `toml:"file"`
	Transient bool                 `toml:"transient"`
	Language  string               `toml:"language"`
	Log       logView              `toml:"log"`
	Run       runView              `toml:"run"`
	Theme     map[string]colorView `toml:"theme,omitempty"`
}

type logView struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

type runView struct {
	Timeout       string `toml:"timeout"`
	MaxOutput     int    `toml:"max_output"`
	CallStackSize int    `toml:"call_stack_size"`
}

type colorView struct {
	FG string `toml:"fg,omitempty"`
	BG string `toml:"bg,omitempty"`
}

// TOML renders the configuration as a config file.
func (c *Config) TOML() ([]byte, error) {
	view := fileView{
		File:      c.File,
		Transient: c.Transient,
		Language:  c.Language,
		Log: logView{
			Level:      c.Log.Level,
			File:       c.Log.File,
			MaxSizeMB:  c.Log.MaxSizeMB,
			MaxBackups: c.Log.MaxBackups,
			MaxAgeDays: c.Log.MaxAgeDays,
			Compress:   c.Log.Compress,
		},
		Run: runView{
			Timeout:       c.Run.Timeout.String(),
			MaxOutput:     c.Run.MaxOutput,
			CallStackSize: c.Run.CallStackSize,
		},
	}
	if len(c.Theme) > 0 {
		view.Theme = make(map[string]colorView, len(c.Theme))
		for name, cc := range c.Theme {
			view.Theme[name] = colorView{FG: cc.FG, BG: cc.BG}
		}
	}

	out, err := toml.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
