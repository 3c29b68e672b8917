package config

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables.
const EnvPrefix = "QUILL"

// flagKeys maps command line flags to setting keys.
var flagKeys = map[string]string{
	"transient": "transient",
	"language":  "language",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Path names the config file. It must exist when set; when empty the
	// default path is used if present.
	Path string

	// Flags are bound by name; see flagKeys. Unknown flags are ignored.
	Flags *pflag.FlagSet

	// Overrides take precedence over every other source.
	Overrides map[string]any
}

// Load reads the configuration from fsys and the environment and validates
// it.
func Load(fsys afero.Fs, opts LoadOptions) (*Config, error) {
	v := viper.New()
	v.SetFs(fsys)
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	path, explicit := opts.Path, opts.Path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := readFile(v, fsys, path, explicit); err != nil {
			return nil, err
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(v *viper.Viper, fsys afero.Fs, path string, explicit bool) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if !exists {
		if explicit {
			return fmt.Errorf("config file %s: %w", path, ErrFileNotFound)
		}
		return nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("file", d.File)
	v.SetDefault("transient", d.Transient)
	v.SetDefault("language", d.Language)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("run.timeout", d.Run.Timeout)
	v.SetDefault("run.max_output", d.Run.MaxOutput)
	v.SetDefault("run.call_stack_size", d.Run.CallStackSize)
}
