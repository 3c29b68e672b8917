package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dshills/quill/internal/config"
)

// newRootCmd builds the command tree. Configuration and the edited file are
// read from fsys.
func newRootCmd(fsys afero.Fs) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "quill [file]",
		Short: "A small terminal code editor",
		Long: `quill edits a single file in the terminal.

Ctrl+C twice exits and saves. Escape toggles command mode, where s saves
and r runs the buffer as a Lua script.

Settings come from the config file, QUILL_* environment variables and flags,
with flags taking precedence.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, fsys, configPath, args)
			if err != nil {
				return err
			}
			return runEditor(cmd.Context(), cfg, fsys)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	pf.Bool("transient", false, "never save the buffer on exit")
	pf.String("language", "", "highlighting language (default: detected from the file name)")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.String("log-file", "", "log file (default "+config.DefaultLogFile()+")")

	cmd.SetVersionTemplate("quill {{.Version}}\n")
	cmd.AddCommand(
		newConfigCmd(fsys, &configPath),
		newVersionCmd(),
	)
	return cmd
}

// newConfigCmd prints the effective configuration.
func newConfigCmd(fsys afero.Fs, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config [file]",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, fsys, *configPath, args)
			if err != nil {
				return err
			}
			data, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "quill %s\n", version)
			fmt.Fprintf(out, "Commit: %s\n", commit)
			fmt.Fprintf(out, "Built: %s\n", date)
		},
	}
}

// loadConfig merges the config file, environment and flags. A file argument
// overrides the configured file.
func loadConfig(cmd *cobra.Command, fsys afero.Fs, path string, args []string) (*config.Config, error) {
	opts := config.LoadOptions{
		Path:  path,
		Flags: cmd.Flags(),
	}
	if len(args) > 0 {
		opts.Overrides = map[string]any{"file": args[0]}
	}
	cfg, err := config.Load(fsys, opts)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
