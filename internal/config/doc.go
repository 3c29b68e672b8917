// Package config loads quill's configuration.
//
// Settings are merged from lowest to highest priority:
//
//	1. Built-in defaults
//	2. The TOML config file ($XDG_CONFIG_HOME/quill/config.toml)
//	3. QUILL_* environment variables (QUILL_LOG_LEVEL for log.level)
//	4. Command line flags
//
// A config file named explicitly must exist; the default one is optional.
//
// Example file:
//
//	file = "hello.lua"
//
//	[log]
//	level = "debug"
//
//	[run]
//	timeout = "500ms"
//
//	[theme.editor_selection]
//	bg = "#3a3a5a"
package config
