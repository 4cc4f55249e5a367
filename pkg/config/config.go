// Package config provides configuration management for dsconf.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Migrate: target_version
//   - Output: indent, format
//   - Log: level, format, destination
//   - General: jobs_number, output_dir
//
// Runtime-only fields (CLI flags only):
//   - Migrate.SourceVersion, Migrate.ReportPath (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use DSCONF_ prefix with underscores for nesting:
//
//	DSCONF_MIGRATE_TARGET_VERSION=1.5.7
//	DSCONF_OUTPUT_INDENT=4
//	DSCONF_LOG_LEVEL=info
//	DSCONF_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete dsconf configuration.
type Config struct {
	// Migrate contains settings of the migrate command.
	Migrate MigrateConfig `mapstructure:"migrate" yaml:"migrate"`

	// Output determines how documents and models are printed.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// OutputDir is where migrated documents are saved. When empty,
	// documents are saved next to their sources.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// JobsNumber is the number of concurrent workers for batch migration.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// MigrateConfig contains settings of the migrate command.
type MigrateConfig struct {
	// TargetVersion is the schema version documents are migrated to,
	// for example "1.5.7".
	TargetVersion string `mapstructure:"target_version" yaml:"target_version"`

	// SourceVersion forces the version of input documents. When empty,
	// the version is detected from each document.
	SourceVersion string `mapstructure:"source_version" yaml:"source_version,omitempty"`

	// ReportPath is a file where the YAML report of a batch migration
	// is saved. Empty means no report.
	ReportPath string `mapstructure:"report_path" yaml:"report_path,omitempty"`
}

// OutputConfig contains printing settings.
type OutputConfig struct {
	// Indent is the number of spaces used to pretty-print XML.
	Indent int `mapstructure:"indent" yaml:"indent"`

	// Format of model dumps, 'yaml' or 'json'.
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Migrate: MigrateConfig{
			TargetVersion: "1.5.7",
		},
		Output: OutputConfig{
			Indent: 2,
			Format: "yaml",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
