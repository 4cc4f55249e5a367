package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptMigrateTargetVersion sets the schema version documents are migrated
// to. The value is normalized, so "v1.5.4" and "154" become "1.5.4".
func OptMigrateTargetVersion(s string) Option {
	return func(c *Config) {
		if v, ok := isValidVersion("Migrate.TargetVersion", s); ok {
			c.Migrate.TargetVersion = v
		}
	}
}

// OptMigrateSourceVersion forces the schema version of input documents.
// Runtime-only field - not in ToOptions().
func OptMigrateSourceVersion(s string) Option {
	return func(c *Config) {
		if v, ok := isValidVersion("Migrate.SourceVersion", s); ok {
			c.Migrate.SourceVersion = v
		}
	}
}

// OptMigrateReportPath sets the file for the batch migration report.
// Runtime-only field - not in ToOptions().
func OptMigrateReportPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report Path", s) {
			c.Migrate.ReportPath = s
		}
	}
}

// OptOutputIndent sets the number of spaces for XML pretty-printing.
func OptOutputIndent(i int) Option {
	return func(c *Config) {
		if isValidInt("Output Indent", i) {
			c.Output.Indent = i
		}
	}
}

// OptOutputFormat sets the format of model dumps.
// Valid values: "yaml", "json".
func OptOutputFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Format", s) {
			c.Output.Format = s
		}
	}
}

// OptOutputDir sets the directory for migrated documents.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.OutputDir = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for batch migration.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
