// Package ioconfig loads dsconf configuration from config.yaml and
// DSCONF_* environment variables.
package ioconfig

import (
	"os"
	"strings"

	"github.com/gnames/dsconf/internal/iofs"
	"github.com/gnames/dsconf/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by dsconf.
const EnvPrefix = "DSCONF"

// LoadResult contains the loaded configuration and metadata about the source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used
	Source     string // "file" or "file+env"
}

// Load reads config.yaml from the home directory and overlays environment
// variables. The returned Config contains only values from these sources,
// callers apply it to config.New() through ToOptions().
func Load(homeDir string) (*LoadResult, error) {
	var err error
	cfgPath := config.ConfigFilePath(homeDir)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var cfg config.Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	source := "file"
	if hasEnvVars() {
		source = "file+env"
	}

	res := LoadResult{
		Config:     &cfg,
		SourcePath: v.ConfigFileUsed(),
		Source:     source,
	}
	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Env variables are bound manually to keep the list of allowed
	// variables visible. They match the fields of config.ToOptions().
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("migrate.target_version", "MIGRATE_TARGET_VERSION")

	v.BindEnv("output.indent", "OUTPUT_INDENT")
	v.BindEnv("output.format", "OUTPUT_FORMAT")
	v.BindEnv("output_dir", "OUTPUT_DIR")

	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	v.BindEnv("jobs_number", "JOBS_NUMBER")

	v.AutomaticEnv()
}

// hasEnvVars checks if any DSCONF_* environment variables are set.
func hasEnvVars() bool {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvPrefix+"_") {
			return true
		}
	}
	return false
}
