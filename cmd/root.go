/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/dsconf/internal/ioconfig"
	"github.com/gnames/dsconf/internal/iofs"
	"github.com/gnames/dsconf/internal/iologger"
	app "github.com/gnames/dsconf/pkg"
	"github.com/gnames/dsconf/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "dsconf",
		Short:   "Reads, checks and migrates ApacheDS server.xml files",
		Long: `dsconf works with server.xml configuration files of ApacheDS
1.5.0 to 1.5.7. It detects the schema version of a file, checks it,
prints its configuration model and migrates it to a newer version.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (DSCONF_*)
  3. Config file (~/.config/dsconf/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (log.level → DSCONF_LOG_LEVEL).

    DSCONF_MIGRATE_TARGET_VERSION   Target schema version
    DSCONF_OUTPUT_INDENT            XML indentation
    DSCONF_OUTPUT_FORMAT            Model dump format (yaml/json)
    DSCONF_OUTPUT_DIR               Directory for migrated files
    DSCONF_LOG_LEVEL                Log level (debug/info/warn/error)
    DSCONF_LOG_FORMAT               Log format (json/text/tint)
    DSCONF_LOG_DESTINATION          Log destination (file/stderr/stdout)
    DSCONF_JOBS_NUMBER              Concurrent migrations`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "dsconf version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for dsconf")
	rootCmd.Flags().Bool("show-config", false,
		"print effective configuration and exit")

	rootCmd.PersistentFlags().String("log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "",
		"log format (json, text, tint)")

	rootCmd.AddCommand(
		getVersionsCmd(),
		getCheckCmd(),
		getParseCmd(),
		getMigrateCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	res, err := ioconfig.Load(homeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = res.Config.ToOptions()
	opts = append(opts, logFlags(cmd)...)
	opts = append(opts, config.OptHomeDir(homeDir))
	cfg.Update(opts)

	logDir := config.LogDir(cfg.HomeDir)
	if err = iologger.Init(logDir, cfg.Log, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", res.SourcePath,
		"source", res.Source,
	)

	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if show, _ := cmd.Flags().GetBool("show-config"); show {
		out, err := ioconfig.Dump(cfg)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
