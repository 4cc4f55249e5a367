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
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/dsconf/internal/iobatch"
	"github.com/gnames/dsconf/pkg/config"
	"github.com/gnames/dsconf/pkg/version"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getMigrateCmd returns the migrate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate FILE...",
		Short: "Migrate server.xml files to a newer schema version",
		Long: `Migrate converts server.xml files to a newer schema version.

For every file this command:
  1. Detects its version (or uses --from)
  2. Parses it into the configuration model
  3. Applies migration steps one version at a time
  4. Writes the document of the target version

Migrated files get the target version in their names, for example
server.xml becomes server-1.5.7.xml. Files are saved next to their
sources unless --out-dir is given.

Several files are migrated concurrently. Failures of single files do
not stop the batch, they are listed in the report.

Examples:
  dsconf migrate server.xml
  dsconf migrate conf/*.xml --to 1.5.4 --out-dir migrated --report report.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runMigrate(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	migrateCmd.Flags().StringP("from", "f", "",
		"version of input files (detected if empty)")
	migrateCmd.Flags().StringP("to", "t", "",
		"target version (default from config, 1.5.7)")
	migrateCmd.Flags().StringP("out-dir", "o", "",
		"directory for migrated files")
	migrateCmd.Flags().StringP("report", "r", "",
		"save YAML report to a file")
	migrateCmd.Flags().IntP("jobs", "j", 0,
		"number of concurrent migrations")
	migrateCmd.Flags().Bool("no-progress", false,
		"do not show progress bar")

	return migrateCmd
}

func runMigrate(cmd *cobra.Command, paths []string) error {
	// options ignore unknown versions, flags have to fail instead
	for _, name := range []string{"from", "to"} {
		if s, _ := cmd.Flags().GetString(name); s != "" {
			if _, err := version.Parse(s); err != nil {
				return err
			}
		}
	}
	applyFlags(cmd, fromFlag, migrateFlags)

	noProgress, _ := cmd.Flags().GetBool("no-progress")
	b, err := iobatch.New(cfg, iobatch.OptProgress(!noProgress && len(paths) > 1))
	if err != nil {
		return err
	}

	rep, err := b.Run(context.Background(), paths)
	if err != nil {
		return err
	}

	for _, r := range rep.Results {
		if r.Error != "" {
			gn.Warn("<em>%s</em>: %s", r.Path, r.Error)
			continue
		}
		gn.Info("%s → <em>%s</em> (%s)", r.Path, r.Output, r.Size)
	}

	if cfg.Migrate.ReportPath != "" {
		if err = iobatch.WriteReport(cfg.Migrate.ReportPath, rep); err != nil {
			return err
		}
		gn.Info("Report is saved to <em>%s</em>", cfg.Migrate.ReportPath)
	}

	gn.Info("Migrated %s of %s files to <em>%s</em> in %s",
		humanize.Comma(int64(rep.Total-rep.Failed)),
		humanize.Comma(int64(rep.Total)),
		rep.Target, rep.Duration,
	)

	if rep.Failed > 0 {
		return iobatch.BatchFailedError(rep.Failed, rep.Total)
	}
	return nil
}

func migrateFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if s, _ := cmd.Flags().GetString("to"); s != "" {
		res = append(res, config.OptMigrateTargetVersion(s))
	}
	if s, _ := cmd.Flags().GetString("out-dir"); s != "" {
		res = append(res, config.OptOutputDir(s))
	}
	if s, _ := cmd.Flags().GetString("report"); s != "" {
		res = append(res, config.OptMigrateReportPath(s))
	}
	if i, _ := cmd.Flags().GetInt("jobs"); i > 0 {
		res = append(res, config.OptJobsNumber(i))
	}
	return res
}
