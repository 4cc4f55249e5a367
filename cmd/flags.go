package cmd

import (
	"github.com/gnames/dsconf/pkg/config"
	"github.com/gnames/dsconf/pkg/version"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command) []config.Option

// logFlags converts persistent log flags to options.
func logFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := []struct {
		name string
		opt  func(string) config.Option
	}{
		{"log-level", config.OptLogLevel},
		{"log-format", config.OptLogFormat},
	}
	for _, v := range flags {
		if !cmd.Flags().Changed(v.name) {
			continue
		}
		s, _ := cmd.Flags().GetString(v.name)
		res = append(res, v.opt(s))
	}
	return res
}

// fromFlag reads the --from flag. An empty value means the version
// is detected from the document.
func fromFlag(cmd *cobra.Command) []config.Option {
	s, _ := cmd.Flags().GetString("from")
	if s == "" {
		return nil
	}
	return []config.Option{config.OptMigrateSourceVersion(s)}
}

// sourceVersion returns the version forced by --from, ok is false when
// the flag is absent.
func sourceVersion(cmd *cobra.Command) (version.Version, bool, error) {
	s, _ := cmd.Flags().GetString("from")
	if s == "" {
		return version.Unknown, false, nil
	}
	v, err := version.Parse(s)
	if err != nil {
		return version.Unknown, false, err
	}
	return v, true, nil
}

func applyFlags(cmd *cobra.Command, fns ...funcFlag) {
	var res []config.Option
	for _, fn := range fns {
		res = append(res, fn(cmd)...)
	}
	cfg.Update(res)
}
