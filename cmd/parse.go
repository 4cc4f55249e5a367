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
	"github.com/gnames/dsconf/internal/iofs"
	"github.com/gnames/dsconf/pkg/config"
	"github.com/gnames/dsconf/pkg/model"
	"github.com/gnames/dsconf/pkg/serverxml"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getParseCmd returns the parse command.
func getParseCmd() *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the configuration model of a server.xml file",
		Long: `Parse reads a server.xml file and prints its configuration model
as YAML or JSON.

The version of the file is detected unless --from is given. Versions
1.5.5 and 1.5.6 are never detected and have to be set explicitly.

Examples:
  dsconf parse server.xml
  dsconf parse server.xml --from 1.5.5 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runParse(cmd, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	parseCmd.Flags().StringP("from", "f", "",
		"version of the file (detected if empty)")
	parseCmd.Flags().StringP("format", "t", "",
		"output format (yaml, json)")

	return parseCmd
}

func runParse(cmd *cobra.Command, path string) error {
	applyFlags(cmd, formatFlag)

	data, err := iofs.ReadDocument(path)
	if err != nil {
		return err
	}

	v, ok, err := sourceVersion(cmd)
	if err != nil {
		return err
	}
	if !ok {
		if v, err = serverxml.Detect(data); err != nil {
			return err
		}
	}

	sc, err := serverxml.Parse(v, data)
	if err != nil {
		return err
	}

	out, err := dumpModel(sc, cfg.Output.Format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func formatFlag(cmd *cobra.Command) []config.Option {
	s, _ := cmd.Flags().GetString("format")
	if s == "" {
		return nil
	}
	return []config.Option{config.OptOutputFormat(s)}
}

func dumpModel(sc *model.ServerConfiguration, format string) ([]byte, error) {
	if format == "json" {
		enc := gnfmt.GNjson{Pretty: true}
		res, err := enc.Encode(sc)
		if err != nil {
			return nil, err
		}
		return append(res, '\n'), nil
	}
	return yaml.Marshal(sc)
}
