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

	"github.com/dustin/go-humanize"
	"github.com/gnames/dsconf/internal/iofs"
	"github.com/gnames/dsconf/pkg/contenttype"
	"github.com/gnames/dsconf/pkg/serverxml"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getCheckCmd returns the check command.
func getCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Detect and check server.xml versions",
		Long: `Check detects the schema version of every file and verifies that
the file passes the structural check of that version and can be parsed.

The command exits with an error if any file is not recognized.

Examples:
  dsconf check server.xml
  dsconf check conf/*.xml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCheck(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return checkCmd
}

func runCheck(cmd *cobra.Command, paths []string) error {
	var firstErr error
	out := cmd.OutOrStdout()
	for _, path := range paths {
		status, err := checkFile(path)
		if err != nil {
			slog.Warn("Check failed", "path", path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
		fmt.Fprintf(out, "%s\t%s\n", path, status)
	}
	return firstErr
}

func checkFile(path string) (string, error) {
	data, err := iofs.ReadDocument(path)
	if err != nil {
		return "unreadable", err
	}

	dialect := "xbean"
	if contenttype.IsValid(data) {
		dialect = "spring beans"
	}

	v, err := serverxml.Detect(data)
	if err != nil {
		return "unknown", err
	}

	sio, err := serverxml.New(v)
	if err != nil {
		return "unknown", err
	}
	if !sio.IsValid(data) {
		err = serverxml.UndetectedVersionError()
		return "invalid " + v.String(), err
	}
	if _, err = sio.Parse(data); err != nil {
		return "broken " + v.String(), err
	}

	res := fmt.Sprintf("%s (%s, %s)", v.String(), dialect,
		humanize.Bytes(uint64(len(data))))
	return res, nil
}
