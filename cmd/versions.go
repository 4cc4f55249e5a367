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

	"github.com/gnames/dsconf/pkg/serverxml"
	"github.com/gnames/dsconf/pkg/version"
	"github.com/spf13/cobra"
)

// getVersionsCmd returns the versions command.
func getVersionsCmd() *cobra.Command {
	versionsCmd := &cobra.Command{
		Use:   "versions",
		Short: "List known server.xml schema versions",
		Long: `List schema versions of server.xml known to dsconf, from the
oldest to the latest, with the directions each of them supports.

Versions 1.5.5 and 1.5.6 read documents in the 1.5.4 format and
cannot be written.

Examples:
  dsconf versions`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runVersions(cmd)
			return nil
		},
	}
	return versionsCmd
}

func runVersions(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %-16s %-6s %s\n", "VERSION", "LABEL", "READ", "WRITE")
	for _, v := range version.All() {
		fmt.Fprintf(out, "%-8s %-16s %-6s %s\n",
			v.String(), v.Label(), "yes", yesNo(serverxml.CanWrite(v)))
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
