/*
Copyright © 2025 blacktop

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
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	hv "github.com/blacktop/go-hv"
	"github.com/blacktop/go-hv/header"
)

func init() {
	addArchFlag(headersCmd)
	headersCmd.Flags().Bool("source", false, "print the preprocessed translation unit")
	headersCmd.Flags().Bool("require", false, "fail when the target pulls in no framework header")
	rootCmd.AddCommand(headersCmd)
}

var headersCmd = &cobra.Command{
	Use:   "headers",
	Short: "Show which framework headers the dispatcher includes for a target",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		arch := targetArch(cmd)
		opts := headerOptions(cmd.Context(), arch)

		u, err := header.Preprocess(cmd.Context(), opts)
		if err != nil {
			return err
		}

		sel := hv.Select(arch)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "arch:      %s\n", arch)
		fmt.Fprintf(out, "predicate: %s\n", orNone(sel.Predicate))
		fmt.Fprintf(out, "expected:  %s\n", orNone(strings.Join(sel.Headers, " ")))
		fmt.Fprintf(out, "included:  %s\n", orNone(strings.Join(u.Framework, " ")))

		if source, _ := cmd.Flags().GetBool("source"); source {
			fmt.Fprintln(out)
			fmt.Fprint(out, u.Source)
		}
		if require, _ := cmd.Flags().GetBool("require"); require {
			if err := header.RequireFramework(u); err != nil {
				return err
			}
		}
		if !slices.Equal(sel.Headers, u.Framework) {
			return errors.Newf("dispatcher included %v for %s, want %v", u.Framework, arch, sel.Headers)
		}
		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
