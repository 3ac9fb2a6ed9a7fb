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
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/blacktop/go-hv/header"
)

func init() {
	addArchFlag(skewCmd)
	skewCmd.Flags().String("tbd", "", "text stub to compare against (default: Hypervisor.tbd in the SDK)")
	rootCmd.AddCommand(skewCmd)
}

var skewCmd = &cobra.Command{
	Use:   "skew",
	Short: "Find header functions the framework does not export",
	Long: `skew compares the hv_* functions declared by the dispatched headers with the
symbols Hypervisor.framework exports for the target, as listed by the SDK's
text stub. Any declared but unexported function is reported and the command
exits non-zero.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		arch := targetArch(cmd)
		opts := headerOptions(cmd.Context(), arch)

		tbd, _ := cmd.Flags().GetString("tbd")
		if tbd == "" {
			if opts.SDKPath == "" {
				return errors.WithHint(errors.New("no SDK to read Hypervisor.tbd from"), "pass --sdk or --tbd")
			}
			tbd = header.StubPath(opts.SDKPath)
		}
		f, err := os.Open(tbd)
		if err != nil {
			return errors.Wrap(err, "failed to open text stub")
		}
		defer f.Close()
		stub, err := header.ParseStub(f)
		if err != nil {
			return errors.Wrapf(err, "failed to parse %s", tbd)
		}

		syms, err := collectSymbols(cmd.Context(), opts)
		if err != nil {
			return err
		}
		missing, err := header.Skew(syms, stub, arch)
		out := cmd.OutOrStdout()
		for _, fn := range missing {
			fmt.Fprintf(out, "missing: %s\n", fn)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d functions declared for %s, all exported\n", len(syms.Functions), arch)
		return nil
	},
}
