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
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blacktop/go-hv/header"
)

func init() {
	addArchFlag(symbolsCmd)
	symbolsCmd.Flags().Bool("json", false, "print as JSON")
	rootCmd.AddCommand(symbolsCmd)
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the functions and constants a binding generator would emit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		syms, err := collectSymbols(cmd.Context(), headerOptions(cmd.Context(), targetArch(cmd)))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string][]string{
				"functions": syms.Functions,
				"macros":    syms.Macros,
			})
		}
		fmt.Fprintf(out, "functions (%d):\n", len(syms.Functions))
		for _, fn := range syms.Functions {
			fmt.Fprintf(out, "  %s\n", fn)
		}
		fmt.Fprintf(out, "macros (%d):\n", len(syms.Macros))
		for _, m := range syms.Macros {
			fmt.Fprintf(out, "  %s\n", m)
		}
		return nil
	},
}

func collectSymbols(ctx context.Context, opts header.Options) (header.Symbols, error) {
	u, err := header.Preprocess(ctx, opts)
	if err != nil {
		return header.Symbols{}, err
	}
	if err := header.RequireFramework(u); err != nil {
		return header.Symbols{}, err
	}
	macros, err := header.Macros(ctx, opts)
	if err != nil {
		return header.Symbols{}, err
	}
	return header.ExtractSymbols(u, macros, header.DefaultAllowlist), nil
}

