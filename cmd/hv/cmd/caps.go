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

	"github.com/spf13/cobra"
)

// capability is one line of caps output.
type capability struct {
	Name  string
	Value uint64
	Hex   bool
}

func init() {
	rootCmd.AddCommand(capsCmd)
}

var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Query the host's hypervisor capabilities through the framework",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		caps, err := hostCaps()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, c := range caps {
			if c.Hex {
				fmt.Fprintf(out, "%-22s %#016x\n", c.Name+":", c.Value)
			} else {
				fmt.Fprintf(out, "%-22s %d\n", c.Name+":", c.Value)
			}
		}
		return nil
	},
}
