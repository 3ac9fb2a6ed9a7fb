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
	"runtime"
	"slices"
	"strings"

	"github.com/blacktop/go-macho"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	hv "github.com/blacktop/go-hv"
	"github.com/blacktop/go-hv/header"
)

const hypervisorEntitlement = "com.apple.security.hypervisor"

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check Hypervisor.framework support, entitlement and header status",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		ok, err := hv.Supported()
		if err != nil {
			fmt.Fprintf(out, "hv support: error: %v\n", err)
		} else {
			fmt.Fprintf(out, "hv support: %v\n", ok)
		}

		exe, _ := os.Executable()
		if exe != "" {
			ents, err := entitlements(exe)
			if err != nil {
				fmt.Fprintf(out, "entitlements: unknown (%v)\n", err)
			} else {
				fmt.Fprintf(out, "entitlements: hypervisor=%v\n", strings.Contains(ents, hypervisorEntitlement))
			}
		} else {
			fmt.Fprintln(out, "entitlements: unknown (executable path not found)")
		}

		arch := hv.HostArch()
		opts := headerOptions(cmd.Context(), arch)
		if runtime.GOOS == "darwin" {
			fmt.Fprintf(out, "sdk: %s\n", orNone(opts.SDKPath))
		}

		u, err := header.Preprocess(cmd.Context(), opts)
		switch {
		case err != nil:
			fmt.Fprintf(out, "headers: error: %v\n", err)
			for _, hint := range errors.GetAllHints(err) {
				fmt.Fprintf(out, "  hint: %s\n", hint)
			}
		case !slices.Equal(u.Framework, hv.Select(arch).Headers):
			fmt.Fprintf(out, "headers: unexpected %v for %s\n", u.Framework, arch)
		default:
			fmt.Fprintf(out, "headers: %s -> %s\n", arch, orNone(strings.Join(u.Framework, " ")))
		}

		return nil
	},
}

// entitlements returns the entitlements plist embedded in the code signature
// of the Mach-O at path. For universal binaries the slice matching the host
// is used.
func entitlements(path string) (string, error) {
	var m *macho.File
	fat, err := macho.OpenFat(path)
	switch {
	case err == nil:
		defer fat.Close()
		for _, a := range fat.Arches {
			if hv.ParseArch(a.CPU.String()) == hv.HostArch() || m == nil {
				m = a.File
			}
		}
	case errors.Is(err, macho.ErrNotFat):
		m, err = macho.Open(path)
		if err != nil {
			return "", errors.Wrap(err, "failed to open Mach-O")
		}
		defer m.Close()
	default:
		return "", errors.Wrap(err, "failed to open Mach-O")
	}
	if m == nil {
		return "", errors.New("no Mach-O slices")
	}

	cs := m.CodeSignature()
	if cs == nil {
		return "", errors.New("not code signed")
	}
	return cs.Entitlements, nil
}
