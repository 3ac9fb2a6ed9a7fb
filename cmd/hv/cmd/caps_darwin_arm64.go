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
//go:build darwin && arm64

package cmd

import (
	"github.com/cockroachdb/errors"

	hv "github.com/blacktop/go-hv"
	"github.com/blacktop/go-hv/sys"
)

func hostCaps() ([]capability, error) {
	n, ret := sys.VmGetMaxVcpuCount()
	if err := hv.Check(ret); err != nil {
		return nil, errors.WithHint(errors.Wrap(err, "hv_vm_get_max_vcpu_count"),
			"requires macOS 13 or later")
	}
	return []capability{{Name: "max vCPUs", Value: uint64(n)}}, nil
}
