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
//go:build darwin && amd64

package cmd

import (
	"github.com/cockroachdb/errors"

	hv "github.com/blacktop/go-hv"
	"github.com/blacktop/go-hv/sys"
)

func hostCaps() (caps []capability, err error) {
	if err := hv.Check(sys.VmCreate(sys.HV_VM_DEFAULT)); err != nil {
		return nil, errors.Wrap(err, "hv_vm_create")
	}
	defer func() {
		if derr := hv.Check(sys.VmDestroy()); derr != nil && err == nil {
			err = errors.Wrap(derr, "hv_vm_destroy")
		}
	}()

	for _, c := range []struct {
		name string
		cap  sys.Capability
	}{
		{"max vCPUs", sys.HV_CAP_VCPUMAX},
		{"max address spaces", sys.HV_CAP_ADDRSPACEMAX},
	} {
		val, ret := sys.GetCapability(c.cap)
		if err := hv.Check(ret); err != nil {
			return nil, errors.Wrapf(err, "hv_capability(%s)", c.name)
		}
		caps = append(caps, capability{Name: c.name, Value: val})
	}

	for _, c := range []struct {
		name string
		cap  sys.VmxCapability
	}{
		{"vmx pin-based", sys.HV_VMX_CAP_PINBASED},
		{"vmx proc-based", sys.HV_VMX_CAP_PROCBASED},
		{"vmx proc-based2", sys.HV_VMX_CAP_PROCBASED2},
		{"vmx entry", sys.HV_VMX_CAP_ENTRY},
		{"vmx exit", sys.HV_VMX_CAP_EXIT},
		{"vmx preemption timer", sys.HV_VMX_CAP_PREEMPTION_TIMER},
	} {
		val, ret := sys.VmxReadCapability(c.cap)
		if err := hv.Check(ret); err != nil {
			return nil, errors.Wrapf(err, "hv_vmx_read_capability(%s)", c.name)
		}
		caps = append(caps, capability{Name: c.name, Value: val, Hex: true})
	}
	return caps, nil
}
