//go:build darwin && amd64 && hypervisor

package sys

import (
	"os"
	"runtime"
	"testing"
)

func isCI() bool {
	return os.Getenv("CI") == "true" || os.Getenv("GITHUB_ACTIONS") == "true"
}

func createVM(t *testing.T) {
	t.Helper()
	if isCI() {
		t.Skip("Skipping hypervisor tests in CI environment")
	}
	switch ret := VmCreate(HV_VM_DEFAULT); ret {
	case HV_SUCCESS:
	case HV_DENIED:
		t.Skip("Skipping: missing hypervisor entitlements")
	case HV_NO_DEVICE, HV_UNSUPPORTED:
		t.Skip("Skipping: VMX unavailable")
	default:
		t.Fatalf("hv_vm_create() = 0x%08x", uint32(ret))
	}
	t.Cleanup(func() {
		if ret := VmDestroy(); !ret.OK() {
			t.Errorf("hv_vm_destroy() = 0x%08x", uint32(ret))
		}
	})
}

func TestCapabilities(t *testing.T) {
	createVM(t)

	n, ret := GetCapability(HV_CAP_VCPUMAX)
	if !ret.OK() || n == 0 {
		t.Errorf("hv_capability(VCPUMAX) = %d, 0x%08x", n, uint32(ret))
	}
	for _, c := range []VmxCapability{HV_VMX_CAP_PINBASED, HV_VMX_CAP_PROCBASED, HV_VMX_CAP_ENTRY, HV_VMX_CAP_EXIT} {
		if _, ret := VmxReadCapability(c); !ret.OK() {
			t.Errorf("hv_vmx_read_capability(%d) = 0x%08x", c, uint32(ret))
		}
	}
}

func TestVcpuState(t *testing.T) {
	createVM(t)

	// vCPUs are bound to the creating thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	vcpu, ret := VcpuCreate()
	if !ret.OK() {
		t.Fatalf("hv_vcpu_create() = 0x%08x", uint32(ret))
	}
	defer VcpuDestroy(vcpu)

	if ret := VcpuWriteRegister(vcpu, HV_X86_RAX, 0x1234); !ret.OK() {
		t.Fatalf("hv_vcpu_write_register() = 0x%08x", uint32(ret))
	}
	if v, ret := VcpuReadRegister(vcpu, HV_X86_RAX); !ret.OK() || v != 0x1234 {
		t.Errorf("hv_vcpu_read_register(RAX) = %#x, 0x%08x", v, uint32(ret))
	}

	if ret := VmxVcpuWriteVmcs(vcpu, VMCS_GUEST_RIP, 0x1000); !ret.OK() {
		t.Fatalf("hv_vmx_vcpu_write_vmcs() = 0x%08x", uint32(ret))
	}
	if v, ret := VmxVcpuReadVmcs(vcpu, VMCS_GUEST_RIP); !ret.OK() || v != 0x1000 {
		t.Errorf("hv_vmx_vcpu_read_vmcs(GUEST_RIP) = %#x, 0x%08x", v, uint32(ret))
	}

	if ret := VcpuReadFpstate(vcpu, nil); ret != HV_BAD_ARGUMENT {
		t.Errorf("hv_vcpu_read_fpstate(nil) = 0x%08x, want HV_BAD_ARGUMENT", uint32(ret))
	}
}
