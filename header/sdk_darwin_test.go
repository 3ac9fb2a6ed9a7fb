//go:build darwin

package header

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hv "github.com/blacktop/go-hv"
)

func requireSDK(t *testing.T) string {
	t.Helper()
	sdk, err := SDKPath(context.Background())
	if err != nil {
		t.Skipf("no macOS SDK: %v", err)
	}
	return sdk
}

func TestSDKDispatch(t *testing.T) {
	requireCC(t)
	sdk := requireSDK(t)
	ctx := context.Background()

	for _, arch := range hv.Arches() {
		t.Run(arch.String(), func(t *testing.T) {
			opts := Options{Arch: arch, SDKPath: sdk}
			u, err := Preprocess(ctx, opts)
			require.NoError(t, err)
			assert.Equal(t, hv.Select(arch).Headers, u.Framework)
			require.NoError(t, RequireFramework(u))
			require.NoError(t, Compile(ctx, opts, IncludeDispatcher, IncludeDispatcher))
		})
	}
}

func TestSDKCompleteness(t *testing.T) {
	requireCC(t)
	sdk := requireSDK(t)
	ctx := context.Background()

	// hv_vm_config_t only exists in the Apple silicon umbrella header.
	require.NoError(t, Compile(ctx, Options{Arch: hv.ArchARM64, SDKPath: sdk},
		IncludeDispatcher,
		"hv_return_t probe_create(hv_vm_config_t config);",
	))
	require.NoError(t, Compile(ctx, Options{Arch: hv.ArchAMD64, SDKPath: sdk},
		IncludeDispatcher,
		"static hv_vm_space_t probe_space;",
		"static const unsigned int probe_field = VMCS_GUEST_RIP;",
	))
}

func TestSDKStub(t *testing.T) {
	sdk := requireSDK(t)
	f, err := os.Open(StubPath(sdk))
	if err != nil {
		t.Skipf("SDK has no Hypervisor.tbd: %v", err)
	}
	defer f.Close()

	stub, err := ParseStub(f)
	require.NoError(t, err)
	assert.Contains(t, stub.Exported(hv.ArchARM64), "hv_vm_create")
	assert.Contains(t, stub.Exported(hv.ArchAMD64), "hv_vmx_vcpu_read_vmcs")
}
