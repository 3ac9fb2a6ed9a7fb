package header

import (
	"os"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hv "github.com/blacktop/go-hv"
)

func openStub(t *testing.T, name string) *Stub {
	t.Helper()
	f, err := os.Open(testdataDir(t, name))
	require.NoError(t, err)
	defer f.Close()
	stub, err := ParseStub(f)
	require.NoError(t, err)
	return stub
}

func TestParseStubV4(t *testing.T) {
	stub := openStub(t, "Hypervisor.tbd")
	assert.Equal(t, "/System/Library/Frameworks/Hypervisor.framework/Versions/A/Hypervisor", stub.InstallName)
	assert.Equal(t, []string{"x86_64", "arm64"}, stub.Targets)
	assert.Equal(t, []string{"hv_vcpu_run", "hv_vm_create", "hv_vm_destroy"}, stub.Exported(hv.ArchARM64))
	assert.Equal(t, []string{
		"hv_vcpu_create",
		"hv_vcpu_run",
		"hv_vm_create",
		"hv_vm_destroy",
		"hv_vmx_vcpu_read_vmcs",
		"hv_vmx_vcpu_write_vmcs",
	}, stub.Exported(hv.ArchAMD64))
}

func TestParseStubV3(t *testing.T) {
	stub := openStub(t, "Hypervisor-v3.tbd")
	assert.Equal(t, []string{"x86_64"}, stub.Targets)
	assert.Equal(t, []string{"hv_vcpu_create", "hv_vcpu_run", "hv_vm_create", "hv_vm_destroy"}, stub.Exported(hv.ArchAMD64))
	assert.Empty(t, stub.Exported(hv.ArchARM64))
}

func TestParseStubErrors(t *testing.T) {
	_, err := ParseStub(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ParseStub(strings.NewReader("--- !tapi-tbd\nexports: [ {\n"))
	assert.Error(t, err)
}

func TestSkew(t *testing.T) {
	stub := openStub(t, "Hypervisor.tbd")

	missing, err := Skew(Symbols{Functions: []string{"hv_vcpu_run", "hv_vm_create"}}, stub, hv.ArchARM64)
	require.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = Skew(Symbols{Functions: []string{"hv_vm_create", "hv_vm_get_max_vcpu_count"}}, stub, hv.ArchARM64)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionSkew))
	assert.Equal(t, []string{"hv_vm_get_max_vcpu_count"}, missing)

	v3 := openStub(t, "Hypervisor-v3.tbd")
	_, err = Skew(Symbols{Functions: []string{"hv_vm_create"}}, v3, hv.ArchARM64)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArchUnsupported))
}
