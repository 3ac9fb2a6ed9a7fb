package header

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hv "github.com/blacktop/go-hv"
)

func TestExtractSymbols(t *testing.T) {
	u := &Unit{Source: `typedef unsigned int hv_return_t;
typedef hv_return_t (*hv_cb_t)(void);
hv_return_t hv_vm_create(unsigned long long flags);
hv_return_t hv_vcpu_run (unsigned int vcpu);
hv_return_t hv_vm_create(unsigned long long flags);
int helper(void);
`}
	macros := []string{"HV_SUCCESS", "__HYPERVISOR_HV_H", "HV_VMX_H", "VMCS_GUEST_RIP", "IRQ_INFO_VALID", "VMX_REASON_HLT", "TARGET_OS_OSX"}

	syms := ExtractSymbols(u, macros, DefaultAllowlist)
	assert.Equal(t, []string{"hv_vcpu_run", "hv_vm_create"}, syms.Functions)
	assert.Equal(t, []string{"HV_SUCCESS", "IRQ_INFO_VALID", "VMCS_GUEST_RIP", "VMX_REASON_HLT"}, syms.Macros)

	custom := Allowlist{Functions: []*regexp.Regexp{regexp.MustCompile(`^hv_vcpu_`)}}
	syms = ExtractSymbols(u, macros, custom)
	assert.Equal(t, []string{"hv_vcpu_run"}, syms.Functions)
	assert.Empty(t, syms.Macros)

	assert.Empty(t, ExtractSymbols(nil, nil, DefaultAllowlist).Functions)
}

func TestExtractSymbolsFromStubs(t *testing.T) {
	requireCC(t)
	ctx := context.Background()
	opts := stubOptions(t, hv.ArchAMD64)

	u, err := Preprocess(ctx, opts)
	require.NoError(t, err)
	macros, err := Macros(ctx, opts)
	require.NoError(t, err)

	syms := ExtractSymbols(u, macros, DefaultAllowlist)
	assert.Equal(t, []string{
		"hv_vcpu_create",
		"hv_vcpu_run",
		"hv_vm_create",
		"hv_vm_destroy",
		"hv_vmx_vcpu_read_vmcs",
		"hv_vmx_vcpu_write_vmcs",
	}, syms.Functions)
	assert.Contains(t, syms.Macros, "HV_VM_DEFAULT")
	assert.Contains(t, syms.Macros, "VMX_REASON_HLT")
	assert.Contains(t, syms.Macros, "IRQ_INFO_VALID")
	assert.NotContains(t, syms.Macros, "__HYPERVISOR_HV_H")
	// enum constants are not macros
	assert.NotContains(t, syms.Macros, "VMCS_GUEST_RIP")
}
