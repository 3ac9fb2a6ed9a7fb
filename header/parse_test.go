package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clangOutput = `# 1 "/tmp/hv-probe-1/probe.c"
# 1 "<built-in>" 1
# 1 "<built-in>" 3
# 390 "<built-in>" 3
# 1 "<command line>" 1
# 1 "<built-in>" 2
# 1 "/tmp/hv-probe-1/probe.c" 2
# 1 "/tmp/hv-probe-1/hypervisor.h" 1
# 12 "/tmp/hv-probe-1/hypervisor.h"
# 1 "/sdk/System/Library/Frameworks/Hypervisor.framework/Headers/hv.h" 1 3
# 1 "/sdk/System/Library/Frameworks/Hypervisor.framework/Headers/hv_base.h" 1 3
typedef unsigned int hv_return_t;
# 2 "/sdk/System/Library/Frameworks/Hypervisor.framework/Headers/hv.h" 2 3

hv_return_t hv_vm_create(unsigned long long flags);
# 13 "/tmp/hv-probe-1/hypervisor.h" 2
# 1 "/sdk/System/Library/Frameworks/Hypervisor.framework/Headers/hv_vmx.h" 1 3
hv_return_t hv_vmx_read_capability(int field, unsigned long long *value);
# 14 "/tmp/hv-probe-1/hypervisor.h" 2
# 2 "/tmp/hv-probe-1/probe.c" 2
`

const gccOutput = `# 0 "/tmp/hv-probe-2/probe.c"
# 0 "<built-in>"
# 0 "<command-line>"
# 1 "/tmp/hv-probe-2/probe.c"
# 1 "/tmp/hv-probe-2/hypervisor.h" 1
# 4 "/tmp/hv-probe-2/hypervisor.h"
# 1 "/src/testdata/sdk/Hypervisor/Hypervisor.h" 1
# 9 "/src/testdata/sdk/Hypervisor/Hypervisor.h"
typedef unsigned int hv_return_t;
# 5 "/tmp/hv-probe-2/hypervisor.h" 2
# 2 "/tmp/hv-probe-2/probe.c" 2
`

func TestParseUnitClang(t *testing.T) {
	u := parseUnit([]byte(clangOutput))
	assert.Equal(t, []string{"Hypervisor/hv.h", "Hypervisor/hv_vmx.h"}, u.Framework)
	assert.Equal(t, []string{
		"hypervisor.h",
		"Hypervisor/hv.h",
		"Hypervisor/hv_base.h",
		"Hypervisor/hv_vmx.h",
	}, u.Includes)
	assert.NotContains(t, u.Source, "# ")
	assert.Contains(t, u.Source, "hv_vmx_read_capability")
}

func TestParseUnitGCC(t *testing.T) {
	u := parseUnit([]byte(gccOutput))
	assert.Equal(t, []string{"Hypervisor/Hypervisor.h"}, u.Framework)
	assert.Equal(t, "typedef unsigned int hv_return_t;\n", u.Source)
	assert.False(t, u.Empty())
}

func TestParseLineMarker(t *testing.T) {
	tests := []struct {
		line string
		ok   bool
		want lineMarker
	}{
		{`# 1 "a.h" 1 3`, true, lineMarker{file: "a.h", enter: true}},
		{`# 7 "a.h" 2`, true, lineMarker{file: "a.h", leave: true}},
		{`#line 3 "b.c"`, true, lineMarker{file: "b.c"}},
		{`# 1 "dir with space/c.h" 1`, true, lineMarker{file: "dir with space/c.h", enter: true}},
		{`#define HV_SUCCESS 0`, false, lineMarker{}},
		{`# pragma once`, false, lineMarker{}},
	}
	for _, tt := range tests {
		got, ok := parseLineMarker(tt.line)
		require.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestFrameworkName(t *testing.T) {
	assert.Equal(t, "Hypervisor/hv_vmx.h",
		frameworkName("/Library/Developer/CommandLineTools/SDKs/MacOSX.sdk/System/Library/Frameworks/Hypervisor.framework/Headers/hv_vmx.h"))
	assert.Equal(t, "Hypervisor/Hypervisor.h", frameworkName("/src/testdata/sdk/Hypervisor/Hypervisor.h"))
	assert.Empty(t, frameworkName("/usr/include/stdint.h"))
}

func TestParseMacros(t *testing.T) {
	out := "#define HV_SUCCESS 0\n#define __HYPERVISOR_HV_H \n#define HV_MAX(a,b) ((a)>(b)?(a):(b))\n#define VMX_REASON_HLT 12\n"
	assert.Equal(t, []string{"HV_SUCCESS", "__HYPERVISOR_HV_H", "VMX_REASON_HLT"}, parseMacros([]byte(out)))
}
