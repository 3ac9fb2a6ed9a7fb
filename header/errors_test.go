package header

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hv "github.com/blacktop/go-hv"
)

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		header string
		hint   bool
	}{
		{
			name:   "clang",
			stderr: "/tmp/p/hypervisor.h:16:10: fatal error: 'Hypervisor/hv.h' file not found\n#include <Hypervisor/hv.h>\n         ^~~~~~~~~~~~~~~~~\n1 error generated.\n",
			header: "Hypervisor/hv.h",
			hint:   true,
		},
		{
			name:   "gcc",
			stderr: "/tmp/p/hypervisor.h:5:10: fatal error: Hypervisor/Hypervisor.h: No such file or directory\ncompilation terminated.\n",
			header: "Hypervisor/Hypervisor.h",
			hint:   true,
		},
		{
			name:   "other header",
			stderr: "probe.c:1:10: fatal error: 'stdint.h' file not found\n",
			header: "stdint.h",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Diagnose(tt.stderr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrHeaderNotFound))

			var nf *HeaderNotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, tt.header, nf.Header)
			assert.Equal(t, tt.hint, len(errors.GetAllHints(err)) > 0)
			assert.NotEmpty(t, errors.GetAllDetails(err))
		})
	}

	assert.NoError(t, Diagnose("probe.c:2:1: warning: unused variable\n"))
	assert.NoError(t, Diagnose(""))
}

func TestRequireFramework(t *testing.T) {
	assert.NoError(t, RequireFramework(&Unit{Arch: hv.ArchARM64, Framework: []string{"Hypervisor/Hypervisor.h"}}))

	err := RequireFramework(&Unit{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArchUnsupported))

	assert.True(t, errors.Is(RequireFramework(nil), ErrArchUnsupported))
}

func TestToolchainError(t *testing.T) {
	cause := errors.New("exit status 1")

	err := toolchainError("cc", cause, "probe.c:1:1: error: unknown type name 'hv_vcpuid_t'\n")
	assert.True(t, errors.Is(err, ErrToolchain))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, errors.FlattenDetails(err), "unknown type name")

	err = toolchainError("cc", cause, "fatal error: 'Hypervisor/hv.h' file not found")
	assert.True(t, errors.Is(err, ErrHeaderNotFound))
	assert.False(t, errors.Is(err, ErrToolchain))
}
