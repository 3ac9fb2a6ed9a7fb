package header

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	hv "github.com/blacktop/go-hv"
)

func requireCC(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(DefaultCC); err != nil {
		t.Skipf("no C compiler: %v", err)
	}
}

func testdataDir(t *testing.T, name string) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("testdata", name))
	require.NoError(t, err)
	return dir
}

// stubOptions targets arch without any predefined macros and resolves
// framework headers only from the stubs under testdata/sdk.
func stubOptions(t *testing.T, arch hv.Arch) Options {
	return Options{
		Arch:        arch,
		Synthetic:   true,
		IncludeDirs: []string{testdataDir(t, "sdk")},
		ExtraArgs:   []string{"-nostdinc"},
	}
}
