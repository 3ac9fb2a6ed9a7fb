package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blacktop/go-hv/header"
)

func requireCC(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(header.DefaultCC); err != nil {
		t.Skipf("no C compiler: %v", err)
	}
}

func testdata(t *testing.T, parts ...string) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join(append([]string{"..", "..", "..", "header", "testdata"}, parts...)...))
	require.NoError(t, err)
	return dir
}

// runCmd executes the root command. Flags keep their values between runs,
// so callers pass every flag they depend on.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHeadersCommand(t *testing.T) {
	requireCC(t)
	sdk := testdata(t, "sdk")

	out, err := runCmd(t, "headers", "--synthetic", "-I", sdk, "--arch", "x86_64", "--source=false", "--require=false")
	require.NoError(t, err)
	assert.Contains(t, out, "predicate: __x86_64__")
	assert.Contains(t, out, "included:  Hypervisor/hv.h Hypervisor/hv_vmx.h")

	out, err = runCmd(t, "headers", "--synthetic", "-I", sdk, "--arch", "riscv64", "--source=false", "--require=false")
	require.NoError(t, err)
	assert.Contains(t, out, "included:  (none)")

	_, err = runCmd(t, "headers", "--synthetic", "-I", sdk, "--arch", "riscv64", "--source=false", "--require=true")
	require.Error(t, err)
	assert.True(t, errors.Is(err, header.ErrArchUnsupported))
}

func TestSymbolsCommand(t *testing.T) {
	requireCC(t)

	out, err := runCmd(t, "symbols", "--synthetic", "-I", testdata(t, "sdk"), "--arch", "arm64", "--json")
	require.NoError(t, err)

	var got map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"hv_vcpu_run", "hv_vm_create", "hv_vm_destroy", "hv_vm_get_max_vcpu_count"}, got["functions"])
	assert.Contains(t, got["macros"], "HV_SUCCESS")
}

func TestSkewCommand(t *testing.T) {
	requireCC(t)

	out, err := runCmd(t, "skew", "--synthetic", "-I", testdata(t, "sdk"), "--arch", "arm64", "--tbd", testdata(t, "Hypervisor.tbd"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, header.ErrVersionSkew))
	assert.Contains(t, out, "missing: hv_vm_get_max_vcpu_count")

	out, err = runCmd(t, "skew", "--synthetic", "-I", testdata(t, "sdk"), "--arch", "x86_64", "--tbd", testdata(t, "Hypervisor.tbd"))
	require.NoError(t, err)
	assert.Contains(t, out, "all exported")
}

func TestEntitlementsNotMachO(t *testing.T) {
	_, err := entitlements(testdata(t, "Hypervisor.tbd"))
	assert.Error(t, err)
}

func TestLogFlags(t *testing.T) {
	_, err := runCmd(t, "headers", "--log-format", "xml")
	require.Error(t, err)

	_, err = runCmd(t, "headers", "--log-format", "text", "--log-level", "loud")
	require.Error(t, err)

	// restore for later tests
	_, err = runCmd(t, "headers", "--log-format", "text", "--log-level", "info", "--help")
	require.NoError(t, err)
}
