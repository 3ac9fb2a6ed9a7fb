package header

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// SDKPath asks xcrun for the macOS SDK root.
func SDKPath(ctx context.Context) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "xcrun", "--sdk", "macosx", "--show-sdk-path")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		err = errors.WithHint(toolchainError("xcrun", err, stderr.String()),
			"install Xcode or the Command Line Tools (xcode-select --install)")
		return "", err
	}
	return parseSDKPath(stdout.String(), stderr.String())
}

// parseSDKPath treats any stderr output as failure, like a build script would.
func parseSDKPath(stdout, stderr string) (string, error) {
	if s := strings.TrimSpace(stderr); s != "" {
		return "", errors.Mark(errors.Newf("xcrun: %s", s), ErrToolchain)
	}
	path := strings.TrimRight(stdout, "\r\n")
	if path == "" {
		return "", errors.Mark(errors.New("xcrun returned an empty SDK path"), ErrToolchain)
	}
	return path, nil
}

// FrameworkDir is where an SDK keeps its system frameworks.
func FrameworkDir(sdk string) string {
	return filepath.Join(sdk, "System", "Library", "Frameworks")
}

// StubPath is the text stub listing Hypervisor.framework's exports in an SDK.
func StubPath(sdk string) string {
	return filepath.Join(FrameworkDir(sdk), "Hypervisor.framework", "Hypervisor.tbd")
}
