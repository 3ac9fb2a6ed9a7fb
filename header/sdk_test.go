package header

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSDKPath(t *testing.T) {
	path, err := parseSDKPath("/Library/Developer/CommandLineTools/SDKs/MacOSX.sdk\n", "")
	require.NoError(t, err)
	assert.Equal(t, "/Library/Developer/CommandLineTools/SDKs/MacOSX.sdk", path)

	_, err = parseSDKPath("/some/sdk\n", "xcrun: error: unable to lookup item 'Path'\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolchain))

	_, err = parseSDKPath("\n", "")
	assert.Error(t, err)
}

func TestSDKLayout(t *testing.T) {
	assert.Equal(t, "/sdk/System/Library/Frameworks", FrameworkDir("/sdk"))
	assert.Equal(t, "/sdk/System/Library/Frameworks/Hypervisor.framework/Hypervisor.tbd", StubPath("/sdk"))
}
