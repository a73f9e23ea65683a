package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseOptions(t *testing.T) {
	t.Parallel()

	opts := ReleaseOptions()
	require.NotEmpty(t, opts)
	assert.Equal(t, "lucid", opts[0].Value, "options start with the oldest release")
}

func TestMiddlewareOptions(t *testing.T) {
	t.Parallel()

	opts := MiddlewareOptions("quantal")
	require.Len(t, opts, 2)
	assert.Equal(t, "groovy", opts[0].Value, "preferred default comes first")

	assert.Empty(t, MiddlewareOptions("warty"))
}

func TestPlatformOptions(t *testing.T) {
	t.Parallel()

	opts := PlatformOptions()
	require.Len(t, opts, 3)
	assert.Equal(t, "aws", opts[0].Value)
}

func TestValidateInterface(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateInterface("eth0"))
	assert.ErrorIs(t, validateInterface("  "), errInterfaceRequired)
}

func TestValidateAbsolutePath(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateAbsolutePath("/opt/roboprov"))
	assert.ErrorIs(t, validateAbsolutePath(""), errPathRequired)
	assert.ErrorIs(t, validateAbsolutePath("relative/path"), errPathNotAbsolute)
}
