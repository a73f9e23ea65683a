package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		osRelease string
		want      []string
		wantErr   bool
	}{
		{name: "single entry", osRelease: "lucid", want: []string{"fuerte"}},
		{name: "multiple entries keep order", osRelease: "precise", want: []string{"fuerte", "groovy", "hydro"}},
		{name: "newest release", osRelease: "raring", want: []string{"hydro"}},
		{name: "unknown release", osRelease: "trusty", wantErr: true},
		{name: "empty release", osRelease: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Compatible(tt.osRelease)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownRelease)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompatibleReturnsCopy(t *testing.T) {
	t.Parallel()

	first, err := Compatible("precise")
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := Compatible("precise")
	require.NoError(t, err)
	assert.Equal(t, "fuerte", second[0])
}

func TestEveryReleaseHasMiddleware(t *testing.T) {
	t.Parallel()

	for _, r := range Supported() {
		mws, err := Compatible(r)
		require.NoError(t, err)
		assert.NotEmpty(t, mws, "release %q must map to a non-empty sequence", r)
	}
}

func TestSupportedIsOrdered(t *testing.T) {
	t.Parallel()

	supported := Supported()
	require.NotEmpty(t, supported)
	for i := 1; i < len(supported); i++ {
		assert.True(t, newerOrEqual(supported[i], supported[i-1]),
			"%q must not be older than %q", supported[i], supported[i-1])
	}
}

func TestMiddlewareNewer(t *testing.T) {
	t.Parallel()

	assert.True(t, MiddlewareNewer("groovy", "fuerte"))
	assert.True(t, MiddlewareNewer("hydro", OldestMiddleware()))
	assert.False(t, MiddlewareNewer("fuerte", "fuerte"))
	assert.False(t, MiddlewareNewer("fuerte", "hydro"))
}

func TestKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, Known("quantal"))
	assert.False(t, Known("warty"))
}
