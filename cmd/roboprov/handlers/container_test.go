package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robomesh/roboprov/internal/config"
	"github.com/robomesh/roboprov/internal/platform/shell"
)

func TestContainer(t *testing.T) {
	origLoad := loadRecord
	origRunner := newRunner
	origBinDir := binDir
	defer func() {
		loadRecord = origLoad
		newRunner = origRunner
		binDir = origBinDir
	}()

	sh := &stubRunner{}
	loadRecord = func(string) (*config.Record, error) { return stubConfigRecord(), nil }
	newRunner = func() shell.Runner { return sh }
	binDir = func() (string, error) { return "/usr/local/lib/roboprov", nil }

	require.NoError(t, Container(context.Background(), ""))

	joined := strings.Join(sh.commands, "\n")
	// Host stage uses the detected host release (stubRunner says precise)
	// and the resolved host middleware.
	assert.Contains(t, joined, "ros/ubuntu precise main")
	assert.Contains(t, joined, "ros-hydro-ros-comm")
	// Creation runs the container script from the binary's directory.
	assert.Contains(t, joined, "setup/container.bash")
	assert.Contains(t, sh.dirs, "/usr/local/lib/roboprov")
	// The composite step runs inside the container filesystem.
	assert.Contains(t, joined, "chroot /opt/roboprov/container/rootfs")
}

func TestContainerShortCircuitsAfterCreationFailure(t *testing.T) {
	origLoad := loadRecord
	origRunner := newRunner
	origBinDir := binDir
	defer func() {
		loadRecord = origLoad
		newRunner = origRunner
		binDir = origBinDir
	}()

	sh := &stubRunner{failOn: "setup/container.bash"}
	loadRecord = func(string) (*config.Record, error) { return stubConfigRecord(), nil }
	newRunner = func() shell.Runner { return sh }
	binDir = func() (string, error) { return "/usr/local/lib/roboprov", nil }

	require.Error(t, Container(context.Background(), ""))

	joined := strings.Join(sh.commands, "\n")
	assert.NotContains(t, joined, "chroot",
		"container provisioning must not run after creation fails")
}

func TestContainerWithoutConfig(t *testing.T) {
	origLoad := loadRecord
	defer func() { loadRecord = origLoad }()

	loadRecord = func(string) (*config.Record, error) {
		return nil, config.ErrNoValidConfiguration
	}

	err := Container(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNoValidConfiguration)
}

func TestContainerUndetectableHost(t *testing.T) {
	origLoad := loadRecord
	origRunner := newRunner
	defer func() {
		loadRecord = origLoad
		newRunner = origRunner
	}()

	sh := &stubRunner{outputErr: assert.AnError}
	loadRecord = func(string) (*config.Record, error) { return stubConfigRecord(), nil }
	newRunner = func() shell.Runner { return sh }

	err := Container(context.Background(), "")
	require.Error(t, err)
	assert.Empty(t, sh.commands, "no stage may run without a detected host release")
}
