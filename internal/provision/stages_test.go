package provision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robomesh/roboprov/internal/config"
)

func testRecord() *config.Record {
	return &config.Record{
		PasswordStore:       "/opt/roboprov/creds",
		ContainerOS:         "quantal",
		ContainerMiddleware: "hydro",
		HostMiddleware:      "groovy",
		Platform:            config.PlatformOther,
		ExternalInterface:   "eth0",
		InternalInterface:   "eth1",
		ContainerInterface:  "lxcbr0",
		RootFS:              "/opt/roboprov/container/rootfs",
		ConfDir:             "/opt/roboprov/container/config",
		DataDir:             "/opt/roboprov/container/data",
	}
}

func TestHostPackageStage(t *testing.T) {
	t.Parallel()

	stage := HostPackageStage("precise", testRecord())
	joined := strings.Join(stage.Commands, "\n")

	assert.Equal(t, "host packages", stage.Name)
	assert.False(t, stage.Atomic)
	// Repo entry follows the *host* OS release, packages the *host*
	// middleware release.
	assert.Contains(t, joined, "ros/ubuntu precise main")
	assert.Contains(t, joined, "ros-groovy-ros-comm")
	assert.NotContains(t, joined, "ros-hydro-ros-comm")
	assert.Contains(t, joined, "lxc-net")
}

func TestContainerCreateStage(t *testing.T) {
	t.Parallel()

	stage := ContainerCreateStage(testRecord(), "/usr/local/lib/roboprov")

	assert.Equal(t, "/usr/local/lib/roboprov", stage.Dir,
		"creation must run from the binary's directory")
	require.Len(t, stage.Commands, 1)
	assert.Contains(t, stage.Commands[0], "hydro")
	assert.Contains(t, stage.Commands[0], "quantal")
	assert.Contains(t, stage.Commands[0], "/opt/roboprov/container/rootfs")
}

func TestContainerProvisionStage(t *testing.T) {
	t.Parallel()

	stage := ContainerProvisionStage(testRecord())
	joined := strings.Join(stage.Commands, "\n")

	assert.True(t, stage.Atomic)
	require.NotNil(t, stage.Wrap)
	assert.True(t, strings.HasPrefix(stage.Wrap("x"), "chroot /opt/roboprov/container/rootfs"))

	// Repo entry follows the *container* OS release, packages the
	// *container* middleware release.
	assert.Contains(t, joined, "ros/ubuntu quantal main")
	assert.Contains(t, joined, "ros-hydro-ros-comm")

	// Both service accounts, the data owner with its designated home.
	assert.Contains(t, joined, "useradd -m -s /bin/bash ros")
	assert.Contains(t, joined, "useradd -m -d /opt/roboprov/data -s /bin/bash robodata")

	// Environment activation lands in both profile files.
	assert.Contains(t, joined, "setup.sh\" >> /root/.bashrc")
	assert.Contains(t, joined, "setup.sh\" >> /home/ros/.bashrc")
}

func TestContainerProvisionStageDependencyInitGating(t *testing.T) {
	t.Parallel()

	rec := testRecord()
	rec.ContainerOS = "precise"

	rec.ContainerMiddleware = "hydro"
	joined := strings.Join(ContainerProvisionStage(rec).Commands, "\n")
	assert.Contains(t, joined, "rosdep init")

	// The oldest supported middleware predates the dependency tooling.
	rec.ContainerMiddleware = "fuerte"
	joined = strings.Join(ContainerProvisionStage(rec).Commands, "\n")
	assert.NotContains(t, joined, "rosdep init")
}

func TestContainerProvisionStageRootAccount(t *testing.T) {
	t.Parallel()

	rec := testRecord()

	rec.DeveloperMode = true
	dev := strings.Join(ContainerProvisionStage(rec).Commands, "\n")
	assert.Contains(t, dev, "chpasswd")
	assert.NotContains(t, dev, "passwd -l root")

	rec.DeveloperMode = false
	prod := strings.Join(ContainerProvisionStage(rec).Commands, "\n")
	assert.Contains(t, prod, "passwd -l root")
	assert.NotContains(t, prod, "chpasswd")

	// Root handling is always the final step of the composite.
	cmds := ContainerProvisionStage(rec).Commands
	assert.Equal(t, "passwd -l root", cmds[len(cmds)-1])
}

func TestContainerTeardownStage(t *testing.T) {
	t.Parallel()

	stage := ContainerTeardownStage("quantal", "/usr/local/lib/roboprov")

	assert.Equal(t, "/usr/local/lib/roboprov", stage.Dir)
	require.Len(t, stage.Commands, 1)
	assert.Contains(t, stage.Commands[0], "--clean quantal")
}
