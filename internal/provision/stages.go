package provision

import (
	"fmt"

	"github.com/robomesh/roboprov/internal/config"
	"github.com/robomesh/roboprov/internal/release"
)

// Accounts created inside the container filesystem.
const (
	// runtimeAccount runs the middleware inside the container.
	runtimeAccount = "ros"
	// dataAccount owns the mounted instance data.
	dataAccount = "robodata"
	// dataAccountHome is the designated home of the data account.
	dataAccountHome = "/opt/roboprov/data"
)

// frameworkRepo is the cloud-engine framework installed inside the container.
const (
	frameworkRepo = "https://github.com/robomesh/framework.git"
	frameworkDir  = "/opt/roboprov/framework"
)

// containerScript builds and tears down the container filesystem. It lives
// next to the roboprov binary and resolves its helper scripts relative to
// its own location, which is why container stages run from the binary's
// directory.
const containerScript = "setup/container.bash"

// devRootPassword is the fixed root password applied in developer mode.
const devRootPassword = "admin"

// middlewareSourceLine renders the package-repository entry for the
// middleware archive on a given OS release.
func middlewareSourceLine(osRelease string) string {
	return fmt.Sprintf(
		`echo "deb http://packages.ros.org/ros/ubuntu %s main" > /etc/apt/sources.list.d/ros-latest.list`,
		osRelease)
}

// HostPackageStage installs the host-side prerequisites: baseline packages,
// the middleware archive for the detected host OS release, the host
// middleware packages, and the container networking service later stages
// depend on.
func HostPackageStage(hostOS string, rec *config.Record) Stage {
	return Stage{
		Name: "host packages",
		Commands: []string{
			"apt-get update",
			"apt-get -y install debootstrap lxc curl openvswitch-switch",
			fmt.Sprintf("sh -c '%s'", middlewareSourceLine(hostOS)),
			"curl -fsSL http://packages.ros.org/ros.key | apt-key add -",
			"apt-get update",
			fmt.Sprintf("apt-get -y install ros-%s-ros-comm python-setuptools", rec.HostMiddleware),
			"service lxc-net restart",
		},
	}
}

// ContainerCreateStage invokes the external container build script. It runs
// from binDir, the directory of the roboprov binary, because the script
// resolves its helper scripts against its own location, not the caller's
// working directory.
func ContainerCreateStage(rec *config.Record, binDir string) Stage {
	return Stage{
		Name: "container creation",
		Dir:  binDir,
		Commands: []string{
			fmt.Sprintf("bash %s %s %s %s",
				containerScript, rec.ContainerMiddleware, rec.ContainerOS, rec.RootFS),
		},
	}
}

// ContainerProvisionStage provisions the container filesystem in a single
// privileged chroot invocation. The commands are joined atomically: a
// failure anywhere aborts the whole step with no partial rollback.
func ContainerProvisionStage(rec *config.Record) Stage {
	commands := []string{
		"dpkg-reconfigure locales",
		fmt.Sprintf("useradd -m -s /bin/bash %s", runtimeAccount),
		fmt.Sprintf("useradd -m -d %s -s /bin/bash %s", dataAccountHome, dataAccount),
		middlewareSourceLine(rec.ContainerOS),
		"curl -fsSL http://packages.ros.org/ros.key | apt-key add -",
		"apt-get update",
		fmt.Sprintf("apt-get -y install ros-%s-ros-comm git-core curl python-setuptools",
			rec.ContainerMiddleware),
		fmt.Sprintf("git clone %s %s", frameworkRepo, frameworkDir),
		fmt.Sprintf("cd %s && python setup.py install", frameworkDir),
		fmt.Sprintf(`echo "source /opt/ros/%s/setup.sh" >> /root/.bashrc`, rec.ContainerMiddleware),
		fmt.Sprintf(`echo "source /opt/ros/%s/setup.sh" >> /home/%s/.bashrc`,
			rec.ContainerMiddleware, runtimeAccount),
	}

	// rosdep only exists from the releases after the oldest supported one.
	if release.MiddlewareNewer(rec.ContainerMiddleware, release.OldestMiddleware()) {
		commands = append(commands, "rosdep init")
	}

	if rec.DeveloperMode {
		commands = append(commands, fmt.Sprintf(`echo "root:%s" | chpasswd`, devRootPassword))
	} else {
		commands = append(commands, "passwd -l root")
	}

	rootfs := rec.RootFS
	return Stage{
		Name:     "container provisioning",
		Commands: commands,
		Atomic:   true,
		Wrap: func(joined string) string {
			return fmt.Sprintf("chroot %s sh -c '%s'", rootfs, joined)
		},
	}
}

// ContainerTeardownStage reverses container creation for the given base OS
// release. Like creation it runs from the binary's directory.
func ContainerTeardownStage(osRelease, binDir string) Stage {
	return Stage{
		Name: "container cleanup",
		Dir:  binDir,
		Commands: []string{
			fmt.Sprintf("bash %s --clean %s", containerScript, osRelease),
		},
	}
}
