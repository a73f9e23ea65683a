package wizard

import (
	"github.com/charmbracelet/huh"

	"github.com/robomesh/roboprov/internal/config"
	"github.com/robomesh/roboprov/internal/release"
)

// Default answers for interface and filesystem questions.
const (
	defaultExternalInterface  = "eth0"
	defaultInternalInterface  = "eth0"
	defaultContainerInterface = "lxcbr0"

	defaultRootFS        = "/opt/roboprov/container/rootfs"
	defaultConfDir       = "/opt/roboprov/container/config"
	defaultDataDir       = "/opt/roboprov/container/data"
	defaultPasswordStore = "/opt/roboprov/creds"
)

// ReleaseOptions lists the OS releases in the support matrix, oldest first.
func ReleaseOptions() []huh.Option[string] {
	var opts []huh.Option[string]
	for _, r := range release.Supported() {
		opts = append(opts, huh.NewOption(r, r))
	}
	return opts
}

// MiddlewareOptions lists the middleware releases compatible with the given
// OS release, preferred default first. An unknown release yields no options;
// the resolver handles the fallback.
func MiddlewareOptions(osRelease string) []huh.Option[string] {
	compat, err := release.Compatible(osRelease)
	if err != nil {
		return nil
	}
	var opts []huh.Option[string]
	for _, m := range compat {
		opts = append(opts, huh.NewOption(m, m))
	}
	return opts
}

// PlatformOptions lists the deployment platform tags.
func PlatformOptions() []huh.Option[string] {
	var opts []huh.Option[string]
	for _, p := range config.Platforms {
		opts = append(opts, huh.NewOption(string(p), string(p)))
	}
	return opts
}
