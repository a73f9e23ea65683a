package release

import (
	"fmt"
)

// Pair is the resolved release combination for a provisioning run.
type Pair struct {
	// ContainerOS is the base OS release of the container.
	ContainerOS string
	// ContainerMiddleware is the middleware release installed inside the
	// container, guaranteed compatible with ContainerOS.
	ContainerMiddleware string
	// HostMiddleware is the middleware release installed on the host.
	HostMiddleware string
	// HostOS is the detected OS release of the host.
	HostOS string

	// Overridden is set when the requested middleware release was not
	// compatible with ContainerOS and the preferred default was used
	// instead. Requested holds the original value. This is expected,
	// user-correctable input, not an error; callers should surface it.
	Overridden bool
	Requested  string
}

// DetectFunc returns the OS release codename of the running host.
type DetectFunc func() (string, error)

// Resolve computes the effective release pair for a container with the given
// base OS release and requested middleware release.
//
// If the requested middleware is not compatible with the container OS, the
// preferred default for that OS is used and the override is recorded on the
// returned Pair. The host middleware reuses the container middleware when the
// container OS is the same or more recent than the detected host OS (ties
// favor reuse); an older container means the host falls back to its own
// preferred default, so a host never inherits a release newer than its
// best-supported one.
//
// A failing detector is fatal: there is no valid fallback for an
// undetectable host.
func Resolve(containerOS, requestedMiddleware string, detect DetectFunc) (Pair, error) {
	hostOS, err := detect()
	if err != nil {
		return Pair{}, fmt.Errorf("resolve release pair: %w", err)
	}

	compat, err := Compatible(containerOS)
	if err != nil {
		return Pair{}, fmt.Errorf("resolve release pair: %w", err)
	}

	pair := Pair{
		ContainerOS:         containerOS,
		ContainerMiddleware: requestedMiddleware,
		HostOS:              hostOS,
		Requested:           requestedMiddleware,
	}
	if !contains(compat, requestedMiddleware) {
		pair.ContainerMiddleware = compat[0]
		pair.Overridden = true
	}

	if !Known(hostOS) {
		return Pair{}, fmt.Errorf("resolve release pair: host %w", &UnknownReleaseError{Release: hostOS})
	}

	if newerOrEqual(containerOS, hostOS) {
		pair.HostMiddleware = pair.ContainerMiddleware
		return pair, nil
	}

	hostCompat, err := Compatible(hostOS)
	if err != nil {
		return Pair{}, fmt.Errorf("resolve release pair: %w", err)
	}
	pair.HostMiddleware = hostCompat[0]
	return pair, nil
}
