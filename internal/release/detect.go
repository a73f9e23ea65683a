package release

import (
	"context"
	"fmt"
	"strings"
)

// OutputRunner captures the single capability detection needs from the
// shell executor.
type OutputRunner interface {
	Output(ctx context.Context, command string) (string, error)
}

// DetectHost queries the running host for its OS release codename via
// lsb_release. Any failure maps to ErrUndetectableHost.
func DetectHost(ctx context.Context, sh OutputRunner) (string, error) {
	out, err := sh.Output(ctx, "lsb_release -cs")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUndetectableHost, err)
	}
	codename := strings.TrimSpace(out)
	if codename == "" {
		return "", ErrUndetectableHost
	}
	return codename, nil
}
