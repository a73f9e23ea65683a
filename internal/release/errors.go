package release

import (
	"errors"
	"fmt"
)

// ErrUndetectableHost indicates the host OS release could not be determined.
// Resolution cannot proceed without it; there is no fallback.
var ErrUndetectableHost = errors.New("host OS release could not be detected")

// ErrUnknownRelease is matched by errors.Is against UnknownReleaseError.
var ErrUnknownRelease = errors.New("unknown OS release")

// UnknownReleaseError reports a support-matrix lookup miss.
type UnknownReleaseError struct {
	Release string
}

func (e *UnknownReleaseError) Error() string {
	return fmt.Sprintf("OS release %q is not in the support matrix", e.Release)
}

// Is makes errors.Is(err, ErrUnknownRelease) succeed.
func (e *UnknownReleaseError) Is(target error) bool {
	return target == ErrUnknownRelease
}
