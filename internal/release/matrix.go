// Package release models the support matrix between host operating-system
// releases and robot middleware releases, and resolves compatible release
// pairs for a provisioning run.
package release

// releaseOrder lists known OS release codenames from oldest to newest.
// Recency comparisons between releases use the position in this list.
var releaseOrder = []string{
	"lucid",
	"maverick",
	"natty",
	"oneiric",
	"precise",
	"quantal",
	"raring",
}

// middlewareOrder lists middleware releases from oldest to newest.
var middlewareOrder = []string{
	"fuerte",
	"groovy",
	"hydro",
}

// supportMatrix maps an OS release to its compatible middleware releases.
// The first entry of each list is the preferred default for that release.
// Adding a release pair means adding a row here, nothing else.
var supportMatrix = map[string][]string{
	"lucid":   {"fuerte"},
	"oneiric": {"fuerte"},
	"precise": {"fuerte", "groovy", "hydro"},
	"quantal": {"groovy", "hydro"},
	"raring":  {"hydro"},
}

// Compatible returns the middleware releases supported on the given OS
// release, preferred default first. It returns ErrUnknownRelease when the
// release is not in the matrix; callers decide their own fallback policy.
func Compatible(osRelease string) ([]string, error) {
	mws, ok := supportMatrix[osRelease]
	if !ok {
		return nil, &UnknownReleaseError{Release: osRelease}
	}
	out := make([]string, len(mws))
	copy(out, mws)
	return out, nil
}

// Known reports whether the OS release appears in the support matrix.
func Known(osRelease string) bool {
	_, ok := supportMatrix[osRelease]
	return ok
}

// Supported returns all OS releases in the matrix, oldest first.
func Supported() []string {
	var out []string
	for _, r := range releaseOrder {
		if _, ok := supportMatrix[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// OldestMiddleware returns the oldest middleware release any OS release
// supports.
func OldestMiddleware() string {
	return middlewareOrder[0]
}

// MiddlewareNewer reports whether middleware release a is strictly newer
// than b. Unknown releases compare as oldest.
func MiddlewareNewer(a, b string) bool {
	return indexOf(middlewareOrder, a) > indexOf(middlewareOrder, b)
}

// newerOrEqual reports whether OS release a is the same or more recent
// than b.
func newerOrEqual(a, b string) bool {
	return indexOf(releaseOrder, a) >= indexOf(releaseOrder, b)
}

func indexOf(list []string, v string) int {
	for i, e := range list {
		if e == v {
			return i
		}
	}
	return -1
}

func contains(list []string, v string) bool {
	return indexOf(list, v) >= 0
}
