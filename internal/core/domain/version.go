package domain

import (
	"cmp"
	"strconv"
	"strings"
)

// Version identifies one installable revision of a package. A version is
// either a released archive with a content digest or a moving branch head.
type Version struct {
	// ID is the version identifier, e.g. "2.0.2" or "develop".
	ID string

	// SHA256 is the hex digest of the source archive. Empty for branch versions.
	SHA256 string

	// Branch is the source-control branch this version tracks, if any.
	Branch string
}

// developmentVersions ranks branch-style identifiers that order newer than
// any numeric release, mirroring the usual packaging convention.
var developmentVersions = map[string]int{
	"develop": 5,
	"main":    4,
	"master":  3,
	"head":    2,
	"trunk":   1,
}

// CompareVersionIDs compares two version identifiers. It returns a negative
// number if a is older than b, zero if equal, positive if newer.
// Identifiers are compared segment-wise on dots; numeric segments compare
// numerically and order above non-numeric ones. Development identifiers
// (develop, main, master, head, trunk) order newest.
func CompareVersionIDs(a, b string) int {
	da, oka := developmentVersions[a]
	db, okb := developmentVersions[b]
	switch {
	case oka && okb:
		return cmp.Compare(da, db)
	case oka:
		return 1
	case okb:
		return -1
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		if i >= len(as) {
			return -1
		}
		if i >= len(bs) {
			return 1
		}
		if c := compareSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareSegment(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return 1
	case errB == nil:
		return -1
	default:
		return strings.Compare(a, b)
	}
}

// VersionRange is an inclusive range of version identifiers. An empty bound
// leaves that side unbounded; the zero VersionRange matches every version.
type VersionRange struct {
	Lo string
	Hi string
}

// IsZero reports whether the range is unconstrained.
func (r VersionRange) IsZero() bool {
	return r.Lo == "" && r.Hi == ""
}

// Contains reports whether the given version identifier lies in the range.
func (r VersionRange) Contains(id string) bool {
	if r.Lo != "" && CompareVersionIDs(id, r.Lo) < 0 {
		return false
	}
	if r.Hi != "" && CompareVersionIDs(id, r.Hi) > 0 {
		return false
	}
	return true
}

// String renders the range in lo:hi notation. The unconstrained range
// renders as the empty string; an exact range renders as the bare version.
func (r VersionRange) String() string {
	if r.IsZero() {
		return ""
	}
	if r.Lo == r.Hi {
		return r.Lo
	}
	return r.Lo + ":" + r.Hi
}
