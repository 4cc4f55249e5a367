// Package version keeps the registry of known server.xml schema versions.
//
// Versions are totally ordered by release date. The registry carries no
// behavior beyond identity, ordering and display labels; readers, writers
// and migration steps are selected by these values.
package version

import (
	"strings"

	"github.com/gnames/gnlib"
)

// Version is a server.xml schema version of ApacheDS.
type Version int

const (
	V150 Version = iota
	V151
	V152
	V153
	V154
	V155
	V156
	V157
)

// Unknown is returned together with errors.
const Unknown Version = -1

var names = [...]string{
	V150: "1.5.0",
	V151: "1.5.1",
	V152: "1.5.2",
	V153: "1.5.3",
	V154: "1.5.4",
	V155: "1.5.5",
	V156: "1.5.6",
	V157: "1.5.7",
}

// All returns every known version, oldest first.
func All() []Version {
	res := make([]Version, 0, len(names))
	for i := range names {
		res = append(res, Version(i))
	}
	return res
}

// Oldest returns the first known version.
func Oldest() Version {
	return V150
}

// Latest returns the most recent known version.
func Latest() Version {
	return V157
}

// IsKnown reports whether v belongs to the registry.
func (v Version) IsKnown() bool {
	return v >= V150 && v <= V157
}

// String returns the dotted form of the version, for example "1.5.3".
func (v Version) String() string {
	if !v.IsKnown() {
		return "unknown"
	}
	return names[v]
}

// Label returns a human-readable name of the version.
func (v Version) Label() string {
	return "ApacheDS " + v.String()
}

// Next returns the chronological successor of v. The second value is
// false for the latest version.
func (v Version) Next() (Version, bool) {
	if !v.IsKnown() || v == Latest() {
		return v, false
	}
	return v + 1, true
}

// Compare returns -1, 0 or 1 if v is older, the same or newer than other.
func (v Version) Compare(other Version) int {
	switch {
	case v < other:
		return -1
	case v > other:
		return 1
	default:
		return 0
	}
}

// Range returns versions from 'from' to 'to' inclusive. It returns nil if
// 'to' precedes 'from'.
func Range(from, to Version) []Version {
	if to < from {
		return nil
	}
	res := make([]Version, 0, int(to-from)+1)
	for v := from; v <= to; v++ {
		res = append(res, v)
	}
	return res
}

// Parse converts a string like "1.5.3", "v1.5.3" or "153" to a Version.
func Parse(s string) (Version, error) {
	orig := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToLower(s), "v")
	if len(s) == 3 && !strings.Contains(s, ".") {
		s = strings.Join(strings.Split(s, ""), ".")
	}

	sv := "v" + s
	if !gnlib.IsVersion(sv) {
		return Unknown, UnknownVersionError(orig)
	}
	for _, v := range All() {
		if gnlib.CmpVersion(sv, "v"+v.String()) == 0 {
			return v, nil
		}
	}
	return Unknown, UnknownVersionError(orig)
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(b []byte) error {
	res, err := Parse(string(b))
	if err != nil {
		return err
	}
	*v = res
	return nil
}
