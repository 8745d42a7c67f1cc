package value

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"prelex/internal/token"
)

// Version is a dotted version number. Semver is set when the surface can be
// read as a semantic version ("v1.2" → 1.2.0); four or more segments leave
// it nil.
type Version struct {
	Raw    string
	Semver *semver.Version
}

func (Version) Kind() token.Kind { return token.Version }

func (v Version) String() string {
	if v.Semver != nil {
		return v.Semver.String()
	}
	return v.Raw
}

// Segments returns the numeric segments as written, without the v prefix.
func (v Version) Segments() []string {
	return strings.Split(strings.TrimLeft(v.Raw, "vV"), ".")
}

// Compare orders two versions. Semantic versions compare by precedence,
// anything else falls back to segment-wise numeric comparison.
func (v Version) Compare(o Version) int {
	if v.Semver != nil && o.Semver != nil {
		return v.Semver.Compare(o.Semver)
	}
	a, b := v.Segments(), o.Segments()
	for i := 0; i < len(a) || i < len(b); i++ {
		var x, y string
		if i < len(a) {
			x = strings.TrimLeft(a[i], "0")
		}
		if i < len(b) {
			y = strings.TrimLeft(b[i], "0")
		}
		if len(x) != len(y) {
			if len(x) < len(y) {
				return -1
			}
			return 1
		}
		if c := strings.Compare(x, y); c != 0 {
			return c
		}
	}
	return 0
}

func parseVersion(surface string) (Version, error) {
	raw := narrow(surface)
	if raw == "" {
		return Version{}, errSurface
	}
	v := Version{Raw: raw}
	if sv, err := semver.NewVersion(raw); err == nil {
		v.Semver = sv
	}
	return v, nil
}
