// Package semver implements the Semantic Versioning 2.0.0 grammar and
// precedence rules (spec §4.3, C4). It is used directly as the version
// domain for the npm constraint dialect.
package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alowayed/go-vers/pkg/univers"
)

// Name is the ecosystem identifier used in registries and CLI dispatch.
const Name = "semver"

// Ecosystem creates semantic versions and their numeric precedence order.
type Ecosystem struct{}

func (e *Ecosystem) Name() string { return Name }

// versionPattern is the SemVer 2.0.0 grammar plus an optional leading "v".
var versionPattern = regexp.MustCompile(`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

const maxInt32 = 1<<31 - 1

// identifier is one dot-separated component of a pre-release or build
// string: either a bare non-negative integer or an alphanumeric string.
type identifier struct {
	text      string
	isNumeric bool
	num       int64
}

// Version is a parsed SemVer 2.0.0 value.
type Version struct {
	major, minor, patch int64
	pre                 []identifier
	build               []string
	original            string
}

// NewVersion parses s per the SemVer 2.0.0 grammar.
func (e *Ecosystem) NewVersion(s string) (*Version, error) {
	return parse(s)
}

func parse(s string) (*Version, error) {
	trimmed := strings.TrimSpace(s)
	m := versionPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, univers.NewParseError(Name, s, "does not match the SemVer 2.0.0 grammar", nil)
	}

	major, err := parseNumericCore(m[1])
	if err != nil {
		return nil, univers.NewParseError(Name, s, "invalid major version", err)
	}
	minor, err := parseNumericCore(m[2])
	if err != nil {
		return nil, univers.NewParseError(Name, s, "invalid minor version", err)
	}
	patch, err := parseNumericCore(m[3])
	if err != nil {
		return nil, univers.NewParseError(Name, s, "invalid patch version", err)
	}

	var pre []identifier
	if m[4] != "" {
		pre, err = parsePreRelease(m[4])
		if err != nil {
			return nil, univers.NewParseError(Name, s, "invalid pre-release", err)
		}
	}

	var build []string
	if m[5] != "" {
		build = strings.Split(m[5], ".")
	}

	return &Version{major: major, minor: minor, patch: patch, pre: pre, build: build, original: s}, nil
}

func parseNumericCore(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n > maxInt32 {
		return 0, fmt.Errorf("%q exceeds the 32-bit signed range", s)
	}
	return n, nil
}

func parsePreRelease(s string) ([]identifier, error) {
	parts := strings.Split(s, ".")
	out := make([]identifier, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("empty pre-release identifier")
		}
		if isNumeric(part) {
			if len(part) > 1 && part[0] == '0' {
				return nil, fmt.Errorf("numeric pre-release identifier %q has a leading zero", part)
			}
			n, err := strconv.ParseInt(part, 10, 64)
			if err != nil || n > maxInt32 {
				return nil, fmt.Errorf("numeric pre-release identifier %q exceeds the 32-bit signed range", part)
			}
			out[i] = identifier{text: part, isNumeric: true, num: n}
		} else {
			out[i] = identifier{text: part}
		}
	}
	return out, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// FromComponents builds a Version from numeric core components plus an
// optional dotted pre-release identifier string, bypassing string parsing.
// It is the basis for the pre-release convenience constructor of §4.3 and
// for NewSnapshot's non-snapshot case.
func FromComponents(major, minor, patch int64, preRelease string) (*Version, error) {
	var pre []identifier
	var err error
	if preRelease != "" {
		pre, err = parsePreRelease(preRelease)
		if err != nil {
			return nil, univers.NewParseError(Name, preRelease, "invalid pre-release", err)
		}
	}
	v := &Version{major: major, minor: minor, patch: patch, pre: pre}
	v.original = v.render()
	return v, nil
}

// NewPreRelease builds "major.minor.patch-preRelease".
func NewPreRelease(major, minor, patch int64, preRelease string) (*Version, error) {
	return FromComponents(major, minor, patch, preRelease)
}

// Clock supplies the wall-clock millisecond timestamp NewSnapshot uses to
// synthesize a pre-release identifier. Tests should inject a fixed clock;
// two snapshots built at the same millisecond may legitimately be equal
// (§9) — callers needing strict ordering must supply their own identifier.
type Clock interface {
	NowMillis() int64
}

type systemClock struct{}

func (systemClock) NowMillis() int64 { return time.Now().UnixMilli() }

// SystemClock is the wall-clock Clock used by production callers.
var SystemClock Clock = systemClock{}

// NewSnapshot builds "major.minor.patch-<clock ms>" when snapshot is true,
// or the bare core version otherwise.
func NewSnapshot(major, minor, patch int64, snapshot bool, clock Clock) (*Version, error) {
	if !snapshot {
		return FromComponents(major, minor, patch, "")
	}
	// A millisecond stamp exceeds the 32-bit limit that parsing applies to
	// numeric identifiers, so the identifier is built directly.
	ms := clock.NowMillis()
	v := &Version{major: major, minor: minor, patch: patch,
		pre: []identifier{{text: strconv.FormatInt(ms, 10), isNumeric: true, num: ms}}}
	v.original = v.render()
	return v, nil
}

func (v *Version) render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.major, v.minor, v.patch)
	if len(v.pre) > 0 {
		b.WriteByte('-')
		for i, id := range v.pre {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(id.text)
		}
	}
	if len(v.build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.build, "."))
	}
	return b.String()
}

// Major, Minor, and Patch return the numeric core components.
func (v *Version) Major() int64 { return v.major }
func (v *Version) Minor() int64 { return v.minor }
func (v *Version) Patch() int64 { return v.patch }

// PreReleaseIdentifiers returns the ordered, dotted pre-release identifiers.
func (v *Version) PreReleaseIdentifiers() []string {
	out := make([]string, len(v.pre))
	for i, id := range v.pre {
		out[i] = id.text
	}
	return out
}

// Build returns the ordered, dotted build metadata identifiers.
func (v *Version) Build() []string {
	return append([]string(nil), v.build...)
}

// CoreVersion returns "major.minor.patch".
func (v *Version) CoreVersion() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// NormalizedVersion drops any leading "v" but keeps pre-release and build
// metadata.
func (v *Version) NormalizedVersion() string {
	return v.render()
}

// OriginalVersion returns the exact input text the version was parsed from.
func (v *Version) OriginalVersion() string { return v.original }

// String returns the original textual form.
func (v *Version) String() string { return v.original }

// IsPreRelease reports whether v carries any pre-release identifiers.
func (v *Version) IsPreRelease() bool { return len(v.pre) > 0 }

// Compare implements SemVer 2.0.0 precedence (§4.3). Build metadata is
// ignored.
func (v *Version) Compare(other *Version) int {
	if c := compareInt64(v.major, other.major); c != 0 {
		return c
	}
	if c := compareInt64(v.minor, other.minor); c != 0 {
		return c
	}
	if c := compareInt64(v.patch, other.patch); c != 0 {
		return c
	}

	// Absence of pre-release ranks above presence.
	if len(v.pre) == 0 && len(other.pre) == 0 {
		return 0
	}
	if len(v.pre) == 0 {
		return 1
	}
	if len(other.pre) == 0 {
		return -1
	}

	n := min(len(v.pre), len(other.pre))
	for i := 0; i < n; i++ {
		if c := compareIdentifier(v.pre[i], other.pre[i]); c != 0 {
			return c
		}
	}
	// A longer list with a common prefix ranks above the shorter.
	return compareInt64(int64(len(v.pre)), int64(len(other.pre)))
}

func compareIdentifier(a, b identifier) int {
	switch {
	case a.isNumeric && b.isNumeric:
		return compareInt64(a.num, b.num)
	case a.isNumeric && !b.isNumeric:
		return -1 // numeric ranks below non-numeric
	case !a.isNumeric && b.isNumeric:
		return 1
	default:
		return strings.Compare(a.text, b.text)
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
