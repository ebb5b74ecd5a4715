package javaver

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alowayed/go-vers/pkg/univers"
)

var (
	legacyUPattern      = regexp.MustCompile(`^(\d+)(?:\.(\d+))?u(\d+)$`)
	legacyDottedPrefix  = regexp.MustCompile(`^1\.(\d+)(?:\.(\d+))?(?:_(\d+))?`)
	legacyTrailingBuild = regexp.MustCompile(`-b(\d+)$`)
)

// Version is a parsed Java language version in JEP 322 shape:
// FEATURE[.INTERIM[.UPDATE[.PATCH...]]][-PRE][+BUILD[-OPT]].
type Version struct {
	original   string
	components []int64
	pre        string
	hasPre     bool
	build      int64
	hasBuild   bool
	opt        string
	hasOpt     bool
}

// NewVersion canonicalizes legacy shapes into JEP 322 form, then parses.
func (e *Ecosystem) NewVersion(s string) (*Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, univers.NewParseError(Name, s, "version string is empty", nil)
	}

	canonical, err := canonicalize(trimmed)
	if err != nil {
		return nil, univers.NewParseError(Name, s, "invalid legacy version shape", err)
	}

	v, err := parseJEP322(canonical)
	if err != nil {
		return nil, univers.NewParseError(Name, s, "invalid JEP 322 version", err)
	}
	v.original = s
	return v, nil
}

// canonicalize converts the legacy "1.F..." and "F[.I]uU" shapes into
// JEP 322 form. Strings that match neither legacy pattern are assumed to
// already be in JEP 322 shape.
func canonicalize(s string) (string, error) {
	if m := legacyUPattern.FindStringSubmatch(s); m != nil {
		feature, interim, update := m[1], m[2], m[3]
		if interim == "" {
			interim = "0"
		}
		return feature + "." + interim + "." + update, nil
	}

	if loc := legacyDottedPrefix.FindStringSubmatchIndex(s); loc != nil {
		feature := submatch(s, loc, 1)
		interim := submatch(s, loc, 2)
		update := submatch(s, loc, 3)
		remainder := s[loc[1]:]

		var build string
		if bloc := legacyTrailingBuild.FindStringSubmatchIndex(remainder); bloc != nil {
			build = submatch(remainder, bloc, 1)
			remainder = remainder[:bloc[0]]
		}

		var opt string
		if remainder != "" {
			if remainder[0] != '-' || len(remainder) < 2 {
				return "", univers.NewParseError(Name, s, "malformed legacy optional tag", nil)
			}
			opt = remainder[1:]
		}

		n, err := strconv.ParseInt(feature, 10, 64)
		if err != nil {
			return "", err
		}
		if n == 0 {
			n = 1
		}

		var sb strings.Builder
		sb.WriteString(strconv.FormatInt(n, 10))
		if interim != "" {
			sb.WriteString("." + interim)
		}
		if update != "" {
			sb.WriteString("." + update)
		}
		if opt != "" {
			sb.WriteString("-" + opt)
		}
		if build != "" {
			b, err := strconv.ParseInt(build, 10, 64)
			if err != nil {
				return "", err
			}
			sb.WriteString("+" + strconv.FormatInt(b, 10))
		}
		return sb.String(), nil
	}

	return s, nil
}

// submatch extracts capture group i from s using the index pairs
// returned by FindStringSubmatchIndex, or "" if the group did not match.
func submatch(s string, loc []int, i int) string {
	start, end := loc[2*i], loc[2*i+1]
	if start < 0 || end < 0 {
		return ""
	}
	return s[start:end]
}

// parseJEP322 parses $VNUM(-$PRE)?(\+($BUILD)?(-$OPT)?)? by splitting on
// the first '+' and, within each half, the first '-'.
func parseJEP322(s string) (*Version, error) {
	var left, right string
	hasPlus := false
	if i := strings.IndexByte(s, '+'); i >= 0 {
		left, right = s[:i], s[i+1:]
		hasPlus = true
	} else {
		left = s
	}

	vnumPart, prePart, hasPre := left, "", false
	if i := strings.IndexByte(left, '-'); i >= 0 {
		vnumPart, prePart, hasPre = left[:i], left[i+1:], true
	}

	if vnumPart == "" {
		return nil, univers.NewParseError(Name, s, "missing version number", nil)
	}
	rawComponents := strings.Split(vnumPart, ".")
	components := make([]int64, len(rawComponents))
	for i, c := range rawComponents {
		n, err := strconv.ParseInt(c, 10, 64)
		if err != nil {
			return nil, univers.NewParseError(Name, s, "non-numeric version component", err)
		}
		components[i] = n
	}

	v := &Version{components: components, pre: prePart, hasPre: hasPre}

	if hasPlus {
		buildPart, optPart, hasOpt := right, "", false
		if i := strings.IndexByte(right, '-'); i >= 0 {
			buildPart, optPart, hasOpt = right[:i], right[i+1:], true
		}
		if buildPart != "" {
			b, err := strconv.ParseInt(buildPart, 10, 64)
			if err != nil {
				return nil, univers.NewParseError(Name, s, "non-numeric build number", err)
			}
			v.build, v.hasBuild = b, true
		}
		if hasOpt {
			v.opt, v.hasOpt = optPart, true
		}
	}

	return v, nil
}

func componentAt(components []int64, i int) int64 {
	if i < len(components) {
		return components[i]
	}
	return 0
}

// Feature is the first version component ($FEATURE).
func (v *Version) Feature() int64 { return componentAt(v.components, 0) }

// Interim is the second version component ($INTERIM).
func (v *Version) Interim() int64 { return componentAt(v.components, 1) }

// Update is the third version component ($UPDATE).
func (v *Version) Update() int64 { return componentAt(v.components, 2) }

// Patch is the fourth version component ($PATCH).
func (v *Version) Patch() int64 { return componentAt(v.components, 3) }

// Components returns every numeric component of $VNUM, in order.
func (v *Version) Components() []int64 {
	out := make([]int64, len(v.components))
	copy(out, v.components)
	return out
}

// Pre returns the pre-release identifier and whether one is present.
func (v *Version) Pre() (string, bool) { return v.pre, v.hasPre }

// Build returns the build number and whether one is present.
func (v *Version) Build() (int64, bool) { return v.build, v.hasBuild }

// Optional returns the optional build tag and whether one is present.
func (v *Version) Optional() (string, bool) { return v.opt, v.hasOpt }

// String returns the exact input text the version was parsed from.
func (v *Version) String() string { return v.original }

// Compare orders first by the numeric $VNUM component list (shorter lists
// zero-padded), then a present pre-release ranks below an absent one
// using SemVer dotted-identifier rules, then build numbers (absent below
// present), then the optional tag (absent below present, lexically).
func (v *Version) Compare(other *Version) int {
	if c := compareComponents(v.components, other.components); c != 0 {
		return c
	}
	if c := comparePreSlot(v.hasPre, v.pre, other.hasPre, other.pre); c != 0 {
		return c
	}
	if c := compareOptionalInt64(v.hasBuild, v.build, other.hasBuild, other.build); c != 0 {
		return c
	}
	return compareOptionalString(v.hasOpt, v.opt, other.hasOpt, other.opt)
}

func compareComponents(a, b []int64) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := compareInt64(componentAt(a, i), componentAt(b, i)); c != 0 {
			return c
		}
	}
	return 0
}

func comparePreSlot(aHas bool, a string, bHas bool, b string) int {
	switch {
	case !aHas && !bHas:
		return 0
	case !aHas:
		return 1
	case !bHas:
		return -1
	default:
		return comparePreRelease(a, b)
	}
}

func comparePreRelease(a, b string) int {
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")
	n := len(aParts)
	if len(bParts) > n {
		n = len(bParts)
	}
	for i := 0; i < n; i++ {
		if i >= len(aParts) {
			return -1
		}
		if i >= len(bParts) {
			return 1
		}
		if c := comparePreIdentifier(aParts[i], bParts[i]); c != 0 {
			return c
		}
	}
	return 0
}

func comparePreIdentifier(a, b string) int {
	aNum, aErr := strconv.ParseInt(a, 10, 64)
	bNum, bErr := strconv.ParseInt(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		return compareInt64(aNum, bNum)
	case aErr == nil && bErr != nil:
		return -1
	case aErr != nil && bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func compareOptionalInt64(aHas bool, a int64, bHas bool, b int64) int {
	switch {
	case aHas && bHas:
		return compareInt64(a, b)
	case aHas && !bHas:
		return 1
	case !aHas && bHas:
		return -1
	default:
		return 0
	}
}

func compareOptionalString(aHas bool, a string, bHas bool, b string) int {
	switch {
	case aHas && bHas:
		return strings.Compare(a, b)
	case aHas && !bHas:
		return 1
	case !aHas && bHas:
		return -1
	default:
		return 0
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

// IsPreRelease reports whether a pre-release identifier is present.
func (v *Version) IsPreRelease() bool { return v.hasPre }
