// Package gem implements the RubyGems version scheme (spec §4.7, C8): a
// dot/dash tokenizer where letter groups rank below numbers, plus the
// next_version helper the pessimistic constraint operator is built on.
package gem

import (
	"strconv"
	"strings"

	"github.com/alowayed/go-vers/pkg/univers"
)

// Name is the ecosystem identifier used in registries and CLI dispatch.
const Name = "gem"

// Ecosystem creates RubyGems versions and constraints.
type Ecosystem struct{}

func (e *Ecosystem) Name() string { return Name }

type component struct {
	isNumeric bool
	num       int64
	str       string
}

// Version is a parsed RubyGems version: an ordered list of numeric and
// letter-group components.
type Version struct {
	original   string
	components []component
}

// NewVersion tokenizes s per the RubyGems grammar of §4.7: split on '.' and
// '-', where a '-' is itself rewritten to the ".pre." separator so any
// letter group anywhere marks the version as a pre-release.
func (e *Ecosystem) NewVersion(s string) (*Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, univers.NewParseError(Name, s, "version string is empty", nil)
	}

	rewritten := strings.ReplaceAll(trimmed, "-", ".pre.")
	var comps []component
	for _, tok := range strings.Split(rewritten, ".") {
		if tok == "" {
			continue
		}
		if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
			comps = append(comps, component{isNumeric: true, num: n})
		} else {
			comps = append(comps, component{str: strings.ToLower(tok)})
		}
	}
	if len(comps) == 0 {
		return nil, univers.NewParseError(Name, s, "no version components found", nil)
	}

	return &Version{original: s, components: canonicalize(comps)}, nil
}

// canonicalize trims trailing ".0" segments, except a trailing zero that
// immediately follows a letter group (e.g. "1.0.pre.rc.0" keeps its final
// zero since it qualifies the pre-release, not the release number).
func canonicalize(comps []component) []component {
	for len(comps) > 1 {
		last := comps[len(comps)-1]
		if !last.isNumeric || last.num != 0 {
			break
		}
		prev := comps[len(comps)-2]
		if !prev.isNumeric {
			break
		}
		comps = comps[:len(comps)-1]
	}
	return comps
}

// String returns the exact input text the version was parsed from.
func (v *Version) String() string { return v.original }

// Compare orders components left to right: numeric-vs-numeric compares
// numerically, letters-vs-letters compares lexically (ASCII), and a letter
// group always ranks below a number at the same position. A missing
// trailing component pads as numeric zero.
func (v *Version) Compare(other *Version) int {
	n := len(v.components)
	if len(other.components) > n {
		n = len(other.components)
	}
	for i := 0; i < n; i++ {
		a := componentAt(v.components, i)
		b := componentAt(other.components, i)
		if c := compareComponent(a, b); c != 0 {
			return c
		}
	}
	return 0
}

func componentAt(comps []component, i int) component {
	if i < len(comps) {
		return comps[i]
	}
	return component{isNumeric: true, num: 0}
}

func compareComponent(a, b component) int {
	switch {
	case a.isNumeric && b.isNumeric:
		return compareInt64(a.num, b.num)
	case a.isNumeric && !b.isNumeric:
		return 1 // letters rank below numbers
	case !a.isNumeric && b.isNumeric:
		return -1
	default:
		return strings.Compare(a.str, b.str)
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

// IsPreRelease reports whether any component is a letter group.
func (v *Version) IsPreRelease() bool {
	for _, c := range v.components {
		if !c.isNumeric {
			return true
		}
	}
	return false
}

// NextVersion drops the trailing segment of the numeric prefix and
// increments the new last segment (e.g. "5.3.1" -> "5.4"). The numeric
// prefix is taken from the segments as written, before trailing zeros are
// trimmed, so "1.2.0" -> "1.3". It underlies the pessimistic constraint
// operator's upper bound and ignores any pre-release components.
func (v *Version) NextVersion() (*Version, error) {
	rewritten := strings.ReplaceAll(strings.TrimSpace(v.original), "-", ".pre.")
	var numeric []int64
	for _, tok := range strings.Split(rewritten, ".") {
		if tok == "" {
			continue
		}
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			break
		}
		numeric = append(numeric, n)
	}
	if len(numeric) == 0 {
		return nil, univers.NewParseError(Name, v.original, "no numeric prefix to advance", nil)
	}
	if len(numeric) == 1 {
		numeric[0]++
	} else {
		numeric = numeric[:len(numeric)-1]
		numeric[len(numeric)-1]++
	}

	parts := make([]string, len(numeric))
	for i, n := range numeric {
		parts[i] = strconv.FormatInt(n, 10)
	}
	e := &Ecosystem{}
	return e.NewVersion(strings.Join(parts, "."))
}
