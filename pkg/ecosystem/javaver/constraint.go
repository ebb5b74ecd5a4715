package javaver

import (
	"strconv"
	"strings"

	"github.com/alowayed/go-vers/pkg/constraint"
	"github.com/alowayed/go-vers/pkg/interval"
	"github.com/alowayed/go-vers/pkg/univers"
)

// VersionRange is a disjoint union of Java language version intervals.
type VersionRange struct {
	original string
	set      constraint.Constraint[*Version]
}

// NewVersionRange parses a comma-separated union of bracket groups
// ("[a,b]", "(a,b)", mixed inclusivity, unbounded either side, "[v]"), or
// a bare version lowered to "[v, nextFeature(v))".
func (e *Ecosystem) NewVersionRange(s string) (*VersionRange, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, univers.NewParseError(Name, s, "version range is empty", nil)
	}

	if !strings.ContainsAny(trimmed, "[(") {
		v, err := e.NewVersion(trimmed)
		if err != nil {
			return nil, univers.NewParseError(Name, s, "invalid bare version", err)
		}
		hi := nextFeature(v)
		r, ok := interval.New(&v, true, &hi, false)
		if !ok {
			return nil, univers.NewParseError(Name, s, "empty range after lowering bare version", nil)
		}
		return &VersionRange{original: s, set: constraint.New(r)}, nil
	}

	groups := univers.SplitTopLevel(trimmed, ',', "[(", "])")
	set := constraint.Empty[*Version]()
	i := 0
	for i < len(groups) {
		group := strings.TrimSpace(groups[i])
		if group == "" {
			return nil, univers.NewParseError(Name, s, "empty bracket group", nil)
		}
		// SplitTopLevel keeps a bracketed lo,hi pair in one group; a group
		// that opens a bracket without closing it is joined with the next
		// fragment, if there is one, before parsing.
		opensOnly := strings.ContainsAny(group, "[(") && !strings.ContainsAny(group, "])")
		if opensOnly && i+1 < len(groups) {
			group = group + "," + strings.TrimSpace(groups[i+1])
			i++
		}
		r, err := e.parseGroup(group)
		if err != nil {
			return nil, univers.NewParseError(Name, s, "invalid bracket group", err)
		}
		set = set.Union(constraint.New(r))
		i++
	}

	return &VersionRange{original: s, set: set}, nil
}

// nextFeature bumps the feature component by one, zeroing the rest,
// except the legacy "1.0" idiom (JDK 1.0, which canonicalizes to the
// bare feature "1" and so can't be told apart from a JEP 322 "1" by its
// parsed components) which bumps the interim component instead:
// [1.0, 1.1).
func nextFeature(v *Version) *Version {
	if v.original == "1.0" {
		return &Version{original: "1.1", components: []int64{1, 1}}
	}
	return &Version{
		original:   strconv.FormatInt(v.Feature()+1, 10),
		components: []int64{v.Feature() + 1},
	}
}

func (e *Ecosystem) parseGroup(group string) (interval.Range[*Version], error) {
	if len(group) < 2 {
		return interval.Range[*Version]{}, univers.NewParseError(Name, group, "bracket group too short", nil)
	}

	openCh := group[0]
	closeCh := group[len(group)-1]
	if (openCh != '[' && openCh != '(') || (closeCh != ']' && closeCh != ')') {
		return interval.Range[*Version]{}, univers.NewParseError(Name, group, "malformed bracket group", nil)
	}

	inner := strings.TrimSpace(group[1 : len(group)-1])
	parts := strings.SplitN(inner, ",", 2)

	if len(parts) == 1 {
		v, err := e.NewVersion(strings.TrimSpace(parts[0]))
		if err != nil {
			return interval.Range[*Version]{}, err
		}
		return interval.Exactly(v), nil
	}

	loStr := strings.TrimSpace(parts[0])
	hiStr := strings.TrimSpace(parts[1])
	minIncluded := openCh == '['
	maxIncluded := closeCh == ']'

	var lo, hi *Version
	if loStr != "" {
		v, err := e.NewVersion(loStr)
		if err != nil {
			return interval.Range[*Version]{}, err
		}
		lo = v
	}
	if hiStr != "" {
		v, err := e.NewVersion(hiStr)
		if err != nil {
			return interval.Range[*Version]{}, err
		}
		hi = v
	}

	if lo == nil && hi == nil {
		return interval.Unbounded[*Version](), nil
	}
	if lo == nil {
		return interval.AtMost(hi, maxIncluded), nil
	}
	if hi == nil {
		return interval.AtLeast(lo, minIncluded), nil
	}
	r, ok := interval.New(&lo, minIncluded, &hi, maxIncluded)
	if !ok {
		return interval.Range[*Version]{}, univers.NewParseError(Name, group, "lower bound exceeds upper bound", nil)
	}
	return r, nil
}

// Contains reports whether version falls within the range.
func (r *VersionRange) Contains(version *Version) bool {
	return r.set.Allows(version)
}

// String returns the exact input text the range was parsed from.
func (r *VersionRange) String() string { return r.original }
