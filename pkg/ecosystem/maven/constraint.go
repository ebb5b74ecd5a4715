package maven

import (
	"strings"

	"github.com/alowayed/go-vers/pkg/constraint"
	"github.com/alowayed/go-vers/pkg/interval"
	"github.com/alowayed/go-vers/pkg/univers"
)

// VersionRange is a Maven version constraint: a comma-disjunction of
// bracketed lo/hi groups lowered to the uniform interval algebra, or a
// single undecorated "soft" version recorded as a weak constraint.
type VersionRange struct {
	original string
	set      constraint.Constraint[*Version]
}

// NewVersionRange parses rangeStr per Maven's bracket-range grammar
// (spec §4.4): "[1.0,2.0)", "(,1.0]", "[1.0,)", a single exact "[1.0]", a
// comma-joined union of any of those, or a bare version treated as a weak
// recommendation.
func (e *Ecosystem) NewVersionRange(rangeStr string) (*VersionRange, error) {
	trimmed := strings.TrimSpace(rangeStr)
	if trimmed == "" {
		return nil, univers.NewParseError(Name, rangeStr, "range string is empty", nil)
	}

	if !strings.ContainsAny(trimmed, "[(") {
		v, err := e.NewVersion(trimmed)
		if err != nil {
			return nil, univers.NewParseError(Name, rangeStr, "invalid version", err)
		}
		r := interval.AtLeast(v, true)
		return &VersionRange{original: rangeStr, set: constraint.New(r).Weak()}, nil
	}

	groups := univers.SplitTopLevel(trimmed, ',', "[(", "])")
	ranges, err := parseGroups(e, groups, rangeStr)
	if err != nil {
		return nil, err
	}
	return &VersionRange{original: rangeStr, set: constraint.New(ranges...)}, nil
}

// parseGroups parses each group that SplitTopLevel produced. SplitTopLevel
// splits only on depth-0 commas, so a lo/hi pair like "[1.0,2.0)" already
// arrives as one group; a group that opens a bracket without closing it is
// joined with the next fragment, if there is one, before it is parsed.
func parseGroups(e *Ecosystem, groups []string, original string) ([]interval.Range[*Version], error) {
	var ranges []interval.Range[*Version]
	i := 0
	for i < len(groups) {
		g := strings.TrimSpace(groups[i])
		if g == "" {
			return nil, univers.NewParseError(Name, original, "empty range segment", nil)
		}
		opensOnly := strings.ContainsAny(g, "[(") && !strings.ContainsAny(g, "])")
		if opensOnly && i+1 < len(groups) {
			g = g + "," + strings.TrimSpace(groups[i+1])
			i++
		}
		r, err := parseBracketGroup(e, g, original)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
		i++
	}
	return ranges, nil
}

func parseBracketGroup(e *Ecosystem, g, original string) (interval.Range[*Version], error) {
	if len(g) < 2 {
		return interval.Range[*Version]{}, univers.NewParseError(Name, original, "malformed bracket range", nil)
	}
	open := g[0]
	close := g[len(g)-1]
	if (open != '[' && open != '(') || (close != ']' && close != ')') {
		return interval.Range[*Version]{}, univers.NewParseError(Name, original, "malformed bracket range", nil)
	}
	inner := g[1 : len(g)-1]
	minInc := open == '['
	maxInc := close == ']'

	parts := strings.SplitN(inner, ",", 2)
	if len(parts) == 1 {
		// "[1.0]" exact version; Maven only allows this with matching inclusive brackets.
		loStr := strings.TrimSpace(parts[0])
		if loStr == "" {
			return interval.Range[*Version]{}, univers.NewParseError(Name, original, "empty exact version range", nil)
		}
		if !minInc || !maxInc {
			return interval.Range[*Version]{}, univers.NewParseError(Name, original, "a single version must be enclosed in []", nil)
		}
		// "[1.*]" expands to [1.min, 1.max].
		if prefix, ok := strings.CutSuffix(loStr, ".*"); ok {
			lo, err := e.NewVersion(prefix + ".min")
			if err != nil {
				return interval.Range[*Version]{}, univers.NewParseError(Name, original, "invalid version", err)
			}
			hi, err := e.NewVersion(prefix + ".max")
			if err != nil {
				return interval.Range[*Version]{}, univers.NewParseError(Name, original, "invalid version", err)
			}
			r, _ := interval.New(&lo, true, &hi, true)
			return r, nil
		}
		v, err := e.NewVersion(loStr)
		if err != nil {
			return interval.Range[*Version]{}, univers.NewParseError(Name, original, "invalid version", err)
		}
		return interval.Exactly(v), nil
	}

	loStr := strings.TrimSpace(parts[0])
	hiStr := strings.TrimSpace(parts[1])

	var lo, hi *Version
	var err error
	if loStr != "" {
		lo, err = e.NewVersion(loStr)
		if err != nil {
			return interval.Range[*Version]{}, univers.NewParseError(Name, original, "invalid lower bound", err)
		}
	}
	if hiStr != "" {
		hi, err = e.NewVersion(hiStr)
		if err != nil {
			return interval.Range[*Version]{}, univers.NewParseError(Name, original, "invalid upper bound", err)
		}
	}

	switch {
	case lo == nil && hi == nil:
		return interval.Unbounded[*Version](), nil
	case lo == nil:
		return interval.AtMost(hi, maxInc), nil
	case hi == nil:
		return interval.AtLeast(lo, minInc), nil
	default:
		r, ok := interval.New(&lo, minInc, &hi, maxInc)
		if !ok {
			return interval.Range[*Version]{}, univers.NewParseError(Name, original, "empty or inverted range", nil)
		}
		return r, nil
	}
}

// Contains reports whether version satisfies the range.
func (vr *VersionRange) Contains(version *Version) bool {
	return vr.set.Allows(version)
}

// String returns the exact input text the range was parsed from.
func (vr *VersionRange) String() string { return vr.original }
