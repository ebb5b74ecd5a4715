package gradle

import (
	"strconv"
	"strings"

	"github.com/alowayed/go-vers/pkg/constraint"
	"github.com/alowayed/go-vers/pkg/interval"
	"github.com/alowayed/go-vers/pkg/univers"
)

// VersionRange is a Gradle version constraint: Maven-like brackets, ISO
// notation, single-point forms, the "N.+" dynamic suffix, or the plain "+"
// wildcard, lowered to the uniform constraint algebra (spec §4.5).
type VersionRange struct {
	original string
	set      constraint.Constraint[*Version]
}

// NewVersionRange parses rangeStr per Gradle's constraint grammar.
func (e *Ecosystem) NewVersionRange(rangeStr string) (*VersionRange, error) {
	trimmed := strings.TrimSpace(rangeStr)
	if trimmed == "" {
		return nil, univers.NewParseError(Name, rangeStr, "range string is empty", nil)
	}

	if trimmed == "+" {
		return &VersionRange{original: rangeStr, set: constraint.Any[*Version]()}, nil
	}

	if strings.HasSuffix(trimmed, ".+") {
		r, err := parseDynamicSuffix(e, trimmed, rangeStr)
		if err != nil {
			return nil, err
		}
		return &VersionRange{original: rangeStr, set: constraint.New(r)}, nil
	}

	if !strings.ContainsAny(trimmed, "[(]") && !strings.HasSuffix(trimmed, "!!") {
		v, err := e.NewVersion(trimmed)
		if err != nil {
			return nil, univers.NewParseError(Name, rangeStr, "invalid version", err)
		}
		return &VersionRange{original: rangeStr, set: constraint.New(interval.AtLeast(v, true))}, nil
	}

	groups := splitGroups(trimmed)
	var ranges []interval.Range[*Version]
	for _, g := range groups {
		r, err := parseGroup(e, strings.TrimSpace(g), rangeStr)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return &VersionRange{original: rangeStr, set: constraint.New(ranges...)}, nil
}

// splitGroups splits on top-level commas, toggling an "inside a bracket
// group" flag on every bracket character encountered: a group's opening
// and closing markers always come in a pair, whichever direction they
// point (Maven-style or the reversed ISO notation).
func splitGroups(s string) []string {
	var parts []string
	var cur strings.Builder
	inGroup := false
	for _, r := range s {
		switch {
		case r == '[' || r == '(' || r == ']' || r == ')':
			inGroup = !inGroup
			cur.WriteRune(r)
		case r == ',' && !inGroup:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

func parseDynamicSuffix(e *Ecosystem, s, original string) (interval.Range[*Version], error) {
	prefix := strings.TrimSuffix(s, ".+")
	parts := strings.Split(prefix, ".")
	last := parts[len(parts)-1]
	n, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return interval.Range[*Version]{}, univers.NewParseError(Name, original, "component before + must be numeric", err)
	}

	loStr := prefix + ".0"
	bumped := append([]string(nil), parts...)
	bumped[len(bumped)-1] = strconv.FormatInt(n+1, 10)
	hiStr := strings.Join(bumped, ".")

	lo, err := e.NewVersion(loStr)
	if err != nil {
		return interval.Range[*Version]{}, univers.NewParseError(Name, original, "invalid lower bound", err)
	}
	hi, err := e.NewVersion(hiStr)
	if err != nil {
		return interval.Range[*Version]{}, univers.NewParseError(Name, original, "invalid upper bound", err)
	}
	r, ok := interval.New(&lo, true, &hi, false)
	if !ok {
		return interval.Range[*Version]{}, univers.NewParseError(Name, original, "empty dynamic range", nil)
	}
	return r, nil
}

func parseGroup(e *Ecosystem, g, original string) (interval.Range[*Version], error) {
	if strings.HasSuffix(g, "!!") {
		v, err := e.NewVersion(strings.TrimSuffix(g, "!!"))
		if err != nil {
			return interval.Range[*Version]{}, univers.NewParseError(Name, original, "invalid version", err)
		}
		return interval.Exactly(v), nil
	}

	if len(g) < 2 {
		return interval.Range[*Version]{}, univers.NewParseError(Name, original, "malformed range group", nil)
	}
	open := g[0]
	closeCh := g[len(g)-1]

	var minInc bool
	switch open {
	case '[':
		minInc = true
	case '(', ']':
		minInc = false
	default:
		return interval.Range[*Version]{}, univers.NewParseError(Name, original, "malformed range group", nil)
	}

	var maxInc bool
	switch closeCh {
	case ']':
		maxInc = true
	case ')', '[':
		maxInc = false
	default:
		return interval.Range[*Version]{}, univers.NewParseError(Name, original, "malformed range group", nil)
	}

	inner := g[1 : len(g)-1]
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) == 1 {
		loStr := strings.TrimSpace(parts[0])
		if loStr == "" {
			return interval.Range[*Version]{}, univers.NewParseError(Name, original, "empty exact version range", nil)
		}
		v, err := e.NewVersion(loStr)
		if err != nil {
			return interval.Range[*Version]{}, univers.NewParseError(Name, original, "invalid version", err)
		}
		return interval.Exactly(v), nil
	}

	loStr, hiStr := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
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
