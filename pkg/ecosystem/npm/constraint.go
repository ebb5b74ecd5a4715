package npm

import (
	"strconv"
	"strings"

	"github.com/alowayed/go-vers/pkg/constraint"
	"github.com/alowayed/go-vers/pkg/interval"
	"github.com/alowayed/go-vers/pkg/univers"
)

// VersionRange is an NPM version constraint: an OR of whitespace-separated
// AND clauses, each clause lowered to a single range over semantic
// versions (spec §4.6).
type VersionRange struct {
	original string
	set      constraint.Constraint[*Version]
}

// NewVersionRange parses rangeStr per the NPM translator grammar: "||"
// splits OR clauses, and each clause is a hyphen range, or a
// whitespace-separated list of caret/tilde/X-range/comparator tokens ANDed
// together.
func (e *Ecosystem) NewVersionRange(rangeStr string) (*VersionRange, error) {
	trimmed := strings.TrimSpace(rangeStr)
	if trimmed == "" {
		return nil, univers.NewParseError(Name, rangeStr, "range string is empty", nil)
	}

	set := constraint.Empty[*Version]()
	for _, clause := range strings.Split(trimmed, "||") {
		r, err := parseClause(strings.TrimSpace(clause), rangeStr)
		if err != nil {
			return nil, err
		}
		set = set.Union(r)
	}
	return &VersionRange{original: rangeStr, set: set}, nil
}

type bound struct {
	op      string // one of "=", "!=", "<", "<=", ">", ">="
	version string
}

func parseClause(clause, original string) (constraint.Constraint[*Version], error) {
	if clause == "" || clause == "*" || strings.EqualFold(clause, "x") {
		return constraint.Any[*Version](), nil
	}

	if strings.Contains(clause, " - ") {
		return parseHyphenRange(clause, original)
	}

	var bounds []bound
	for _, tok := range strings.Fields(clause) {
		expanded, err := expandToken(tok, original)
		if err != nil {
			return constraint.Empty[*Version](), err
		}
		bounds = append(bounds, expanded...)
	}

	return boundsToRange(bounds, original)
}

// expandToken lowers one whitespace-separated token to one or two bounds.
func expandToken(tok, original string) ([]bound, error) {
	if tok == "*" || strings.EqualFold(tok, "x") || strings.EqualFold(tok, "X") {
		return []bound{{op: ">=", version: "0.0.0"}}, nil
	}
	if strings.HasPrefix(tok, "^") {
		return expandCaret(tok[1:], original)
	}
	if strings.HasPrefix(tok, "~") {
		return expandTilde(tok[1:], original)
	}

	op, rest := "=", tok
	for _, candidate := range []string{">=", "<=", "!=", ">", "<", "="} {
		if strings.HasPrefix(tok, candidate) {
			op = candidate
			rest = strings.TrimSpace(tok[len(candidate):])
			break
		}
	}

	if isPartialXRange(rest) {
		if op != "=" {
			return nil, univers.NewParseError(Name, original, "wildcard version only valid after =", nil)
		}
		return expandXRange(rest, original)
	}
	return []bound{{op: op, version: rest}}, nil
}

func isPartialXRange(v string) bool {
	parts := strings.Split(v, ".")
	for _, p := range parts {
		if p == "x" || p == "X" || p == "*" {
			return true
		}
	}
	return false
}

// parseComponents splits a dotted version prefix into up to three integer
// components, stopping at the first wildcard or missing component.
func parseComponents(v string) (major, minor, patch int64, minorOK, patchOK bool, err error) {
	parts := strings.SplitN(v, ".", 3)
	major, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, 0, false, false, univers.NewParseError(Name, v, "invalid major component", err)
	}
	if len(parts) > 1 && parts[1] != "x" && parts[1] != "X" && parts[1] != "*" {
		minor, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return 0, 0, 0, false, false, univers.NewParseError(Name, v, "invalid minor component", err)
		}
		minorOK = true
	}
	if len(parts) > 2 && parts[2] != "x" && parts[2] != "X" && parts[2] != "*" {
		patch, err = strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return 0, 0, 0, false, false, univers.NewParseError(Name, v, "invalid patch component", err)
		}
		patchOK = true
	}
	return major, minor, patch, minorOK, patchOK, nil
}

func expandXRange(v, original string) ([]bound, error) {
	major, minor, _, minorOK, _, err := parseComponents(v)
	if err != nil {
		return nil, err
	}
	if !minorOK {
		return []bound{
			{op: ">=", version: render(major, 0, 0, "")},
			{op: "<", version: render(major+1, 0, 0, "0")},
		}, nil
	}
	return []bound{
		{op: ">=", version: render(major, minor, 0, "")},
		{op: "<", version: render(major, minor+1, 0, "0")},
	}, nil
}

func expandTilde(v, original string) ([]bound, error) {
	major, minor, patch, minorOK, patchOK, err := parseComponents(v)
	if err != nil {
		return nil, err
	}
	if !minorOK {
		return []bound{
			{op: ">=", version: render(major, 0, 0, "")},
			{op: "<", version: render(major+1, 0, 0, "0")},
		}, nil
	}
	if !patchOK {
		return []bound{
			{op: ">=", version: render(major, minor, 0, "")},
			{op: "<", version: render(major, minor+1, 0, "0")},
		}, nil
	}
	return []bound{
		{op: ">=", version: render(major, minor, patch, "")},
		{op: "<", version: render(major, minor+1, 0, "0")},
	}, nil
}

func expandCaret(v, original string) ([]bound, error) {
	major, minor, patch, minorOK, patchOK, err := parseComponents(v)
	if err != nil {
		return nil, err
	}
	if !minorOK {
		return []bound{
			{op: ">=", version: render(major, 0, 0, "")},
			{op: "<", version: render(major+1, 0, 0, "0")},
		}, nil
	}
	if !patchOK {
		if major != 0 {
			return []bound{
				{op: ">=", version: render(major, minor, 0, "")},
				{op: "<", version: render(major+1, 0, 0, "0")},
			}, nil
		}
		return []bound{
			{op: ">=", version: render(major, minor, 0, "")},
			{op: "<", version: render(0, minor+1, 0, "0")},
		}, nil
	}

	switch {
	case major != 0:
		return []bound{
			{op: ">=", version: render(major, minor, patch, "")},
			{op: "<", version: render(major+1, 0, 0, "0")},
		}, nil
	case minor != 0:
		return []bound{
			{op: ">=", version: render(major, minor, patch, "")},
			{op: "<", version: render(0, minor+1, 0, "0")},
		}, nil
	default:
		return []bound{
			{op: ">=", version: render(0, 0, patch, "")},
			{op: "<", version: render(0, 0, patch+1, "0")},
		}, nil
	}
}

func render(major, minor, patch int64, preRelease string) string {
	s := strconv.FormatInt(major, 10) + "." + strconv.FormatInt(minor, 10) + "." + strconv.FormatInt(patch, 10)
	if preRelease != "" {
		s += "-" + preRelease
	}
	return s
}

func parseHyphenRange(clause, original string) (constraint.Constraint[*Version], error) {
	parts := strings.SplitN(clause, " - ", 2)
	if len(parts) != 2 {
		return constraint.Empty[*Version](), univers.NewParseError(Name, original, "malformed hyphen range", nil)
	}
	loMajor, loMinor, loPatch, loMinorOK, loPatchOK, err := parseComponents(strings.TrimSpace(parts[0]))
	if err != nil {
		return constraint.Empty[*Version](), err
	}
	hiMajor, hiMinor, hiPatch, hiMinorOK, hiPatchOK, err := parseComponents(strings.TrimSpace(parts[1]))
	if err != nil {
		return constraint.Empty[*Version](), err
	}
	_ = loMinorOK
	_ = loPatchOK

	loStr := render(loMajor, loMinor, loPatch, "")
	var bounds []bound
	bounds = append(bounds, bound{op: ">=", version: loStr})

	if !hiMinorOK {
		bounds = append(bounds, bound{op: "<", version: render(hiMajor+1, 0, 0, "0")})
	} else if !hiPatchOK {
		bounds = append(bounds, bound{op: "<", version: render(hiMajor, hiMinor+1, 0, "0")})
	} else {
		bounds = append(bounds, bound{op: "<=", version: render(hiMajor, hiMinor, hiPatch, "")})
	}

	return boundsToRange(bounds, original)
}

func boundsToRange(bounds []bound, original string) (constraint.Constraint[*Version], error) {
	if len(bounds) == 0 {
		return constraint.Empty[*Version](), univers.NewParseError(Name, original, "empty constraint clause", nil)
	}
	if len(bounds) > 2 {
		return constraint.Empty[*Version](), univers.NewParseError(Name, original, "at most two operators are allowed in a single clause", nil)
	}
	for _, b := range bounds {
		if b.op == "=" && len(bounds) > 1 {
			return constraint.Empty[*Version](), univers.NewParseError(Name, original, "equality cannot be combined with other operators", nil)
		}
	}

	e := &Ecosystem{}
	if len(bounds) == 1 && bounds[0].op == "=" {
		v, err := e.NewVersion(bounds[0].version)
		if err != nil {
			return constraint.Empty[*Version](), univers.NewParseError(Name, original, "invalid version", err)
		}
		return constraint.New(interval.Exactly(v)), nil
	}
	if len(bounds) == 1 && bounds[0].op == "!=" {
		v, err := e.NewVersion(bounds[0].version)
		if err != nil {
			return constraint.Empty[*Version](), univers.NewParseError(Name, original, "invalid version", err)
		}
		return constraint.New(interval.Exactly(v)).Complement(), nil
	}

	var lo, hi *Version
	loInc, hiInc := false, false
	for _, b := range bounds {
		v, err := e.NewVersion(b.version)
		if err != nil {
			return constraint.Empty[*Version](), univers.NewParseError(Name, original, "invalid version", err)
		}
		switch b.op {
		case ">=":
			lo, loInc = v, true
		case ">":
			lo, loInc = v, false
		case "<=":
			hi, hiInc = v, true
		case "<":
			hi, hiInc = v, false
		default:
			return constraint.Empty[*Version](), univers.NewParseError(Name, original, "operator "+b.op+" cannot be combined in a bounded clause", nil)
		}
	}

	switch {
	case lo == nil:
		return constraint.New(interval.AtMost(hi, hiInc)), nil
	case hi == nil:
		return constraint.New(interval.AtLeast(lo, loInc)), nil
	default:
		r, ok := interval.New(&lo, loInc, &hi, hiInc)
		if !ok {
			return constraint.Empty[*Version](), nil
		}
		return constraint.New(r), nil
	}
}

// Contains reports whether version satisfies the range.
func (vr *VersionRange) Contains(version *Version) bool {
	return vr.set.Allows(version)
}

// String returns the exact input text the range was parsed from.
func (vr *VersionRange) String() string { return vr.original }
