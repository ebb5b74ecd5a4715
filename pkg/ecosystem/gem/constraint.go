package gem

import (
	"strings"

	"github.com/alowayed/go-vers/pkg/constraint"
	"github.com/alowayed/go-vers/pkg/interval"
	"github.com/alowayed/go-vers/pkg/univers"
)

// VersionRange is a RubyGems version constraint: the AND of one or more
// comma-separated operator clauses, lowered to the uniform interval
// algebra (spec §4.7).
type VersionRange struct {
	original string
	set      constraint.Constraint[*Version]
}

// NewVersionRange ANDs the comma-separated clauses of rangeStr. Each clause
// is one of =, !=, <, <=, >, >=, ~>, or a bare version treated as =.
func (e *Ecosystem) NewVersionRange(rangeStr string) (*VersionRange, error) {
	trimmed := strings.TrimSpace(rangeStr)
	if trimmed == "" {
		return nil, univers.NewParseError(Name, rangeStr, "range string is empty", nil)
	}

	set := constraint.Any[*Version]()
	for _, clause := range strings.Split(trimmed, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		r, err := parseClause(e, clause, rangeStr)
		if err != nil {
			return nil, err
		}
		set = set.Intersect(r)
	}
	return &VersionRange{original: rangeStr, set: set}, nil
}

func parseClause(e *Ecosystem, clause, original string) (constraint.Constraint[*Version], error) {
	if strings.HasPrefix(clause, "~>") {
		return parsePessimistic(e, strings.TrimSpace(clause[2:]), original)
	}

	for _, op := range []string{">=", "<=", "!=", ">", "<", "="} {
		if strings.HasPrefix(clause, op) {
			vs := strings.TrimSpace(clause[len(op):])
			if vs == "" {
				return constraint.Empty[*Version](), univers.NewParseError(Name, original, "operator "+op+" requires a version", nil)
			}
			v, err := e.NewVersion(vs)
			if err != nil {
				return constraint.Empty[*Version](), univers.NewParseError(Name, original, "invalid version", err)
			}
			return operatorConstraint(op, v), nil
		}
	}

	v, err := e.NewVersion(clause)
	if err != nil {
		return constraint.Empty[*Version](), univers.NewParseError(Name, original, "invalid version", err)
	}
	return operatorConstraint("=", v), nil
}

func operatorConstraint(op string, v *Version) constraint.Constraint[*Version] {
	switch op {
	case "=":
		return constraint.New(interval.Exactly(v))
	case "!=":
		return constraint.New(interval.Exactly(v)).Complement()
	case ">":
		return constraint.New(interval.AtLeast(v, false))
	case ">=":
		return constraint.New(interval.AtLeast(v, true))
	case "<":
		return constraint.New(interval.AtMost(v, false))
	case "<=":
		return constraint.New(interval.AtMost(v, true))
	default:
		return constraint.Empty[*Version]()
	}
}

// parsePessimistic lowers "~>X" to [X, next_version(X)+".ZZZ"): at least X,
// strictly below the next segment, with the ".ZZZ" tail excluding
// pre-releases of that next segment.
func parsePessimistic(e *Ecosystem, vs, original string) (constraint.Constraint[*Version], error) {
	if vs == "" {
		return constraint.Empty[*Version](), univers.NewParseError(Name, original, "pessimistic constraint requires a version", nil)
	}
	lo, err := e.NewVersion(vs)
	if err != nil {
		return constraint.Empty[*Version](), univers.NewParseError(Name, original, "invalid version", err)
	}
	next, err := lo.NextVersion()
	if err != nil {
		return constraint.Empty[*Version](), univers.NewParseError(Name, original, "cannot compute next_version", err)
	}
	hi, err := e.NewVersion(next.String() + ".ZZZ")
	if err != nil {
		return constraint.Empty[*Version](), univers.NewParseError(Name, original, "cannot synthesize upper bound", err)
	}

	r, ok := interval.New(&lo, true, &hi, false)
	if !ok {
		return constraint.Empty[*Version](), univers.NewParseError(Name, original, "pessimistic constraint is empty", nil)
	}
	return constraint.New(r), nil
}

// Contains reports whether version satisfies the range.
func (vr *VersionRange) Contains(version *Version) bool {
	return vr.set.Allows(version)
}

// String returns the exact input text the range was parsed from.
func (vr *VersionRange) String() string { return vr.original }
