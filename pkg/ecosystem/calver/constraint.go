package calver

import (
	"strings"

	"github.com/alowayed/go-vers/pkg/constraint"
	"github.com/alowayed/go-vers/pkg/interval"
	"github.com/alowayed/go-vers/pkg/univers"
)

// VersionRange is a disjoint union of Calendar version intervals.
type VersionRange struct {
	original string
	set      constraint.Constraint[*Version]
}

// NewVersionRange parses a comma-separated AND of comparison clauses
// (=, !=, <, <=, >, >=) against a bare version.
func (e *Ecosystem) NewVersionRange(s string) (*VersionRange, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, univers.NewParseError(Name, s, "version range is empty", nil)
	}

	set := constraint.Any[*Version]()
	for _, clause := range strings.Split(trimmed, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			return nil, univers.NewParseError(Name, s, "empty clause", nil)
		}
		c, err := e.parseClause(clause)
		if err != nil {
			return nil, univers.NewParseError(Name, s, "invalid clause", err)
		}
		set = set.Intersect(c)
	}

	return &VersionRange{original: s, set: set}, nil
}

func (e *Ecosystem) parseClause(clause string) (constraint.Constraint[*Version], error) {
	ops := []string{"<=", ">=", "!=", "<", ">", "="}
	for _, op := range ops {
		if strings.HasPrefix(clause, op) {
			raw := strings.TrimSpace(clause[len(op):])
			v, err := e.NewVersion(raw)
			if err != nil {
				return constraint.Empty[*Version](), err
			}
			return operatorConstraint(op, v), nil
		}
	}

	v, err := e.NewVersion(clause)
	if err != nil {
		return constraint.Empty[*Version](), err
	}
	return constraint.New(interval.Exactly(v)), nil
}

func operatorConstraint(op string, v *Version) constraint.Constraint[*Version] {
	switch op {
	case "=":
		return constraint.New(interval.Exactly(v))
	case "!=":
		return constraint.New(interval.Exactly(v)).Complement()
	case "<":
		return constraint.New(interval.AtMost(v, false))
	case "<=":
		return constraint.New(interval.AtMost(v, true))
	case ">":
		return constraint.New(interval.AtLeast(v, false))
	case ">=":
		return constraint.New(interval.AtLeast(v, true))
	}
	return constraint.Empty[*Version]()
}

// Contains reports whether version satisfies every clause of the range.
func (r *VersionRange) Contains(version *Version) bool {
	return r.set.Allows(version)
}

// String returns the exact input text the range was parsed from.
func (r *VersionRange) String() string { return r.original }
