// Package constraint implements the disjoint-union-of-intervals algebra
// (§4.2) that every ecosystem's constraint dialect is lowered to: a sorted,
// pairwise non-overlapping, non-adjacent list of interval.Range values and
// the set operations over it.
package constraint

import (
	"sort"
	"strings"

	"github.com/alowayed/go-vers/pkg/interval"
)

// Constraint is a disjoint, ordered union of interval.Range values: §3's
// VersionConstraint. The zero value is EMPTY.
type Constraint[V interval.Comparable[V]] struct {
	ranges []interval.Range[V]
	weak   bool
}

// New builds a Constraint from a set of ranges, sorting and coalescing
// overlapping or adjacent ranges as it goes. The result is never weak; use
// Weak to mark a constraint built this way as soft.
func New[V interval.Comparable[V]](ranges ...interval.Range[V]) Constraint[V] {
	return Constraint[V]{ranges: normalize(ranges)}
}

// Any returns the constraint that allows every version.
func Any[V interval.Comparable[V]]() Constraint[V] {
	return Constraint[V]{ranges: []interval.Range[V]{interval.Unbounded[V]()}}
}

// Empty returns the constraint that allows no version.
func Empty[V interval.Comparable[V]]() Constraint[V] {
	return Constraint[V]{}
}

func normalize[V interval.Comparable[V]](ranges []interval.Range[V]) []interval.Range[V] {
	if len(ranges) == 0 {
		return nil
	}
	sorted := append([]interval.Range[V](nil), ranges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return interval.Compare(sorted[i], sorted[j]) < 0
	})
	out := sorted[:1:1]
	for _, r := range sorted[1:] {
		last := out[len(out)-1]
		if last.AllowsAny(r) || last.IsAdjacent(r) {
			out[len(out)-1] = last.Merge(r)
		} else {
			out = append(out, r)
		}
	}
	return out
}

// Weak returns a copy of c marked as a soft constraint: a hint to
// downstream resolvers that it may be overridden. It affects neither
// ordering nor set semantics.
func (c Constraint[V]) Weak() Constraint[V] {
	c.ranges = append([]interval.Range[V](nil), c.ranges...)
	c.weak = true
	return c
}

// IsWeak reports whether c is marked as a soft constraint.
func (c Constraint[V]) IsWeak() bool { return c.weak }

// IsEmpty reports whether c allows no version.
func (c Constraint[V]) IsEmpty() bool { return len(c.ranges) == 0 }

// IsAny reports whether c allows every version.
func (c Constraint[V]) IsAny() bool {
	return len(c.ranges) == 1 && c.ranges[0].IsUnbounded()
}

// Ranges returns the sorted, disjoint ranges that make up c.
func (c Constraint[V]) Ranges() []interval.Range[V] {
	return append([]interval.Range[V](nil), c.ranges...)
}

// Allows reports whether v falls within any range of c.
func (c Constraint[V]) Allows(v V) bool {
	for _, r := range c.ranges {
		if r.Allows(v) {
			return true
		}
	}
	return false
}

// AllowsAll reports whether every version other allows is also allowed by
// c: a linear two-pointer sweep that advances other's pointer whenever the
// current range of c covers the current range of other.
func (c Constraint[V]) AllowsAll(other Constraint[V]) bool {
	i, j := 0, 0
	for j < len(other.ranges) {
		if i >= len(c.ranges) {
			return false
		}
		if c.ranges[i].AllowsAll(other.ranges[j]) {
			j++
			continue
		}
		i++
	}
	return true
}

// AllowsAny reports whether c and other share at least one version.
func (c Constraint[V]) AllowsAny(other Constraint[V]) bool {
	i, j := 0, 0
	for i < len(c.ranges) && j < len(other.ranges) {
		a, b := c.ranges[i], other.ranges[j]
		if a.AllowsAny(b) {
			return true
		}
		if a.StrictlyLower(b) {
			i++
		} else {
			j++
		}
	}
	return false
}

// Intersect returns the set of versions allowed by both c and other.
func (c Constraint[V]) Intersect(other Constraint[V]) Constraint[V] {
	var out []interval.Range[V]
	i, j := 0, 0
	for i < len(c.ranges) && j < len(other.ranges) {
		a, b := c.ranges[i], other.ranges[j]
		if r, ok := a.Intersect(b); ok {
			out = append(out, r)
		}
		if a.CompareMax(b) <= 0 {
			i++
		} else {
			j++
		}
	}
	return Constraint[V]{ranges: out}
}

// Union returns the set of versions allowed by either c or other.
func (c Constraint[V]) Union(other Constraint[V]) Constraint[V] {
	all := append(append([]interval.Range[V](nil), c.ranges...), other.ranges...)
	return Constraint[V]{ranges: normalize(all)}
}

// Difference returns the versions allowed by c but not by other.
func (c Constraint[V]) Difference(other Constraint[V]) Constraint[V] {
	if len(other.ranges) == 0 {
		return Constraint[V]{ranges: append([]interval.Range[V](nil), c.ranges...)}
	}
	if len(c.ranges) == 0 {
		return Constraint[V]{}
	}

	var out []interval.Range[V]
	si, oi := 0, 0
	current := c.ranges[0]
	hasCurrent := true

	for hasCurrent {
		if oi >= len(other.ranges) {
			out = append(out, current)
			si++
			for si < len(c.ranges) {
				out = append(out, c.ranges[si])
				si++
			}
			break
		}

		o := other.ranges[oi]
		switch {
		case o.StrictlyLower(current):
			oi++

		case o.StrictlyHigher(current):
			out = append(out, current)
			si++
			if si >= len(c.ranges) {
				hasCurrent = false
				break
			}
			current = c.ranges[si]

		default:
			rem := current.Difference(o)
			switch len(rem) {
			case 0:
				// other fully covers current.
				si++
				if si >= len(c.ranges) {
					hasCurrent = false
					break
				}
				current = c.ranges[si]
			case 1:
				current = rem[0]
				if current.CompareMax(o) <= 0 {
					out = append(out, current)
					si++
					if si >= len(c.ranges) {
						hasCurrent = false
						break
					}
					current = c.ranges[si]
				} else {
					oi++
				}
			case 2:
				out = append(out, rem[0])
				current = rem[1]
				oi++
			}
		}
	}

	return Constraint[V]{ranges: normalize(out)}
}

// Complement returns the versions not allowed by c.
func (c Constraint[V]) Complement() Constraint[V] {
	return Any[V]().Difference(c)
}

// Equal reports whether c and other allow exactly the same versions.
func (c Constraint[V]) Equal(other Constraint[V]) bool {
	if len(c.ranges) != len(other.ranges) {
		return false
	}
	for i := range c.ranges {
		if interval.Compare(c.ranges[i], other.ranges[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders c in the canonical form of §6: the empty constraint is
// "<empty>"; otherwise it is the comma-separated list of its ranges.
func (c Constraint[V]) String() string {
	if c.IsEmpty() {
		return "<empty>"
	}
	parts := make([]string, len(c.ranges))
	for i, r := range c.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
