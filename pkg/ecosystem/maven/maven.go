// Package maven implements the Maven version scheme (spec §4.4, C5): a
// free-form tokenizer with a qualifier table and min/max sentinels, and the
// comma-disjunction bracket constraint dialect lowered to the uniform
// constraint algebra.
package maven

// Name is the ecosystem identifier used in registries and CLI dispatch.
const Name = "maven"

// Ecosystem creates Maven versions and constraints.
type Ecosystem struct{}

func (e *Ecosystem) Name() string { return Name }
