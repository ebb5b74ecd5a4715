// Package npm implements the NPM constraint dialect (spec §4.6, C7): it
// operates directly on semantic versions and lowers hyphen/caret/tilde/
// X-range syntax to the uniform constraint algebra.
package npm

// Name is the ecosystem identifier used in registries and CLI dispatch.
const Name = "npm"

// Ecosystem creates NPM versions (semantic versions) and constraints.
type Ecosystem struct{}

func (e *Ecosystem) Name() string { return Name }
