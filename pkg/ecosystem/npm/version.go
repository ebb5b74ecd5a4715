package npm

import "github.com/alowayed/go-vers/pkg/ecosystem/semver"

// Version is the semantic version NPM packages are versioned with.
type Version = semver.Version

// NewVersion parses s as a semantic version (spec §4.3).
func (e *Ecosystem) NewVersion(s string) (*Version, error) {
	return (&semver.Ecosystem{}).NewVersion(s)
}
