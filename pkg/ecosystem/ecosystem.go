// Package ecosystem wires every supported version scheme into the
// univers.Ecosystem interface, one static assertion block per scheme.
package ecosystem

import (
	"github.com/alowayed/go-vers/pkg/ecosystem/calver"
	"github.com/alowayed/go-vers/pkg/ecosystem/gem"
	"github.com/alowayed/go-vers/pkg/ecosystem/gradle"
	"github.com/alowayed/go-vers/pkg/ecosystem/javaver"
	"github.com/alowayed/go-vers/pkg/ecosystem/maven"
	"github.com/alowayed/go-vers/pkg/ecosystem/npm"
	"github.com/alowayed/go-vers/pkg/ecosystem/semver"
	"github.com/alowayed/go-vers/pkg/univers"
)

var (
	// --- Ensure types implement interfaces (alphabetical by scheme) ---

	// calver
	_ univers.Version[*calver.Version]                         = &calver.Version{}
	_ univers.VersionRange[*calver.Version]                    = &calver.VersionRange{}
	_ univers.Ecosystem[*calver.Version, *calver.VersionRange] = &calver.Ecosystem{}

	// gem
	_ univers.Version[*gem.Version]                      = &gem.Version{}
	_ univers.VersionRange[*gem.Version]                 = &gem.VersionRange{}
	_ univers.Ecosystem[*gem.Version, *gem.VersionRange] = &gem.Ecosystem{}

	// gradle
	_ univers.Version[*gradle.Version]                         = &gradle.Version{}
	_ univers.VersionRange[*gradle.Version]                    = &gradle.VersionRange{}
	_ univers.Ecosystem[*gradle.Version, *gradle.VersionRange] = &gradle.Ecosystem{}

	// javaver
	_ univers.Version[*javaver.Version]                          = &javaver.Version{}
	_ univers.VersionRange[*javaver.Version]                     = &javaver.VersionRange{}
	_ univers.Ecosystem[*javaver.Version, *javaver.VersionRange] = &javaver.Ecosystem{}

	// maven
	_ univers.Version[*maven.Version]                        = &maven.Version{}
	_ univers.VersionRange[*maven.Version]                   = &maven.VersionRange{}
	_ univers.Ecosystem[*maven.Version, *maven.VersionRange] = &maven.Ecosystem{}

	// npm (C7): translates npm's own range dialect onto semver's (C4)
	// Version type; npm.Version is an alias of semver.Version, so all three
	// assertions here are over *semver.Version.
	_ univers.Version[*npm.Version]                        = &npm.Version{}
	_ univers.VersionRange[*npm.Version]                   = &npm.VersionRange{}
	_ univers.Ecosystem[*npm.Version, *npm.VersionRange] = &npm.Ecosystem{}

	// semver (C4): registered standalone since NPM (C7) is its sole
	// constraint-dialect consumer and reuses semver.Version directly.
	_ univers.Version[*semver.Version] = &semver.Version{}
)
