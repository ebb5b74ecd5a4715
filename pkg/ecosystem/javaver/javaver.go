// Package javaver implements the Java language version scheme (spec §4.9,
// C10): canonicalization of legacy version shapes into JEP 322 form,
// followed by a single JEP 322 parser, plus a Maven-like bracket
// constraint dialect lowered to the uniform constraint algebra.
package javaver

import "os"

// Name is the ecosystem identifier used in registries and CLI dispatch.
const Name = "javaver"

// Ecosystem creates Java language versions and constraints.
type Ecosystem struct{}

func (e *Ecosystem) Name() string { return Name }

// RUNTIME_VERSION is this process's best-effort view of the host
// platform's reported Java version, read from the JAVA_VERSION
// environment variable. When absent or unparseable it falls back to
// the zero version "0".
var RUNTIME_VERSION *Version

func init() {
	e := &Ecosystem{}
	if raw := os.Getenv("JAVA_VERSION"); raw != "" {
		if v, err := e.NewVersion(raw); err == nil {
			RUNTIME_VERSION = v
			return
		}
	}
	v, err := e.NewVersion("0")
	if err != nil {
		panic(err)
	}
	RUNTIME_VERSION = v
}
