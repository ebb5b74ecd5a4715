package javaver

import "testing"

func TestEcosystem_Name(t *testing.T) {
	e := &Ecosystem{}
	if got, want := e.Name(), "javaver"; got != want {
		t.Errorf("Name() = %v, want %v", got, want)
	}
}

func TestRuntimeVersion(t *testing.T) {
	if RUNTIME_VERSION == nil {
		t.Fatal("RUNTIME_VERSION is nil")
	}
}
