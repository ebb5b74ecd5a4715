package gradle

import "testing"

func TestEcosystem_Name(t *testing.T) {
	e := &Ecosystem{}
	if got, want := e.Name(), "gradle"; got != want {
		t.Errorf("Name() = %v, want %v", got, want)
	}
}
