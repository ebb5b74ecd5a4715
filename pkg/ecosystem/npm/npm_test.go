package npm

import "testing"

func TestEcosystem_Name(t *testing.T) {
	e := &Ecosystem{}
	if got, want := e.Name(), "npm"; got != want {
		t.Errorf("Name() = %v, want %v", got, want)
	}
}

func TestEcosystem_NewVersion(t *testing.T) {
	e := &Ecosystem{}
	v, err := e.NewVersion("1.2.3-alpha.1")
	if err != nil {
		t.Fatalf("NewVersion: %v", err)
	}
	if got, want := v.String(), "1.2.3-alpha.1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
