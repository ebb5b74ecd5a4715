package javaver

import "testing"

func TestEcosystem_NewVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"jep322 bare", "11", false},
		{"jep322 three-part", "17.0.11", false},
		{"jep322 full", "17.0.11-alpha+14-cthing", false},
		{"legacy two-part", "1.4", false},
		{"legacy three-part", "1.4.2", false},
		{"legacy with update", "1.4.2_151", false},
		{"legacy with build", "1.4.2_151-b034", false},
		{"legacy with opt and build", "1.4.2_151-internal-b034", false},
		{"legacy u-form", "8u17", false},
		{"legacy u-form with interim", "5.2u10", false},
		{"empty string", "", true},
		{"non-numeric component", "a.b.c", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Ecosystem{}
			got, err := e.NewVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestEcosystem_NewVersion_LegacyCanonicalization(t *testing.T) {
	e := &Ecosystem{}

	v, err := e.NewVersion("8u17")
	if err != nil {
		t.Fatalf("NewVersion(8u17): %v", err)
	}
	if got, want := v.Feature(), int64(8); got != want {
		t.Errorf("Feature() = %d, want %d", got, want)
	}
	if got, want := v.Update(), int64(17); got != want {
		t.Errorf("Update() = %d, want %d", got, want)
	}

	v2, err := e.NewVersion("5.2u10")
	if err != nil {
		t.Fatalf("NewVersion(5.2u10): %v", err)
	}
	if got, want := v2.Feature(), int64(5); got != want {
		t.Errorf("Feature() = %d, want %d", got, want)
	}
	if got, want := v2.Interim(), int64(2); got != want {
		t.Errorf("Interim() = %d, want %d", got, want)
	}
	if got, want := v2.Update(), int64(10); got != want {
		t.Errorf("Update() = %d, want %d", got, want)
	}

	v3, err := e.NewVersion("1.4.2_151-b034")
	if err != nil {
		t.Fatalf("NewVersion(1.4.2_151-b034): %v", err)
	}
	if got, want := v3.Feature(), int64(4); got != want {
		t.Errorf("Feature() = %d, want %d", got, want)
	}
	if got, want := v3.Interim(), int64(2); got != want {
		t.Errorf("Interim() = %d, want %d", got, want)
	}
	if got, want := v3.Update(), int64(151); got != want {
		t.Errorf("Update() = %d, want %d", got, want)
	}
	build, hasBuild := v3.Build()
	if !hasBuild || build != 34 {
		t.Errorf("Build() = (%d, %v), want (34, true)", build, hasBuild)
	}
}

func TestVersion_Compare(t *testing.T) {
	e := &Ecosystem{}
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "17.0.11", "17.0.11", 0},
		{"feature difference", "11", "17", -1},
		{"shorter vnum zero-padded", "17", "17.0.1", -1},
		{"pre-release ranks below release", "17.0.11-alpha", "17.0.11", -1},
		{"pre-release identifiers compared", "17.0.11-alpha.1", "17.0.11-alpha.2", -1},
		{"numeric pre-release below alpha", "17.0.11-1", "17.0.11-alpha", -1},
		{"build number breaks tie", "17.0.11+10", "17.0.11+20", -1},
		{"no build below with build", "17.0.11", "17.0.11+1", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := e.NewVersion(tt.a)
			if err != nil {
				t.Fatalf("NewVersion(%q): %v", tt.a, err)
			}
			b, err := e.NewVersion(tt.b)
			if err != nil {
				t.Fatalf("NewVersion(%q): %v", tt.b, err)
			}
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVersion_IsPreRelease(t *testing.T) {
	e := &Ecosystem{}
	for _, tt := range []struct {
		in   string
		want bool
	}{
		{"17.0.11-alpha", true},
		{"17.0.11", false},
	} {
		v, err := e.NewVersion(tt.in)
		if err != nil {
			t.Fatalf("NewVersion(%q): %v", tt.in, err)
		}
		if got := v.IsPreRelease(); got != tt.want {
			t.Errorf("IsPreRelease(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
