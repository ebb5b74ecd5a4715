package gradle

import "testing"

func TestEcosystem_NewVersionRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{"maven-like closed", "[1.0,2.0]", false},
		{"maven-like half-open", "[1.0,2.0)", false},
		{"iso notation", "]1.0,2.0[", false},
		{"single point", "[1.0]", false},
		{"bang-bang exact", "1.0!!", false},
		{"dynamic suffix", "1.2.+", false},
		{"plain plus", "+", false},
		{"undecorated version", "1.0", false},
		{"union", "[1.0,2.0),[3.0,4.0)", false},
		{"non-numeric before plus", "1.a.+", true},
		{"empty string", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Ecosystem{}
			_, err := e.NewVersionRange(tt.input)
			if (err != nil) != tt.wantError {
				t.Errorf("NewVersionRange(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
		})
	}
}

func TestVersionRange_Contains(t *testing.T) {
	e := &Ecosystem{}
	tests := []struct {
		name string
		r    string
		v    string
		want bool
	}{
		{"closed range includes bounds", "[1.0,2.0]", "2.0", true},
		{"iso notation excludes bounds", "]1.0,2.0[", "1.0", false},
		{"iso notation includes interior", "]1.0,2.0[", "1.5", true},
		{"dynamic suffix allows patch bump", "1.2.+", "1.2.9", true},
		{"dynamic suffix excludes next minor", "1.2.+", "1.3.0", false},
		{"plain plus allows anything", "+", "999.0.0", true},
		{"bang-bang matches only itself", "1.0!!", "1.0", true},
		{"bang-bang rejects others", "1.0!!", "1.1", false},
		{"undecorated version is an open lower bound", "1.0", "999.0.0", true},
		{"undecorated version excludes below", "1.0", "0.9.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := e.NewVersionRange(tt.r)
			if err != nil {
				t.Fatalf("NewVersionRange(%q): %v", tt.r, err)
			}
			v, err := e.NewVersion(tt.v)
			if err != nil {
				t.Fatalf("NewVersion(%q): %v", tt.v, err)
			}
			if got := r.Contains(v); got != tt.want {
				t.Errorf("VersionRange(%q).Contains(%q) = %v, want %v", tt.r, tt.v, got, tt.want)
			}
		})
	}
}
