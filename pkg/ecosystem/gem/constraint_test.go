package gem

import "testing"

func TestEcosystem_NewVersionRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{"bare version is exact", "1.0.0", false},
		{"greater than or equal", ">=1.0.0", false},
		{"pessimistic", "~>1.2", false},
		{"multi-argument and", ">=1.5.0, <3.0.0", false},
		{"not equal", "!=1.0.0", false},
		{"empty string", "", true},
		{"missing version after operator", ">=", true},
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
		{"exact match", "1.0.0", "1.0.0", true},
		{"exact mismatch", "1.0.0", "1.0.1", false},
		{"gte satisfied", ">=1.0.0", "1.0.0", true},
		{"gte violated", ">=1.0.0", "0.9.0", false},
		{"pessimistic allows patch bump", "~>1.2.3", "1.2.9", true},
		{"pessimistic excludes next minor", "~>1.2.3", "1.3.0", false},
		{"pessimistic minor form allows minor bump", "~>1.2", "1.9.0", true},
		{"pessimistic minor form excludes next major", "~>1.2", "2.0.0", false},
		{"not equal excludes exact", "!=1.0.0", "1.0.0", false},
		{"not equal allows others", "!=1.0.0", "1.0.1", true},
		{"multi-argument and", ">=1.5.0, <3.0.0", "2.0.0", true},
		{"multi-argument and rejects outside", ">=1.5.0, <3.0.0", "3.0.0", false},
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
