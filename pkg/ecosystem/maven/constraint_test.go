package maven

import "testing"

func TestEcosystem_NewVersionRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{"exact version", "[1.0]", false},
		{"closed range", "[1.0,2.0]", false},
		{"half-open range", "[1.0,2.0)", false},
		{"unbounded below", "(,1.0]", false},
		{"unbounded above", "[1.0,)", false},
		{"union of ranges", "[1.0,2.0),[3.0,4.0)", false},
		{"bare version is weak", "1.0", false},
		{"empty string", "", true},
		{"malformed bracket", "[1.0,2.0", true},
		{"empty exact version", "[]", true},
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
		name  string
		r     string
		v     string
		want  bool
	}{
		{"closed range includes lower bound", "[1.0,2.0]", "1.0", true},
		{"closed range includes upper bound", "[1.0,2.0]", "2.0", true},
		{"half-open excludes upper bound", "[1.0,2.0)", "2.0", false},
		{"half-open includes just below upper bound", "[1.0,2.0)", "1.9", true},
		{"outside range", "[1.0,2.0]", "3.0", false},
		{"unbounded below allows anything up to max", "(,1.0]", "0.1", true},
		{"unbounded above allows anything past min", "[1.0,)", "100.0", true},
		{"exact version matches only itself", "[1.0]", "1.0", true},
		{"exact version rejects others", "[1.0]", "1.1", false},
		{"union matches either member", "[1.0,2.0),[3.0,4.0)", "3.5", true},
		{"union rejects the gap", "[1.0,2.0),[3.0,4.0)", "2.5", false},
		{"bare version is a weak recommendation, not exclusive", "1.0", "2.0", true},
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

func TestVersionRange_String(t *testing.T) {
	e := &Ecosystem{}
	r, err := e.NewVersionRange("[1.0,2.0)")
	if err != nil {
		t.Fatalf("NewVersionRange: %v", err)
	}
	if got, want := r.String(), "[1.0,2.0)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
