package npm

import "testing"

func TestEcosystem_NewVersionRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{"caret", "^1.2.3", false},
		{"tilde", "~1.2.3", false},
		{"hyphen range", "1.2.3 - 2.3.4", false},
		{"x-range major", "1.x", false},
		{"x-range minor", "1.2.x", false},
		{"wildcard", "*", false},
		{"or of clauses", "^1.0.0 || ^2.0.0", false},
		{"bounded and clause", ">=1.0.0 <2.0.0", false},
		{"empty string", "", true},
		{"three operators", ">=1.0.0 <2.0.0 >3.0.0", true},
		{"equality combined with operator", "=1.0.0 <2.0.0", true},
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
		{"caret allows patch and minor bumps", "^1.2.3", "1.9.0", true},
		{"caret excludes next major", "^1.2.3", "2.0.0", false},
		{"caret excludes next-major prerelease", "^4.6.0", "5.0.0-beta", false},
		{"caret zero-major restricts to patch", "^0.2.3", "0.2.9", true},
		{"caret zero-major excludes next minor", "^0.2.3", "0.3.0", false},
		{"caret zero-zero restricts to exact patch bump only", "^0.0.3", "0.0.3", true},
		{"caret zero-zero excludes next patch", "^0.0.3", "0.0.4", false},
		{"tilde allows patch bump", "~1.2.3", "1.2.9", true},
		{"tilde excludes next minor", "~1.2.3", "1.3.0", false},
		{"hyphen range inclusive both ends", "1.2.3 - 2.3.4", "2.3.4", true},
		{"hyphen range excludes past end", "1.2.3 - 2.3.4", "2.3.5", false},
		{"x-range major matches any minor/patch", "1.x", "1.99.0", true},
		{"x-range major excludes next major", "1.x", "2.0.0", false},
		{"or matches second clause", "^1.0.0 || ^2.0.0", "2.5.0", true},
		{"or matches neither clause", "^1.0.0 || ^2.0.0", "3.0.0", false},
		{"wildcard matches everything", "*", "0.0.1", true},
		{"wildcard excludes nothing", "*", "99.99.99", true},
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
