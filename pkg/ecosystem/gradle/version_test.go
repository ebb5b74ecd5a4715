package gradle

import "testing"

func TestEcosystem_NewVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"basic version", "1.2.3", false},
		{"with qualifier", "1.2.3-rc1", false},
		{"snapshot", "1.2.3-SNAPSHOT", false},
		{"dev qualifier", "1.2.3.dev1", false},
		{"empty string", "", true},
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

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "1.0.0", "1.0.0", 0},
		{"major difference", "1.0.0", "2.0.0", -1},
		{"dev is lowest", "1.0-dev", "1.0-anything", -1},
		{"ordinary below rc", "1.0-anything", "1.0-rc", -1},
		{"rc below snapshot", "1.0-rc", "1.0-snapshot", -1},
		{"snapshot below final", "1.0-snapshot", "1.0-final", -1},
		{"final below ga", "1.0-final", "1.0-ga", -1},
		{"ga below release", "1.0-ga", "1.0-release", -1},
		{"release below sp", "1.0-release", "1.0-sp", -1},
		{"numeric beats non-numeric", "1.0.1", "1.0.rc", 1},
		{"extra numeric component ranks above", "1.0", "1.0.1", -1},
		{"extra non-numeric component ranks below", "1.0", "1.0.rc", 1},
		{"ordinary strings compare case-sensitively", "1.0-Alpha", "1.0-alpha", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Ecosystem{}
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
		{"1.0-dev", true},
		{"1.0-rc1", true},
		{"1.0-SNAPSHOT", true},
		{"1.0-final", false},
		{"1.0-sp", false},
		{"1.0.0", false},
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
