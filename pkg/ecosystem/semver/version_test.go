package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEcosystem_NewVersion(t *testing.T) {
	e := &Ecosystem{}

	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{"basic version", "1.2.3", false},
		{"leading v", "v1.2.3", false},
		{"with prerelease", "1.2.3-alpha", false},
		{"with build metadata", "1.2.3+build.1", false},
		{"with prerelease and build", "1.2.3-alpha.1+build.1", false},
		{"zero versions", "0.0.0", false},
		{"leading zero major", "01.2.3", true},
		{"leading zero in prerelease", "1.2.3-01", true},
		{"empty prerelease identifier", "1.2.3-alpha..1", true},
		{"non-ASCII identifier", "1.2.3-álpha", true},
		{"trailing separator", "1.2.3-", true},
		{"missing patch", "1.2", true},
		{"empty string", "", true},
		{"numeric identifier overflow", "1.2.3-99999999999", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := e.NewVersion(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, v.String())
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	e := &Ecosystem{}
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.0.0", 1},
		{"1.0.0", "1.0.0", 0},
		{"1.0.0-alpha", "1.0.0", -1},
		{"1.0.0", "1.0.0-alpha", 1},
		{"1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"1.0.0-alpha.1", "1.0.0-alpha.beta", -1},
		{"1.0.0-alpha.beta", "1.0.0-beta", -1},
		{"1.0.0-beta", "1.0.0-beta.2", -1},
		{"1.0.0-beta.2", "1.0.0-beta.11", -1},
		{"1.0.0-beta.11", "1.0.0-rc.1", -1},
		{"1.0.0-rc.1", "1.0.0", -1},
		{"1.0.0+build1", "1.0.0+build2", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a, err := e.NewVersion(tt.a)
			require.NoError(t, err)
			b, err := e.NewVersion(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Compare(b))
		})
	}
}

func TestVersion_IsPreRelease(t *testing.T) {
	e := &Ecosystem{}
	v, err := e.NewVersion("1.0.0-alpha")
	require.NoError(t, err)
	assert.True(t, v.IsPreRelease())

	v, err = e.NewVersion("1.0.0")
	require.NoError(t, err)
	assert.False(t, v.IsPreRelease())
}

func TestNewSnapshot(t *testing.T) {
	clock := fixedClock(1700000000123)

	v, err := NewSnapshot(1, 2, 3, false, clock)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.String())

	v, err = NewSnapshot(1, 2, 3, true, clock)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-1700000000123", v.String())
}

type fixedClock int64

func (c fixedClock) NowMillis() int64 { return int64(c) }
