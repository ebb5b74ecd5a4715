package cli

import (
	"fmt"
	"slices"

	"github.com/alowayed/go-vers/pkg/univers"
)

// compare parses exactly two versions and returns their Compare result.
func compare[V univers.Version[V], VR univers.VersionRange[V]](
	e univers.Ecosystem[V, VR],
	args []string,
) (int, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("compare requires exactly 2 version arguments")
	}

	v1, err := e.NewVersion(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid version '%s': %w", args[0], err)
	}
	v2, err := e.NewVersion(args[1])
	if err != nil {
		return 0, fmt.Errorf("invalid version '%s': %w", args[1], err)
	}
	return v1.Compare(v2), nil
}

// sort parses one or more versions and returns them in ascending order.
func sort[V univers.Version[V], VR univers.VersionRange[V]](
	e univers.Ecosystem[V, VR],
	args []string,
) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("sort requires at least 1 version argument")
	}

	versions := make([]V, 0, len(args))
	for _, a := range args {
		v, err := e.NewVersion(a)
		if err != nil {
			return nil, fmt.Errorf("invalid version '%s': %w", a, err)
		}
		versions = append(versions, v)
	}

	slices.SortFunc(versions, func(a, b V) int { return a.Compare(b) })

	out := make([]string, len(versions))
	for i, v := range versions {
		out[i] = v.String()
	}
	return out, nil
}

// contains reports whether version falls within range. An unparseable
// range is reported as a plain false rather than an error; an
// unparseable version is an error.
func contains[V univers.Version[V], VR univers.VersionRange[V]](
	e univers.Ecosystem[V, VR],
	args []string,
) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("contains requires exactly 2 arguments: <range> <version>")
	}

	rangeStr, versionStr := args[0], args[1]

	v, err := e.NewVersion(versionStr)
	if err != nil {
		return false, fmt.Errorf("invalid version '%s': %w", versionStr, err)
	}

	r, err := e.NewVersionRange(rangeStr)
	if err != nil {
		return false, nil
	}

	return r.Contains(v), nil
}
