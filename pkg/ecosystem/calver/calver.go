// Package calver implements the Calendar version scheme (spec §4.8, C9): a
// format-string-driven parser (e.g. "YYYY.0M.0D-MAJOR") with per-category
// validation and SemVer-style modifier precedence.
package calver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alowayed/go-vers/pkg/univers"
)

// Name is the ecosystem identifier used in registries and CLI dispatch.
const Name = "calver"

// DefaultFormat is used when an Ecosystem is constructed with its zero
// value rather than through NewEcosystem.
const DefaultFormat = "YYYY.MM.DD"

// category classifies one identifier token of a calendar format string.
type category int

const (
	categoryYear category = iota
	categoryMonth
	categoryDay
	categoryWeek
	categoryMajor
	categoryMinor
	categoryPatch
	categoryModifier
)

type identifierSpec struct {
	category   category
	pattern    string
	expandYear bool // true for YY/0Y: parsed N becomes 2000+N
}

var identifierTable = map[string]identifierSpec{
	"yyyy":  {category: categoryYear, pattern: `\d{4}`},
	"yy":    {category: categoryYear, pattern: `\d{1,2}`, expandYear: true},
	"0y":    {category: categoryYear, pattern: `\d{2}`, expandYear: true},
	"mm":    {category: categoryMonth, pattern: `\d{1,2}`},
	"0m":    {category: categoryMonth, pattern: `\d{2}`},
	"ww":    {category: categoryWeek, pattern: `\d{1,2}`},
	"0w":    {category: categoryWeek, pattern: `\d{2}`},
	"dd":    {category: categoryDay, pattern: `\d{1,2}`},
	"0d":    {category: categoryDay, pattern: `\d{2}`},
	"major": {category: categoryMajor, pattern: `\d+`},
	"minor": {category: categoryMinor, pattern: `\d+`},
	"patch": {category: categoryPatch, pattern: `\d+`},
}

// formatToken is one identifier of a decomposed format string, along with
// the separator rune (0 if none) that precedes it.
type formatToken struct {
	sep  byte
	name string
	spec identifierSpec
}

// Ecosystem creates Calendar versions for one format string, e.g.
// "YYYY.0M.0D-MAJOR". The zero value behaves as NewEcosystem(DefaultFormat).
type Ecosystem struct {
	format string
	tokens []formatToken
	hasMod bool
	re     *regexp.Regexp
}

// NewEcosystem builds a scheme instance from a format string: identifier
// tokens and single-character separators ('.', '-', '_'). Versions may carry
// an optional trailing "-MODIFIER" whether or not the format names it. The
// format's regex is compiled once here and reused
// for every NewVersion call.
func NewEcosystem(format string) (*Ecosystem, error) {
	tokens, hasMod, err := parseFormat(format)
	if err != nil {
		return nil, univers.NewParseError(Name, format, "invalid format string", err)
	}
	re, err := buildPattern(tokens)
	if err != nil {
		return nil, univers.NewParseError(Name, format, "format string compiled to an invalid regex", err)
	}
	return &Ecosystem{format: format, tokens: tokens, hasMod: hasMod, re: re}, nil
}

// defaultTokens and defaultPattern back the zero-value Ecosystem, compiled
// once at package init instead of per parse.
var (
	defaultTokens  []formatToken
	defaultPattern *regexp.Regexp
)

func init() {
	tokens, _, err := parseFormat(DefaultFormat)
	if err != nil {
		panic(fmt.Sprintf("calver: DefaultFormat %q is invalid: %v", DefaultFormat, err))
	}
	re, err := buildPattern(tokens)
	if err != nil {
		panic(fmt.Sprintf("calver: DefaultFormat %q compiled to an invalid regex: %v", DefaultFormat, err))
	}
	defaultTokens = tokens
	defaultPattern = re
}

// buildPattern compiles a format's identifier tokens into the anchored
// regex used to tokenize NewVersion's input.
func buildPattern(tokens []formatToken) (*regexp.Regexp, error) {
	var pattern strings.Builder
	pattern.WriteString("^")
	trailingModOptional := len(tokens) > 0 && tokens[len(tokens)-1].spec.category == categoryModifier
	for i, tok := range tokens {
		isTrailingMod := trailingModOptional && i == len(tokens)-1
		if isTrailingMod {
			pattern.WriteString("(?:")
			if tok.sep != 0 {
				pattern.WriteString(regexp.QuoteMeta(string(tok.sep)))
			}
			fmt.Fprintf(&pattern, "(?P<f%d>%s)", i, tok.spec.pattern)
			pattern.WriteString(")?")
			continue
		}
		if tok.sep != 0 {
			pattern.WriteString(regexp.QuoteMeta(string(tok.sep)))
		}
		fmt.Fprintf(&pattern, "(?P<f%d>%s)", i, tok.spec.pattern)
	}
	pattern.WriteString("$")
	return regexp.Compile(pattern.String())
}

func (e *Ecosystem) Name() string { return Name }

func parseFormat(format string) ([]formatToken, bool, error) {
	if format == "" {
		return nil, false, fmt.Errorf("format string is empty")
	}

	var tokens []formatToken
	var word strings.Builder
	var sep byte

	flush := func() error {
		if word.Len() == 0 {
			return nil
		}
		name := strings.ToLower(word.String())
		spec, ok := identifierTable[name]
		if !ok {
			if name == "modifier" {
				spec = identifierSpec{category: categoryModifier, pattern: `.+`}
			} else {
				return fmt.Errorf("unrecognized identifier %q", word.String())
			}
		}
		tokens = append(tokens, formatToken{sep: sep, name: name, spec: spec})
		word.Reset()
		sep = 0
		return nil
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c == '.' || c == '-' || c == '_' {
			if err := flush(); err != nil {
				return nil, false, err
			}
			sep = c
			continue
		}
		word.WriteByte(c)
	}
	if err := flush(); err != nil {
		return nil, false, err
	}
	if len(tokens) == 0 {
		return nil, false, fmt.Errorf("format string has no identifiers")
	}
	// A trailing "-MODIFIER" is accepted with every format; add it when the
	// format does not name one itself.
	if tokens[len(tokens)-1].spec.category != categoryModifier {
		tokens = append(tokens, formatToken{sep: '-', name: "modifier", spec: identifierSpec{category: categoryModifier, pattern: `.+`}})
	}

	hasMod := tokens[len(tokens)-1].spec.category == categoryModifier
	return tokens, hasMod, nil
}

// effective returns the tokens and precompiled regex backing e, falling
// back to the package-level defaults for a zero-value Ecosystem.
func (e *Ecosystem) effective() ([]formatToken, *regexp.Regexp) {
	if e.re != nil {
		return e.tokens, e.re
	}
	return defaultTokens, defaultPattern
}

// component holds one parsed field of a Version, keyed by category.
type component struct {
	category category
	value    int64
	present  bool
}

// Version is a parsed Calendar version.
type Version struct {
	original string
	fields   map[category]component
	modifier string
	hasMod   bool
}

// NewVersion parses s against the scheme's format string.
func (e *Ecosystem) NewVersion(s string) (*Version, error) {
	tokens, re := e.effective()

	trimmed := strings.TrimSpace(s)
	m := re.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, univers.NewParseError(Name, s, "does not match the configured format", nil)
	}

	fields := make(map[category]component)
	var modifier string
	var hasMod bool
	for i, tok := range tokens {
		raw := m[re.SubexpIndex(fmt.Sprintf("f%d", i))]
		if raw == "" {
			continue
		}
		if tok.spec.category == categoryModifier {
			modifier = raw
			hasMod = true
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, univers.NewParseError(Name, s, "invalid numeric field", err)
		}
		if tok.spec.expandYear {
			n += 2000
		}
		if err := validate(tok.spec.category, n); err != nil {
			return nil, univers.NewParseError(Name, s, "validation failed", err)
		}
		fields[tok.spec.category] = component{category: tok.spec.category, value: n, present: true}
	}

	return &Version{original: s, fields: fields, modifier: modifier, hasMod: hasMod}, nil
}

func validate(cat category, n int64) error {
	switch cat {
	case categoryYear:
		if n < 1900 {
			return fmt.Errorf("year %d is before 1900", n)
		}
	case categoryMonth:
		if n < 1 || n > 12 {
			return fmt.Errorf("month %d is out of range 1-12", n)
		}
	case categoryDay:
		if n < 1 || n > 31 {
			return fmt.Errorf("day %d is out of range 1-31", n)
		}
	case categoryWeek:
		if n < 1 || n > 52 {
			return fmt.Errorf("week %d is out of range 1-52", n)
		}
	case categoryMajor, categoryMinor, categoryPatch:
		if n < 0 {
			return fmt.Errorf("%d must be non-negative", n)
		}
	}
	return nil
}

// String returns the exact input text the version was parsed from.
func (v *Version) String() string { return v.original }

// Compare orders year, then week or (month, day), then major, minor,
// patch, then the modifier using SemVer pre-release rules. An absent
// ordinary component sorts below a present one; an absent modifier sorts
// above a present one (SemVer's release-beats-prerelease rule).
func (v *Version) Compare(other *Version) int {
	order := []category{categoryYear, categoryWeek, categoryMonth, categoryDay, categoryMajor, categoryMinor, categoryPatch}
	for _, cat := range order {
		if c := compareField(v.fields[cat], other.fields[cat]); c != 0 {
			return c
		}
	}
	return compareModifier(v.modifier, v.hasMod, other.modifier, other.hasMod)
}

func compareField(a, b component) int {
	switch {
	case a.present && b.present:
		return compareInt64(a.value, b.value)
	case a.present && !b.present:
		return 1
	case !a.present && b.present:
		return -1
	default:
		return 0
	}
}

func compareModifier(a string, aHas bool, b string, bHas bool) int {
	if !aHas && !bHas {
		return 0
	}
	if !aHas {
		return 1 // absent modifier ranks above present (release beats pre-release)
	}
	if !bHas {
		return -1
	}

	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")
	n := len(aParts)
	if len(bParts) > n {
		n = len(bParts)
	}
	for i := 0; i < n; i++ {
		if i >= len(aParts) {
			return -1
		}
		if i >= len(bParts) {
			return 1
		}
		if c := compareModifierIdentifier(aParts[i], bParts[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareModifierIdentifier(a, b string) int {
	aNum, aIsNum := parseModifierInt(a)
	bNum, bIsNum := parseModifierInt(b)
	switch {
	case aIsNum && bIsNum:
		return compareInt64(aNum, bNum)
	case aIsNum && !bIsNum:
		return -1
	case !aIsNum && bIsNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func parseModifierInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// preReleaseModifiers is the case-insensitive set of modifier prefixes
// that mark a Calendar version as a pre-release.
var preReleaseModifiers = []string{"alpha", "beta", "cr", "dev", "milestone", "rc", "snapshot"}

// IsPreRelease reports whether the modifier begins (case-insensitively)
// with a recognized pre-release prefix.
func (v *Version) IsPreRelease() bool {
	if !v.hasMod {
		return false
	}
	lower := strings.ToLower(v.modifier)
	for _, prefix := range preReleaseModifiers {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
