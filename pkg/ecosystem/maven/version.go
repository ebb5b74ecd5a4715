package maven

import (
	"math/big"
	"strings"
	"unicode"

	"github.com/alowayed/go-vers/pkg/univers"
)

// componentKind orders the tiers a Maven component can fall into:
// MIN < QUALIFIER < STRING < NUMBER < MAX.
type componentKind uint8

const (
	kindMin componentKind = iota
	kindQualifier
	kindString
	kindNumber
	kindMax
)

// releaseRank is the qualifier rank of the empty/ga/final/release qualifier:
// the "neutral" qualifier padding and trailing-null trimming compare
// against.
const releaseRank = 6

// qualifierRank is the case-insensitive, ascending qualifier table of §4.4.
var qualifierRank = map[string]int{
	"alpha": 1, "a": 1,
	"beta": 2, "b": 2,
	"milestone": 3, "m": 3,
	"rc": 4, "cr": 4,
	"snapshot": 5,
	"":         releaseRank,
	"ga":       releaseRank,
	"final":    releaseRank,
	"release":  releaseRank,
	"sp": 7,
}

// normalizeQualifier maps qualifier shortcuts to their canonical table key.
func normalizeQualifier(lower string) string {
	switch lower {
	case "a":
		return "alpha"
	case "b":
		return "beta"
	case "m":
		return "milestone"
	case "cr":
		return "rc"
	case "ga", "final", "release":
		return ""
	default:
		return lower
	}
}

type component struct {
	kind          componentKind
	num           *big.Int
	str           string
	qualifierRank int
}

func isNullComponent(c component) bool {
	switch c.kind {
	case kindNumber:
		return c.num.Sign() == 0
	case kindQualifier:
		return c.qualifierRank == releaseRank
	default:
		return false
	}
}

// pad synthesizes the "null" component used when one version runs out of
// components before another: zero for a numeric position, the release
// qualifier for everything else (§4.4's padding rule).
func pad(kind componentKind) component {
	if kind == kindNumber {
		return component{kind: kindNumber, num: big.NewInt(0)}
	}
	return component{kind: kindQualifier, qualifierRank: releaseRank}
}

func compareComponent(a, b component) int {
	if a.kind != b.kind {
		return cmpInt(int(a.kind), int(b.kind))
	}
	switch a.kind {
	case kindNumber:
		return a.num.Cmp(b.num)
	case kindQualifier:
		return cmpInt(a.qualifierRank, b.qualifierRank)
	case kindString:
		return strings.Compare(a.str, b.str)
	default: // kindMin, kindMax: both sentinels of the same kind are equal
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Version is a parsed Maven version: an ordered list of tokenized
// components compared left to right.
type Version struct {
	original   string
	components []component
}

// NewVersion tokenizes s per the Maven grammar of §4.4.
func (e *Ecosystem) NewVersion(s string) (*Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, univers.NewParseError(Name, s, "version string is empty", nil)
	}
	tokens := tokenize(trimmed)
	if len(tokens) == 0 {
		return nil, univers.NewParseError(Name, s, "no version components found", nil)
	}
	return &Version{original: s, components: buildComponents(tokens)}, nil
}

// tokenize splits on '.', '-', '_' and digit/letter transitions. '+' acts
// as a delimiter except in a "++" run, where one '+' is kept as a literal
// character of the current token.
func tokenize(s string) []string {
	var tokens []string
	var cur []rune
	var prev rune

	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '.' || r == '-' || r == '_':
			flush()
			prev = 0
			continue
		case r == '+':
			if i+1 < len(runes) && runes[i+1] == '+' {
				cur = append(cur, '+')
				prev = '+'
				i++
				continue
			}
			flush()
			prev = 0
			continue
		}

		if prev != 0 && isDigitLetterTransition(prev, r) {
			flush()
		}
		cur = append(cur, r)
		prev = r
	}
	flush()
	return tokens
}

func isDigitLetterTransition(prev, r rune) bool {
	pd, rd := unicode.IsDigit(prev), unicode.IsDigit(r)
	pl, rl := unicode.IsLetter(prev), unicode.IsLetter(r)
	return (pd && rl) || (pl && rd)
}

// buildComponents classifies each token into its component kind: the
// min/max sentinels (only recognized at the last position), arbitrary
// precision integers, table qualifiers, or plain strings. Trailing
// padding-equivalent tokens are trimmed once classified.
func buildComponents(tokens []string) []component {
	comps := make([]component, 0, len(tokens))
	for i, tok := range tokens {
		lower := strings.ToLower(tok)

		if i == len(tokens)-1 {
			if lower == "min" {
				comps = append(comps, component{kind: kindMin})
				continue
			}
			if lower == "max" {
				comps = append(comps, component{kind: kindMax})
				continue
			}
		}

		if n, ok := new(big.Int).SetString(tok, 10); ok {
			comps = append(comps, component{kind: kindNumber, num: n})
			continue
		}

		normalized := normalizeQualifier(lower)
		if rank, known := qualifierRank[normalized]; known {
			comps = append(comps, component{kind: kindQualifier, qualifierRank: rank, str: normalized})
		} else {
			comps = append(comps, component{kind: kindString, str: lower})
		}
	}
	return trimTrailingNulls(comps)
}

func trimTrailingNulls(comps []component) []component {
	for len(comps) > 0 && isNullComponent(comps[len(comps)-1]) {
		comps = comps[:len(comps)-1]
	}
	return comps
}

// String returns the exact input text the version was parsed from.
func (v *Version) String() string { return v.original }

// Compare implements Maven's component-by-component ordering, padding the
// shorter version until a difference is found.
func (v *Version) Compare(other *Version) int {
	n := len(v.components)
	if len(other.components) > n {
		n = len(other.components)
	}
	for i := 0; i < n; i++ {
		a := componentAt(v.components, other.components, i)
		b := componentAt(other.components, v.components, i)
		if c := compareComponent(a, b); c != 0 {
			return c
		}
	}
	return 0
}

func componentAt(comps, counterpart []component, i int) component {
	if i < len(comps) {
		return comps[i]
	}
	if i < len(counterpart) {
		return pad(counterpart[i].kind)
	}
	return pad(kindQualifier)
}

// IsPreRelease reports whether the rightmost qualifier component in v
// ranks below the release qualifier: a trailing "sp" overrides any earlier
// alpha/beta/milestone/rc/snapshot qualifier.
func (v *Version) IsPreRelease() bool {
	rank := releaseRank
	found := false
	for _, c := range v.components {
		if c.kind == kindQualifier {
			rank = c.qualifierRank
			found = true
		}
	}
	return found && rank < releaseRank
}
