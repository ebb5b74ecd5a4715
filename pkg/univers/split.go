package univers

import "strings"

// SplitTopLevel splits s on sep, ignoring any separator that occurs inside
// a bracketed group opened by one of open's runes and closed by the
// matching rune in close at the same index. It is shared by the bracket
// range dialects (Maven, Java) whose comma-disjunction syntax nests a
// lo,hi pair inside the same brackets used to separate alternatives.
// Gradle's ISO brackets reverse the open/close roles, so Gradle uses its
// own splitGroups instead.
func SplitTopLevel(s string, sep rune, open, close string) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case strings.ContainsRune(open, r):
			depth++
			cur.WriteRune(r)
		case strings.ContainsRune(close, r):
			if depth > 0 {
				depth--
			}
			cur.WriteRune(r)
		case r == sep && depth == 0:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	parts = append(parts, cur.String())
	return parts
}
