package recommend

import (
	"strings"
	"unicode"
)

// baseSpirits are tokens that identify an ingredient as a base spirit. When
// one appears in a name, everything else is a brand or qualifier and can be
// dropped for matching ("Tanqueray Gin" and "Gin" are the same thing).
var baseSpirits = []string{
	"gin", "vodka", "rum", "tequila", "whiskey",
	"bourbon", "scotch", "brandy", "cognac",
}

// Normalize canonicalizes an ingredient name for matching: lower-case,
// single internal spaces, spirit names reduced to the bare spirit token,
// "fresh" prefixes and the words "juice"/"syrup" removed. Idempotent.
func Normalize(name string) string {
	s := strings.ToLower(name)
	s = strings.Join(strings.Fields(s), " ")

	for _, spirit := range baseSpirits {
		if containsWord(s, spirit) {
			return spirit
		}
	}

	for strings.HasPrefix(s, "fresh ") {
		s = strings.TrimPrefix(s, "fresh ")
	}

	s = removeWord(s, "juice")
	s = removeWord(s, "syrup")

	return strings.Join(strings.Fields(s), " ")
}

// containsWord reports whether w occurs in s bounded by non-letter runes.
func containsWord(s, w string) bool {
	for start := 0; ; {
		i := strings.Index(s[start:], w)
		if i < 0 {
			return false
		}
		i += start
		if wordBoundary(s, i, len(w)) {
			return true
		}
		start = i + 1
	}
}

// removeWord drops every whole-word occurrence of w from s.
func removeWord(s, w string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if f != w {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

func wordBoundary(s string, i, n int) bool {
	if i > 0 {
		prev := rune(s[i-1])
		if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
			return false
		}
	}
	if i+n < len(s) {
		next := rune(s[i+n])
		if unicode.IsLetter(next) || unicode.IsDigit(next) {
			return false
		}
	}
	return true
}
