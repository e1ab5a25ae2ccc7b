package acronym

import (
	"strings"
	"unicode"
)

// Normalize strips everything except letters, numbers, underscores and
// whitespace, collapses whitespace runs into a single space and trims the
// ends. Combining marks are neither letters nor numbers, so a decomposed
// "é" loses its accent.
func Normalize(phrase string) string {
	var b strings.Builder
	b.Grow(len(phrase))

	space := false
	for _, r := range phrase {
		switch {
		case unicode.IsSpace(r):
			space = true
		case isWordRune(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isWordRune matches the letter, number and underscore class.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
