package acronym

import (
	"strings"
	"unicode/utf8"
)

// CreateBasicAcronym joins the first letter of every selected word.
// It returns "" when no word survives filtering.
func CreateBasicAcronym(phrase string, opts Options) string {
	if strings.TrimSpace(phrase) == "" {
		return ""
	}

	words := selectWords(phrase, opts)

	var b strings.Builder
	b.Grow(len(words))
	for _, word := range words {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return foldCase(b.String(), opts)
}

func foldCase(s string, opts Options) string {
	if opts.ForceUppercase {
		return strings.ToUpper(s)
	}
	return strings.ToLower(s)
}
