package acronym

import (
	"strings"
	"unicode/utf8"
)

// stopWords are the articles, conjunctions and prepositions dropped unless
// Options.IncludeArticles is set. Keys are lower case.
var stopWords = map[string]struct{}{
	"a":       {},
	"an":      {},
	"the":     {},
	"and":     {},
	"or":      {},
	"but":     {},
	"in":      {},
	"on":      {},
	"at":      {},
	"to":      {},
	"for":     {},
	"of":      {},
	"with":    {},
	"by":      {},
	"from":    {},
	"up":      {},
	"about":   {},
	"into":    {},
	"through": {},
	"during":  {},
}

// IsStopWord reports whether word is one of the excludable articles or
// prepositions, ignoring case.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}

// StopWords returns a copy of the stop word set in unspecified order.
func StopWords() []string {
	out := make([]string, 0, len(stopWords))
	for w := range stopWords {
		out = append(out, w)
	}
	return out
}

// ExtractWords returns the words of phrase that survive stop word and length
// filtering, in their original order and casing. MaxWords is not applied here;
// callers truncate when they assemble fragments.
func ExtractWords(phrase string, opts Options) []string {
	if strings.TrimSpace(phrase) == "" {
		return []string{}
	}

	cleaned := Normalize(phrase)
	if cleaned == "" {
		return []string{}
	}

	words := strings.Split(cleaned, " ")
	out := words[:0]
	for _, word := range words {
		if !opts.IncludeArticles && IsStopWord(word) {
			continue
		}
		if utf8.RuneCountInString(word) < opts.MinWordLength {
			continue
		}
		out = append(out, word)
	}
	return out
}

// selectWords is the shared filter + truncate step of every strategy.
func selectWords(phrase string, opts Options) []string {
	return opts.truncate(ExtractWords(phrase, opts))
}
