package acronym

import "strings"

// CreateSyllableAcronym joins a rough first syllable of every selected word.
// See syllableFragment for the per-word rule.
func CreateSyllableAcronym(phrase string, opts Options) string {
	if strings.TrimSpace(phrase) == "" {
		return ""
	}

	words := selectWords(phrase, opts)

	var b strings.Builder
	for _, word := range words {
		b.WriteString(syllableFragment(word))
	}
	return foldCase(b.String(), opts)
}

// syllableFragment approximates the first syllable of word by length and
// vowel position. Branch order matters: a five rune word starting with a
// consonant followed by a vowel takes three runes, not two.
//
//	len <= 2             whole word
//	len 3..4             first 2
//	first rune vowel     first 3
//	second rune vowel    first 3
//	otherwise            first 2
func syllableFragment(word string) string {
	runes := []rune(word)
	n := len(runes)

	switch {
	case n <= 2:
		return word
	case n <= 4:
		return string(runes[:2])
	case isVowel(runes[0]):
		return string(runes[:3])
	case isVowel(runes[1]):
		return string(runes[:3])
	default:
		return string(runes[:2])
	}
}

// isVowel matches ASCII vowels only; accented and dotted forms such as
// "é" or "İ" are consonants here.
func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouAEIOU", r)
}
