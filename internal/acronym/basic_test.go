package acronym

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBasicAcronym(t *testing.T) {
	defaults := DefaultOptions()

	tests := []struct {
		name   string
		phrase string
		opts   Options
		want   string
	}{
		{"hello world", "Hello World", defaults, "HW"},
		{"excludes articles", "The Quick Brown Fox", defaults, "QBF"},
		{"includes articles", "The Quick Brown Fox", defaults.WithArticles(true), "TQBF"},
		{"min length with articles", "A Big Red Car", Options{IncludeArticles: true, MinWordLength: 3, ForceUppercase: true}, "BRC"},
		{"lowercase", "Hello World", defaults.WithUppercase(false), "hw"},
		{"max words", "Very Long Phrase With Many Words", defaults.WithMaxWords(3), "VLP"},
		{"max words larger than list", "Hello World", defaults.WithMaxWords(10), "HW"},
		{"punctuation", "Hello, World! Test", defaults, "HWT"},
		{"mixed case input", "portable NETWORK graphics", defaults, "PNG"},
		{"empty", "", defaults, ""},
		{"whitespace", " \t ", defaults, ""},
		{"only stop words", "the of and", defaults, ""},
		{"too short", "a b c", Options{IncludeArticles: true, MinWordLength: 2, ForceUppercase: true}, ""},
		{"unicode", "über straße", defaults, "ÜS"},
		{"digits", "3 Dimensional Graphics", Options{MinWordLength: 1, ForceUppercase: true}, "3DG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreateBasicAcronym(tt.phrase, tt.opts))
		})
	}
}

func TestCreateBasicAcronymMatchesWords(t *testing.T) {
	phrases := []string{
		"Application Programming Interface",
		"The Lord of the Rings: The Return of the King",
		"  spaced   out\tphrase ",
		"x",
		"",
	}
	optsList := []Options{
		DefaultOptions(),
		DefaultOptions().WithArticles(true),
		DefaultOptions().WithMaxWords(2),
		{MinWordLength: 1, ForceUppercase: false},
		{MinWordLength: 6, IncludeArticles: true, ForceUppercase: true},
	}

	for _, p := range phrases {
		for _, opts := range optsList {
			words := opts.truncate(ExtractWords(p, opts))
			got := CreateBasicAcronym(p, opts)

			require.Equal(t, len(words), utf8.RuneCountInString(got), "phrase %q opts %+v", p, opts)
			for i, r := range []rune(got) {
				first := string([]rune(words[i])[0])
				assert.Equal(t, foldCase(first, opts), string(r))
			}
		}
	}
}
