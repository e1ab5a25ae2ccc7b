package acronym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyllableFragment(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"a", "a"},
		{"go", "go"},
		{"cat", "ca"},
		{"tree", "tr"},
		{"Open", "Op"},
		{"apple", "app"},
		{"Under", "Und"},
		{"table", "tab"},
		{"Python", "Py"},
		{"strong", "st"},
		{"Language", "Lan"},
		{"Ängel", "Än"},
		{"École", "Éc"},
		{"İzmir", "İz"},
		{"Bİrds", "Bİ"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, syllableFragment(tt.word))
		})
	}
}

func TestIsVowel(t *testing.T) {
	for _, r := range "aeiouAEIOU" {
		assert.True(t, isVowel(r), "%q", r)
	}
	for _, r := range "yYbzéÉİıÅ" {
		assert.False(t, isVowel(r), "%q", r)
	}
}

func TestCreateSyllableAcronym(t *testing.T) {
	defaults := DefaultOptions()

	tests := []struct {
		name   string
		phrase string
		opts   Options
		want   string
	}{
		{"python", "Python Programming Language", defaults, "PYPRLAN"},
		{"lowercase", "Python Programming Language", defaults.WithUppercase(false), "pyprlan"},
		{"max words", "Python Programming Language", defaults.WithMaxWords(2), "PYPR"},
		{"excludes articles", "The Quick Brown Fox", defaults, "QUIBRFO"},
		{"includes articles", "The Quick Brown Fox", defaults.WithArticles(true), "THQUIBRFO"},
		{"short words kept whole", "Go Is Ok", defaults, "GOISOK"},
		{"empty", "", defaults, ""},
		{"only stop words", "of the", defaults, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreateSyllableAcronym(tt.phrase, tt.opts))
		})
	}
}
