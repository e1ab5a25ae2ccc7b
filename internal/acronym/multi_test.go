package acronym

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMultipleOptions(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   MultiOptionResult
	}{
		{
			name:   "empty",
			phrase: "",
			want:   MultiOptionResult{Basic: []string{}, WithArticles: []string{}, Creative: []string{}, Syllable: []string{}},
		},
		{
			name:   "whitespace",
			phrase: "   \t",
			want:   MultiOptionResult{Basic: []string{}, WithArticles: []string{}, Creative: []string{}, Syllable: []string{}},
		},
		{
			name:   "quick brown fox",
			phrase: "The Quick Brown Fox",
			want: MultiOptionResult{
				Basic:        []string{"QBF"},
				WithArticles: []string{"TQBF"},
				Creative:     []string{},
				Syllable:     []string{"QUIBRFO"},
			},
		},
		{
			name:   "long phrase gets limited variant",
			phrase: "Very Long Phrase With Many Words",
			want: MultiOptionResult{
				Basic:        []string{"VLPMW"},
				WithArticles: []string{"VLPWMW"},
				Creative:     []string{"VLP"},
				Syllable:     []string{"VELOPHMAWOR"},
			},
		},
		{
			name:   "only stop words",
			phrase: "an the",
			want: MultiOptionResult{
				Basic:        []string{},
				WithArticles: []string{"AT"},
				Creative:     []string{},
				Syllable:     []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateMultipleOptions(tt.phrase)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GenerateMultipleOptions(%q) mismatch (-want +got):\n%s", tt.phrase, diff)
			}
		})
	}
}

func TestMultiOptionResultGroups(t *testing.T) {
	res := GenerateMultipleOptions("Hello World")
	groups := res.Groups()

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"basic", "with_articles", "creative", "syllable"}, names)
	assert.Equal(t, []string{"HW"}, groups[0].Acronyms)
	assert.False(t, res.Empty())
	assert.True(t, GenerateMultipleOptions("").Empty())
}
