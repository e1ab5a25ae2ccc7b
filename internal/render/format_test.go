package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acronymcreator/internal/acronym"
)

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{" Yaml ", FormatYAML},
		{"csv", FormatCSV},
		{"TSV", FormatTSV},
		{"toml", FormatTOML},
	} {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Contains(t, err.Error(), "text|json|yaml|csv|tsv|toml")
}

func TestEveryFormatHasWriters(t *testing.T) {
	for _, f := range Formats {
		assert.Contains(t, recordWriters, f, "record writer for %s", f)
		assert.Contains(t, suggestionWriters, f, "suggestion writer for %s", f)
		assert.Contains(t, batchWriters, f, "batch writer for %s", f)
	}
}

func TestUnknownFormatErrors(t *testing.T) {
	var b bytes.Buffer
	rec := NewRecord("Hello World", "HW", acronym.DefaultOptions(), acronym.StrategyBasic)

	err := WriteRecord("nope-format", &b, rec)
	assert.True(t, errors.Is(err, ErrUnknownFormat), "record: %v", err)

	err = WriteSuggestions("wat", &b, Suggestions{})
	assert.True(t, errors.Is(err, ErrUnknownFormat), "suggestions: %v", err)

	err = WriteBatch("???", &b, nil)
	assert.True(t, errors.Is(err, ErrUnknownFormat), "batch: %v", err)

	assert.Zero(t, b.Len())
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord("Hello World", "hw", acronym.DefaultOptions().WithUppercase(false), "")
	assert.Nil(t, rec.Options.MaxWords)
	assert.True(t, rec.Options.Lowercase)
	assert.Equal(t, "basic", rec.Options.Strategy)
	assert.Equal(t, "", rec.Options.maxWordsField())

	rec = NewRecord("Hello World", "HW", acronym.DefaultOptions().WithMaxWords(3), acronym.StrategySyllable)
	require.NotNil(t, rec.Options.MaxWords)
	assert.Equal(t, 3, *rec.Options.MaxWords)
	assert.Equal(t, "3", rec.Options.maxWordsField())
	assert.Equal(t, "syllable", rec.Options.Strategy)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(errors.New("boom")))
}
