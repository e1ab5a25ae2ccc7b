package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format is an output format name.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatTOML Format = "toml"
)

// Formats lists every supported format in help order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCSV, FormatTSV, FormatTOML}

// ErrUnknownFormat is returned when no writer is registered for a format.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat resolves a format name case-insensitively. Empty means text.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FormatText, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownFormat, name, FormatNames())
}

// FormatNames returns the supported formats joined by "|", for flag help.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}

type (
	RecordWriter     func(w io.Writer, rec Record) error
	SuggestionWriter func(w io.Writer, s Suggestions) error
	BatchWriter      func(w io.Writer, recs []Record) error
)

// Writer registries (format -> handler), filled from init blocks in the
// per-format files.
var (
	recordWriters     = map[Format]RecordWriter{}
	suggestionWriters = map[Format]SuggestionWriter{}
	batchWriters      = map[Format]BatchWriter{}
)

// Register helpers (last wins)
func RegisterRecord(f Format, fn RecordWriter)         { recordWriters[f] = fn }
func RegisterSuggestions(f Format, fn SuggestionWriter) { suggestionWriters[f] = fn }
func RegisterBatch(f Format, fn BatchWriter)           { batchWriters[f] = fn }

// WriteRecord renders a single record in the named format.
func WriteRecord(format string, w io.Writer, rec Record) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	fn, ok := recordWriters[f]
	if !ok {
		return fmt.Errorf("%w %q (no record writer registered)", ErrUnknownFormat, format)
	}
	return fn(w, rec)
}

// WriteSuggestions renders a suggestion set in the named format.
func WriteSuggestions(format string, w io.Writer, s Suggestions) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	fn, ok := suggestionWriters[f]
	if !ok {
		return fmt.Errorf("%w %q (no suggestion writer registered)", ErrUnknownFormat, format)
	}
	return fn(w, s)
}

// WriteBatch renders batch records in the named format.
func WriteBatch(format string, w io.Writer, recs []Record) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	fn, ok := batchWriters[f]
	if !ok {
		return fmt.Errorf("%w %q (no batch writer registered)", ErrUnknownFormat, format)
	}
	return fn(w, recs)
}
