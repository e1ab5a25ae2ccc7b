package render

import (
	"encoding/json"
	"io"
)

func init() {
	RegisterRecord(FormatJSON, func(w io.Writer, rec Record) error { return writeJSON(w, rec) })
	RegisterSuggestions(FormatJSON, func(w io.Writer, s Suggestions) error { return writeJSON(w, s) })
	RegisterBatch(FormatJSON, func(w io.Writer, recs []Record) error {
		if recs == nil {
			recs = []Record{}
		}
		return writeJSON(w, recs)
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
