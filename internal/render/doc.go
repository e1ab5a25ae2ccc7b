// Package render turns acronym results into serialized output.
//
// Writers are registered per format in init blocks and dispatched by name:
//   - Record: one phrase, its acronym and the options that produced it.
//   - Suggestions: the multi strategy result for one phrase.
//   - Batch: many records, one per input line.
//
// The acronym engine stays free of presentation; callers pick the format.
package render
