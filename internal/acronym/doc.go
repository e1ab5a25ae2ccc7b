// Package acronym turns free-form phrases into acronyms.
//
// Everything here is a pure function of its inputs. The pipeline is:
//
//	Normalize -> ExtractWords -> first letter or syllable fragment -> case fold
//
// GenerateMultipleOptions runs several of those pipelines with different
// Options and groups the results by strategy.
package acronym
