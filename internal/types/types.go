// Package types defines every cross-package data structure used by the repotxt CLI.
package types

const (
	EntryKindFile      = "file"
	EntryKindDirectory = "directory"

	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin-1"

	// SkipBinaryMarker replaces the content of files matching the binary extension table.
	SkipBinaryMarker = "Skipped binary file"
	// SkipMissingEncodingMarker replaces remote content delivered without a usable encoding.
	SkipMissingEncodingMarker = "Skipped due to missing encoding"
	// SkipUnsupportedEncodingMarker replaces content that decodes under no supported encoding.
	SkipUnsupportedEncodingMarker = "Skipped due to unsupported encoding"
	// SkipErrorMarkerFormat reports a per-file read failure inline.
	SkipErrorMarkerFormat = "Skipped due to error: %s"
)

// RepoEntry is one path produced by the tree walker.
type RepoEntry struct {
	RelativePath string
	Kind         string
}

// FileRecord holds the outcome of reading one repository file. Exactly one of
// Text (with Encoding set) or Skip carries the result.
type FileRecord struct {
	RelativePath string
	Text         string
	Encoding     string
	Skip         string
}

// RepoSnapshot aggregates everything the assembler needs for one run.
type RepoSnapshot struct {
	Name    string
	Readme  string
	Entries []RepoEntry
	Files   []FileRecord
}
