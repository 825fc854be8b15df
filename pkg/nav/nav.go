// Package nav extracts category navigation entries from a MkDocs site
// configuration. Two extraction strategies are provided: a structured YAML
// walk and a line-oriented scanner for documents the YAML parser cannot
// handle. Both are side-effect free and safe for concurrent use.
package nav

// Entry is one category declaration from the site navigation: a display
// title paired with a path relative to the notes root.
type Entry struct {
	Title string
	Path  string
}

// Extractor recovers the ordered category entries from raw site
// configuration text. A document that does not contain a matching
// categories block yields an empty slice, never an error.
type Extractor interface {
	Extract(text string) []Entry
}

// Extract runs the YAML strategy and falls back to the line scanner when
// the structured walk finds no entries. For structurally valid YAML the
// YAML strategy's answer is authoritative; the scanner is consulted only
// on an empty primary result.
func Extract(text, group string) []Entry {
	entries := (YAMLExtractor{Group: group}).Extract(text)
	if len(entries) > 0 {
		return entries
	}
	return (LineScanExtractor{Group: group}).Extract(text)
}
