// Package render builds the derived Markdown documents: the landing index,
// the flattened all-notes index, and the per-category index pages. All
// renderers are pure string builders over data the caller has already
// gathered; none perform I/O.
package render

import (
	"strings"

	"github.com/yaklabco/mdindex/pkg/catalog"
)

// Note is one qualifying note file with its resolved display title.
type Note struct {
	// File is the filename within the category directory, e.g. "a.md".
	File string

	// Title is the resolved display title, not yet escaped.
	Title string
}

// Section pairs a category with its note entries, in render order.
type Section struct {
	Category catalog.Category
	Notes    []Note
}

// finish trims trailing whitespace from the assembled document and
// guarantees exactly one trailing newline.
func finish(parts []string) string {
	return strings.TrimRight(strings.Join(parts, "\n"), " \t\n") + "\n"
}
