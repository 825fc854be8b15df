package nav

import (
	"regexp"
	"strings"
)

// LineScanExtractor recovers category entries with a line-oriented scan.
// It is the fallback strategy for documents the YAML parser rejects, and
// tolerates loosely indented hand-edited configs.
type LineScanExtractor struct {
	// Group is the nav key introducing the category list, e.g. "分类".
	Group string
}

var (
	listItemRe = regexp.MustCompile(`^(\s*)-`)
	entryRe    = regexp.MustCompile(`^(\s*)-\s*([^:]+):\s*(\S+)`)
)

// Extract scans lines for the categories block. The block opens at a line
// of the form "- <group>:"; every following non-blank line at strictly
// deeper indentation matching "- <title>: <path>" emits an entry. A list
// item at indentation at or above the marker's, or any non-list-item line,
// ends the block. Blank lines inside the block are skipped.
func (e LineScanExtractor) Extract(text string) []Entry {
	markerRe := regexp.MustCompile(`^(\s*)-\s*` + regexp.QuoteMeta(e.Group) + `\s*:\s*`)

	var entries []Entry
	inBlock := false
	baseIndent := 0

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r")

		if !inBlock {
			if m := markerRe.FindStringSubmatch(line); m != nil {
				inBlock = true
				baseIndent = len(m[1])
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		m := listItemRe.FindStringSubmatch(line)
		if m == nil {
			// Non-list line marks the end of the category block.
			break
		}
		if len(m[1]) <= baseIndent {
			break
		}

		if em := entryRe.FindStringSubmatch(line); em != nil {
			entries = append(entries, Entry{
				Title: strings.TrimSpace(em[2]),
				Path:  strings.TrimSpace(em[3]),
			})
		}
	}

	return entries
}
