package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdindex/pkg/syncer"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatFileOutcome formats one considered output file as a single styled
// line, e.g. "  written    notes/index.md".
func (s *Styles) FormatFileOutcome(outcome syncer.FileOutcome) string {
	var marker string
	switch outcome.Status {
	case syncer.StatusWritten:
		marker = s.Written.Render("written  ")
	case syncer.StatusStale:
		marker = s.Stale.Render("stale    ")
	case syncer.StatusFailed:
		marker = s.Failed.Render("failed   ")
	default:
		marker = s.Unchanged.Render("unchanged")
	}

	line := fmt.Sprintf("  %s  %s", marker, s.FilePath.Render(outcome.Path))
	if outcome.Error != nil {
		line += s.Dim.Render(fmt.Sprintf(" (%v)", outcome.Error))
	}
	return line + "\n"
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 files written, 5 unchanged (6 categories, 42 notes)".
func (s *Styles) FormatSummaryOneLine(stats syncer.Stats) string {
	var parts []string

	if stats.Written > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s written", stats.Written, plural(stats.Written))))
	}
	if stats.Stale > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s stale", stats.Stale, plural(stats.Stale))))
	}
	if stats.Failed > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s failed", stats.Failed, plural(stats.Failed))))
	}

	if len(parts) == 0 {
		parts = append(parts, s.Success.Render("everything up to date"))
		parts = append(parts, fmt.Sprintf("%d %s checked", stats.Unchanged, plural(stats.Unchanged)))
	} else if stats.Unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", stats.Unchanged))
	}

	line := strings.Join(parts, ", ")
	line += s.Dim.Render(fmt.Sprintf(" (%d categories, %d notes)", stats.Categories, stats.Notes))
	return line + "\n"
}

func plural(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}
