package pretty_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdindex/internal/ui/pretty"
	"github.com/yaklabco/mdindex/pkg/syncer"
)

func TestFormatFileOutcome(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name    string
		outcome syncer.FileOutcome
		want    []string
	}{
		{
			name:    "written",
			outcome: syncer.FileOutcome{Path: "notes/index.md", Status: syncer.StatusWritten},
			want:    []string{"written", "notes/index.md"},
		},
		{
			name:    "unchanged",
			outcome: syncer.FileOutcome{Path: "notes/all-notes.md", Status: syncer.StatusUnchanged},
			want:    []string{"unchanged", "notes/all-notes.md"},
		},
		{
			name:    "stale",
			outcome: syncer.FileOutcome{Path: "notes/misc/index.md", Status: syncer.StatusStale},
			want:    []string{"stale", "notes/misc/index.md"},
		},
		{
			name: "failed includes the error",
			outcome: syncer.FileOutcome{
				Path:   "notes/strategy/index.md",
				Status: syncer.StatusFailed,
				Error:  errors.New("permission denied"),
			},
			want: []string{"failed", "notes/strategy/index.md", "permission denied"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			line := styles.FormatFileOutcome(tc.outcome)
			for _, fragment := range tc.want {
				assert.Contains(t, line, fragment)
			}
			assert.True(t, strings.HasSuffix(line, "\n"))
		})
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats syncer.Stats
		want  []string
	}{
		{
			name:  "all unchanged",
			stats: syncer.Stats{Unchanged: 5, Categories: 3, Notes: 12},
			want:  []string{"everything up to date", "5 files checked", "3 categories", "12 notes"},
		},
		{
			name:  "writes and unchanged",
			stats: syncer.Stats{Written: 2, Unchanged: 3, Categories: 3, Notes: 12},
			want:  []string{"2 files written", "3 unchanged"},
		},
		{
			name:  "singular file",
			stats: syncer.Stats{Written: 1, Categories: 1, Notes: 1},
			want:  []string{"1 file written"},
		},
		{
			name:  "stale and failed reported",
			stats: syncer.Stats{Stale: 4, Failed: 1},
			want:  []string{"4 files stale", "1 file failed"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			line := styles.FormatSummaryOneLine(tc.stats)
			for _, fragment := range tc.want {
				assert.Contains(t, line, fragment)
			}
			assert.True(t, strings.HasSuffix(line, "\n"))
		})
	}
}
