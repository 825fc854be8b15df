// Package syncer orchestrates one full index regeneration: extract the
// navigation, aggregate categories, render the three document kinds, and
// write each output with the write-if-changed contract. Execution is
// strictly single-threaded; every run is a stateless transform from the
// (site config, notes tree) pair to the derived Markdown files.
package syncer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/mdindex/internal/logging"
	"github.com/yaklabco/mdindex/pkg/catalog"
	"github.com/yaklabco/mdindex/pkg/config"
	"github.com/yaklabco/mdindex/pkg/fsutil"
	"github.com/yaklabco/mdindex/pkg/nav"
	"github.com/yaklabco/mdindex/pkg/render"
	"github.com/yaklabco/mdindex/pkg/title"
)

// Syncer regenerates the derived indexes for one repository root.
type Syncer struct {
	// Root is the repository root; cfg paths are resolved against it.
	Root string

	// Config is the resolved tool configuration.
	Config *config.Config
}

// New creates a Syncer for the given root and configuration.
func New(root string, cfg *config.Config) *Syncer {
	return &Syncer{Root: root, Config: cfg}
}

// Run performs one full synchronization. Missing mandatory inputs (the
// site configuration or the notes root) are fatal and return an error
// wrapping fsutil.ErrNotFound with no output written. Per-output write
// failures are recorded in the result and never stop the other outputs.
func (s *Syncer) Run(ctx context.Context) (*Result, error) {
	logger := logging.Default()
	cfg := s.Config

	navPath := filepath.Join(s.Root, cfg.NavFile)
	notesDir := filepath.Join(s.Root, cfg.NotesDir)

	if err := fsutil.RequireFile(navPath); err != nil {
		return nil, fmt.Errorf("site configuration: %w", err)
	}
	if err := fsutil.RequireDir(notesDir); err != nil {
		return nil, fmt.Errorf("notes root: %w", err)
	}

	navText, err := os.ReadFile(navPath)
	if err != nil {
		return nil, fmt.Errorf("read site configuration: %w", err)
	}

	entries := nav.Extract(string(navText), cfg.NavGroup)
	logger.Debug("navigation extracted",
		logging.FieldNavEntries, len(entries),
		logging.FieldNavGroup, cfg.NavGroup,
	)

	categories := catalog.Aggregate(notesDir, entries)
	sections := s.gatherSections(categories)

	result := &Result{}
	result.Stats.Categories = len(categories)
	for _, sec := range sections {
		result.Stats.Notes += len(sec.Notes)
	}

	s.writeOutput(ctx, result, cfg.LandingFile,
		render.Landing(categories, cfg.Descriptions))
	s.writeOutput(ctx, result, cfg.AllNotesFile,
		render.AllNotes(sections))
	for _, sec := range sections {
		s.writeOutput(ctx, result, sec.Category.IndexRelPath,
			render.CategoryPage(sec))
	}

	logger.Debug("run complete",
		logging.FieldCategories, result.Stats.Categories,
		logging.FieldNotes, result.Stats.Notes,
		logging.FieldWritten, result.Stats.Written,
		logging.FieldUnchanged, result.Stats.Unchanged,
		logging.FieldStale, result.Stats.Stale,
		logging.FieldFailed, result.Stats.Failed,
	)

	return result, nil
}

// gatherSections resolves note titles for every category up front so the
// renderers stay free of I/O.
func (s *Syncer) gatherSections(categories []catalog.Category) []render.Section {
	resolver := title.NewResolver(s.Config.TitleMode)

	sections := make([]render.Section, 0, len(categories))
	for _, c := range categories {
		var notes []render.Note
		for _, file := range c.Notes() {
			notes = append(notes, render.Note{
				File:  file,
				Title: resolver.Resolve(filepath.Join(c.Dir, file)),
			})
		}
		sections = append(sections, render.Section{Category: c, Notes: notes})
	}
	return sections
}

// writeOutput writes one rendered document under the notes root using the
// write-if-changed contract, or only compares in check mode. relPath is
// slash-separated relative to the notes root.
func (s *Syncer) writeOutput(ctx context.Context, result *Result, relPath, content string) {
	path := filepath.Join(s.Root, s.Config.NotesDir, filepath.FromSlash(relPath))
	display := s.Config.NotesDir + "/" + relPath

	if s.Config.Check {
		existing, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			result.record(FileOutcome{Path: display, Status: StatusFailed, Error: err})
			return
		}
		status := StatusUnchanged
		if string(existing) != content {
			status = StatusStale
		}
		result.record(FileOutcome{Path: display, Status: status})
		return
	}

	written, err := fsutil.WriteIfChanged(ctx, path, []byte(content), 0)
	if err != nil {
		result.record(FileOutcome{Path: display, Status: StatusFailed, Error: err})
		return
	}
	status := StatusUnchanged
	if written {
		status = StatusWritten
	}
	result.record(FileOutcome{Path: display, Status: status})
}
