// Package catalog builds the ordered category list for a notes tree by
// merging navigation-declared categories with on-disk directories the
// navigation does not mention.
package catalog

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/mdindex/pkg/nav"
	"github.com/yaklabco/mdindex/pkg/title"
)

// categoryIndexName is the per-category index file. Discovery requires the
// exact lowercase name; note listing excludes it under any casing.
const categoryIndexName = "index.md"

// Category is one directory of related notes with its own generated index
// page. Immutable after construction.
type Category struct {
	// Title is the display title from the navigation, or derived from the
	// directory's index.md for auto-discovered categories.
	Title string

	// Dir is the category directory on disk.
	Dir string

	// Name is the directory's base name, the uniqueness key.
	Name string

	// IndexRelPath is the index page path relative to the notes root,
	// joined with forward slashes.
	IndexRelPath string
}

// Aggregate merges navigation entries with on-disk category directories.
// Navigation entries whose directory is missing are skipped silently.
// Directories not named in the navigation are appended afterwards, sorted
// case-insensitively by name, provided they contain an index.md.
func Aggregate(notesDir string, entries []nav.Entry) []Category {
	var categories []Category
	seen := map[string]bool{}

	for _, entry := range entries {
		name, _, _ := strings.Cut(entry.Path, "/")
		dir := filepath.Join(notesDir, name)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		categories = append(categories, Category{
			Title:        entry.Title,
			Dir:          dir,
			Name:         name,
			IndexRelPath: entry.Path,
		})
		seen[name] = true
	}

	for _, name := range remainingDirs(notesDir, seen) {
		dir := filepath.Join(notesDir, name)
		categories = append(categories, Category{
			Title:        indexHeading(filepath.Join(dir, categoryIndexName), name),
			Dir:          dir,
			Name:         name,
			IndexRelPath: name + "/" + categoryIndexName,
		})
	}

	return categories
}

// remainingDirs lists unconsumed category directories under notesDir that
// carry an index.md, sorted case-insensitively by name.
func remainingDirs(notesDir string, seen map[string]bool) []string {
	dirents, err := os.ReadDir(notesDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, d := range dirents {
		if !d.IsDir() || seen[d.Name()] {
			continue
		}
		if _, err := os.Stat(filepath.Join(notesDir, d.Name(), categoryIndexName)); err != nil {
			continue
		}
		names = append(names, d.Name())
	}

	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// indexHeading reads the first Markdown heading line of a category's
// index.md, stripping the leading '#' run. The heading is unescaped so a
// title read back from a generated page round-trips through rendering.
// Missing file or heading falls back to the directory name.
func indexHeading(indexPath, fallback string) string {
	f, err := os.Open(indexPath)
	if err != nil {
		return fallback
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			if text := strings.TrimLeft(line, "# "); text != "" {
				return title.Unescape(text)
			}
		}
	}
	return fallback
}

// Notes lists the category's qualifying note files: first-level .md files
// excluding the index page under any casing, sorted case-insensitively by
// filename. A read failure yields an empty list.
func (c Category) Notes() []string {
	dirents, err := os.ReadDir(c.Dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		name := d.Name()
		if !strings.EqualFold(filepath.Ext(name), ".md") {
			continue
		}
		if strings.EqualFold(name, categoryIndexName) {
			continue
		}
		files = append(files, name)
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i]) < strings.ToLower(files[j])
	})
	return files
}
