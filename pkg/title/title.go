// Package title derives display titles for note files and escapes them for
// safe use in Markdown link text.
package title

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdindex/pkg/config"
)

// Resolver derives display titles for note files. The mode is explicit
// configuration so the resolver stays side-effect free and testable.
type Resolver struct {
	Mode config.TitleMode
}

// NewResolver returns a Resolver for the given mode. Unknown modes behave
// like filename mode.
func NewResolver(mode config.TitleMode) Resolver {
	return Resolver{Mode: mode}
}

// Resolve returns the display title for the note at path. Filename mode
// uses the base name without extension. Heading mode scans for the first
// level-1 heading line; a missing heading or any read error falls back to
// the filename result.
func (r Resolver) Resolve(path string) string {
	stem := Stem(path)
	if r.Mode != config.TitleModeHeading {
		return stem
	}

	f, err := os.Open(path)
	if err != nil {
		return stem
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if text, ok := headingText(scanner.Text()); ok {
			return text
		}
	}
	return stem
}

// Stem returns the file's base name without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// headingText matches a level-1 ATX heading: a single '#', whitespace,
// then text. It rejects deeper headings and bare "#" lines.
func headingText(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "#")
	if !ok || strings.HasPrefix(rest, "#") {
		return "", false
	}
	if rest == "" || !(rest[0] == ' ' || rest[0] == '\t') {
		return "", false
	}
	text := strings.TrimSpace(rest)
	if text == "" {
		return "", false
	}
	return text, true
}
