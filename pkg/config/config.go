// Package config defines core configuration types for mdindex.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

// TitleMode selects how note titles are derived for index entries.
type TitleMode string

const (
	// TitleModeFilename uses the file's base name without extension.
	TitleModeFilename TitleMode = "filename"

	// TitleModeHeading uses the first level-1 heading line, falling back
	// to the filename when no heading is present or the file is unreadable.
	TitleModeHeading TitleMode = "heading"
)

// IsValid returns true if the title mode is a known value.
func (m TitleMode) IsValid() bool {
	switch m {
	case TitleModeFilename, TitleModeHeading:
		return true
	default:
		return false
	}
}

// Default file and directory names, relative to the repository root.
const (
	DefaultNotesDir     = "notes"
	DefaultNavFile      = "mkdocs.yml"
	DefaultLandingFile  = "index.md"
	DefaultAllNotesFile = "all-notes.md"
)

// DefaultNavGroup is the nav key that introduces the category list in the
// site configuration.
const DefaultNavGroup = "分类"

// Config holds the resolved mdindex configuration.
type Config struct {
	// NotesDir is the notes root, relative to the repository root.
	NotesDir string `yaml:"notes_dir"`

	// NavFile is the site configuration containing the nav tree,
	// relative to the repository root.
	NavFile string `yaml:"nav_file"`

	// NavGroup is the nav key whose children are the category entries.
	NavGroup string `yaml:"nav_group"`

	// LandingFile is the landing index name, written inside NotesDir.
	LandingFile string `yaml:"landing_file"`

	// AllNotesFile is the flattened index name, written inside NotesDir.
	AllNotesFile string `yaml:"all_notes_file"`

	// TitleMode selects filename or heading based note titles.
	TitleMode TitleMode `yaml:"title_mode"`

	// Descriptions maps category directory names to landing-page blurbs.
	// Entries here override or extend the built-in table.
	Descriptions map[string]string `yaml:"descriptions"`

	// Check reports stale files without writing. CLI-only.
	Check bool `yaml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		NotesDir:     DefaultNotesDir,
		NavFile:      DefaultNavFile,
		NavGroup:     DefaultNavGroup,
		LandingFile:  DefaultLandingFile,
		AllNotesFile: DefaultAllNotesFile,
		TitleMode:    TitleModeFilename,
		Descriptions: map[string]string{},
	}
}
