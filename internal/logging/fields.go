// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldRoot  = "root"

	// Configuration fields.
	FieldNotesDir  = "notes_dir"
	FieldNavFile   = "nav_file"
	FieldNavGroup  = "nav_group"
	FieldTitleMode = "title_mode"
	FieldCheck     = "check"

	// Run fields.
	FieldNavEntries = "nav_entries"
	FieldCategories = "categories"
	FieldNotes      = "notes"
	FieldWritten    = "written"
	FieldUnchanged  = "unchanged"
	FieldStale      = "stale"
	FieldFailed     = "failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
