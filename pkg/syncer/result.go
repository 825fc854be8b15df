package syncer

// Status describes the outcome for one output file.
type Status string

const (
	// StatusWritten means the file's content changed and was rewritten.
	StatusWritten Status = "written"

	// StatusUnchanged means the rendered content already matched on disk.
	StatusUnchanged Status = "unchanged"

	// StatusStale means the file would change; reported in check mode
	// where nothing is written.
	StatusStale Status = "stale"

	// StatusFailed means rendering succeeded but the write failed.
	StatusFailed Status = "failed"
)

// FileOutcome records the result for one output file.
type FileOutcome struct {
	// Path is the output path relative to the repository root, joined
	// with forward slashes.
	Path string

	// Status is the write outcome.
	Status Status

	// Error is set when Status is StatusFailed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// Categories is the number of categories in the final list.
	Categories int

	// Notes is the total number of qualifying note files.
	Notes int

	// Written counts files rewritten this run.
	Written int

	// Unchanged counts files whose content already matched.
	Unchanged int

	// Stale counts files that would change, in check mode.
	Stale int

	// Failed counts files whose write failed.
	Failed int
}

// Result is the overall run result. Files are ordered deterministically:
// landing index, flattened index, then category pages in category order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// Clean reports whether no output file changed or would change.
func (r *Result) Clean() bool {
	if r == nil {
		return true
	}
	return r.Stats.Written == 0 && r.Stats.Stale == 0 && r.Stats.Failed == 0
}

// HasFailures reports whether any output file failed to write.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.Failed > 0
}

func (r *Result) record(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	switch outcome.Status {
	case StatusWritten:
		r.Stats.Written++
	case StatusUnchanged:
		r.Stats.Unchanged++
	case StatusStale:
		r.Stats.Stale++
	case StatusFailed:
		r.Stats.Failed++
	}
}
