package cli

// Exit codes for mdindex.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a missing mandatory input path, stale files
	// under --check, or any other failed run.
	ExitFailure = 1
)
