// Package fsutil provides the filesystem primitives mdindex relies on:
// input validation helpers and atomic write-if-changed output.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for categorization via errors.Is.
var (
	// ErrNotFound indicates a mandatory path does not exist.
	ErrNotFound = errors.New("path not found")

	// ErrNotDirectory indicates the path exists but is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")
)

// RequireFile verifies that path exists and is a regular file.
func RequireFile(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return classifyStatErr(path, err)
	}
	if stat.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	return nil
}

// RequireDir verifies that path exists and is a directory.
func RequireDir(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return classifyStatErr(path, err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return nil
}

func classifyStatErr(path string, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if os.IsPermission(err) {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	}
	return fmt.Errorf("stat %s: %w", path, err)
}
