package util

import "errors"

// Sentinel errors for common failure modes. Recoverable conditions are
// reported with these rather than aborting a batch operation; the caller
// decides whether to skip or stop.
var (
	// ErrNotFound indicates a required row or resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates a foreign key that does not exist in the catalog
	ErrInvalidID = errors.New("invalid id")

	// ErrNotDirectory indicates a path that is missing or not a directory
	ErrNotDirectory = errors.New("not a directory")

	// ErrNotRegularFile indicates a path that is missing or not a regular file
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrUnsupported indicates a file format that is not recognized
	ErrUnsupported = errors.New("unsupported format")
)
