// Package export writes a generated project to a zip archive, a directory
// tree, or S3-compatible object storage.
package export

import "errors"

// Sentinel errors for export operations.
var (
	// ErrPathTraversal indicates a file path that is absolute or leaves the export root.
	ErrPathTraversal = errors.New("export: path escapes export root")

	// ErrEmptyProject indicates a project without files.
	ErrEmptyProject = errors.New("export: project has no files")
)
