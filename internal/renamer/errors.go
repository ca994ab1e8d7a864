// internal/renamer/errors.go
package renamer

import "errors"

var (
	// ErrInvalidInput indicates a missing or malformed required field.
	// The operation was not attempted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceNotFound indicates the file to rename does not exist.
	ErrSourceNotFound = errors.New("file not found")

	// ErrDestinationExists indicates the destination file already exists.
	// Nothing is ever overwritten.
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrRenameFailed indicates the filesystem refused the rename.
	ErrRenameFailed = errors.New("failed to rename file")

	// ErrPathTraversal indicates a new filename would leave its directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
