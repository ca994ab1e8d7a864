// Package renamer turns confirmed metadata into canonical filenames and
// renames files in place without ever overwriting an existing file.
package renamer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Outcome messages.
const (
	MsgAlreadyNamed = "File already has the correct name"
	MsgDestExists   = "Destination file already exists"
	MsgDryRun       = "Dry run - file would be renamed"
	MsgRenamed      = "File renamed successfully"
	MsgRenameFailed = "Failed to rename file"
	MsgInvalidName  = "Invalid filename"
	MsgNotFound     = "File not found"
)

// Outcome reports what a rename did, or would do.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	NewPath string `json:"new_path,omitempty"`
	DryRun  bool   `json:"dry_run,omitempty"`

	// Err classifies a failure for callers. Nil on success.
	Err error `json:"-"`
}

// Executor renames files using a Formatter and an optional history journal.
type Executor struct {
	formatter *Formatter
	history   *HistoryStore
	log       *slog.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithFormatter sets the formatter used by Plan, Apply and Batch.
func WithFormatter(f *Formatter) Option {
	return func(e *Executor) {
		e.formatter = f
	}
}

// WithHistory records every applied rename in the given store.
func WithHistory(h *HistoryStore) Option {
	return func(e *Executor) {
		e.history = h
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) {
		e.log = l
	}
}

// NewExecutor creates an executor with default templates and no journal.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		formatter: defaultFormatter,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Formatter returns the executor's formatter.
func (e *Executor) Formatter() *Formatter {
	return e.formatter
}

// Rename renames oldPath to newFilename inside the same directory.
//
// Checks run in order: the new name must be a bare filename and the source
// must exist; an identical name is a successful no-op; an existing
// destination is a failure; a dry run stops before touching the filesystem.
func (e *Executor) Rename(oldPath, newFilename string, dryRun bool) Outcome {
	return e.rename(oldPath, newFilename, dryRun, "")
}

func (e *Executor) rename(oldPath, newFilename string, dryRun bool, kind string) Outcome {
	if err := checkFilename(newFilename); err != nil {
		return Outcome{Message: MsgInvalidName, Err: err}
	}

	dir := filepath.Dir(oldPath)
	newPath := filepath.Join(dir, newFilename)
	if err := ValidatePath(newPath, dir); err != nil {
		return Outcome{Message: MsgInvalidName, Err: fmt.Errorf("%w: %q", err, newFilename)}
	}

	if _, err := os.Lstat(oldPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Outcome{Message: MsgNotFound, Err: fmt.Errorf("%w: %s", ErrSourceNotFound, oldPath)}
		}
		return e.failed(oldPath, newPath, err)
	}

	if filepath.Base(oldPath) == newFilename {
		return Outcome{Success: true, Message: MsgAlreadyNamed, NewPath: newPath}
	}

	taken, err := destinationTaken(oldPath, newPath)
	if err != nil {
		return e.failed(oldPath, newPath, err)
	}
	if taken {
		return Outcome{Message: MsgDestExists, NewPath: newPath, Err: ErrDestinationExists}
	}

	if dryRun {
		return Outcome{Success: true, Message: MsgDryRun, NewPath: newPath, DryRun: true}
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return e.failed(oldPath, newPath, err)
	}

	e.log.Info("renamed file", "from", oldPath, "to", newPath)

	if e.history != nil {
		entry := &HistoryEntry{OldPath: oldPath, NewPath: newPath, Kind: kind}
		if err := e.history.Add(entry); err != nil {
			e.log.Error("failed to record rename", "path", newPath, "error", err)
		}
	}

	return Outcome{Success: true, Message: MsgRenamed, NewPath: newPath}
}

// failed reports a filesystem error from any step of a rename.
func (e *Executor) failed(oldPath, newPath string, err error) Outcome {
	e.log.Warn("rename failed", "from", oldPath, "to", newPath, "error", err)
	return Outcome{
		Message: fmt.Sprintf("%s: %v", MsgRenameFailed, err),
		NewPath: newPath,
		Err:     fmt.Errorf("%w: %w", ErrRenameFailed, err),
	}
}

// checkFilename rejects names that are empty or contain a path separator.
// ".." is left to ValidatePath.
func checkFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: new filename is empty", ErrInvalidInput)
	}
	if name == "." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrPathTraversal, name)
	}
	return nil
}

// destinationTaken reports whether newPath names a different existing file.
// A case-only rename on a case-insensitive filesystem resolves to the source
// itself and is allowed.
func destinationTaken(oldPath, newPath string) (bool, error) {
	dst, err := os.Lstat(newPath)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	src, err := os.Lstat(oldPath)
	if err != nil {
		return false, err
	}
	return !os.SameFile(src, dst), nil
}

var defaultExecutor = NewExecutor()

// Rename renames a file with the default executor.
func Rename(oldPath, newFilename string, dryRun bool) Outcome {
	return defaultExecutor.Rename(oldPath, newFilename, dryRun)
}
