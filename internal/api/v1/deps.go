package v1

import (
	"errors"
	"log/slog"

	"github.com/vmunix/renamarr/internal/lookup"
	"github.com/vmunix/renamarr/internal/renamer"
	"github.com/vmunix/renamarr/internal/scanner"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// VideoProviderFactory builds a video provider for an API key. It is called
// when the key changes at runtime.
type VideoProviderFactory func(apiKey string) lookup.VideoProvider

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Executor *renamer.Executor
	Scanner  *scanner.Scanner
	Lookup   *lookup.Service

	// Optional dependencies (nil if not configured)
	History  *renamer.HistoryStore
	NewVideo VideoProviderFactory
	Logger   *slog.Logger
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Executor == nil {
		return errors.Join(ErrMissingDependency, errors.New("rename executor is required"))
	}
	if d.Scanner == nil {
		return errors.Join(ErrMissingDependency, errors.New("scanner is required"))
	}
	if d.Lookup == nil {
		return errors.Join(ErrMissingDependency, errors.New("lookup service is required"))
	}
	return nil
}
