// internal/renamer/request.go
package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmunix/renamarr/internal/media"
	"github.com/vmunix/renamarr/pkg/release"
)

// Request asks for one file to be renamed from confirmed metadata.
// Which fields are required depends on Type.
type Request struct {
	Type         release.Kind `json:"type"`
	Path         string       `json:"filepath"`
	Title        string       `json:"title,omitempty"`
	Year         string       `json:"year,omitempty"`
	Show         string       `json:"show_name,omitempty"`
	Season       int          `json:"season,omitempty"`
	Episode      int          `json:"episode,omitempty"`
	EpisodeTitle string       `json:"episode_title,omitempty"`
	Artist       string       `json:"artist,omitempty"`
}

// Result is the outcome of applying one Request.
type Result struct {
	Path             string `json:"filepath,omitempty"`
	OriginalFilename string `json:"original_filename,omitempty"`
	NewFilename      string `json:"new_filename,omitempty"`
	Outcome
}

// BatchResult summarizes a batch of renames.
type BatchResult struct {
	Results      []Result `json:"results"`
	Total        int      `json:"total"`
	SuccessCount int      `json:"success_count"`
	DryRun       bool     `json:"dry_run"`
}

// Preview describes what a rename would produce.
type Preview struct {
	OriginalFilename string `json:"original_filename"`
	NewFilename      string `json:"new_filename"`
	NewPath          string `json:"new_filepath"`
	AlreadyExists    bool   `json:"already_exists"`
}

// Plan validates a request and returns the canonical filename for it.
// The source file's extension is kept.
func (e *Executor) Plan(req Request) (string, error) {
	if req.Path == "" {
		return "", fmt.Errorf("%w: filepath is required", ErrInvalidInput)
	}
	info, err := os.Stat(req.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, req.Path)
		}
		return "", fmt.Errorf("stat %s: %w", req.Path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInvalidInput, req.Path)
	}

	ext := media.Extension(filepath.Base(req.Path))

	switch req.Type {
	case release.KindMovie:
		if blank(req.Title) || blank(req.Year) {
			return "", fmt.Errorf("%w: title and year are required", ErrInvalidInput)
		}
		return e.formatter.MovieName(Movie{Title: req.Title, Year: req.Year}, ext), nil

	case release.KindTV:
		if blank(req.Show) || req.Season <= 0 || req.Episode <= 0 {
			return "", fmt.Errorf("%w: show_name, season, and episode are required", ErrInvalidInput)
		}
		return e.formatter.EpisodeName(Episode{
			Show:         req.Show,
			Season:       req.Season,
			Episode:      req.Episode,
			EpisodeTitle: req.EpisodeTitle,
		}, ext), nil

	case release.KindMusic:
		if blank(req.Artist) || blank(req.Title) {
			return "", fmt.Errorf("%w: artist and title are required", ErrInvalidInput)
		}
		return e.formatter.TrackName(Track{Artist: req.Artist, Title: req.Title}, ext), nil

	default:
		return "", fmt.Errorf("%w: invalid file type %q", ErrInvalidInput, req.Type)
	}
}

// Preview plans a request and reports whether the target is already taken.
func (e *Executor) Preview(req Request) (Preview, error) {
	name, err := e.Plan(req)
	if err != nil {
		return Preview{}, err
	}

	newPath := filepath.Join(filepath.Dir(req.Path), name)
	taken, err := destinationTaken(req.Path, newPath)
	if err != nil {
		return Preview{}, fmt.Errorf("%w: %w", ErrRenameFailed, err)
	}

	return Preview{
		OriginalFilename: filepath.Base(req.Path),
		NewFilename:      name,
		NewPath:          newPath,
		AlreadyExists:    taken,
	}, nil
}

// Apply plans and executes a single request.
func (e *Executor) Apply(req Request, dryRun bool) Result {
	name, err := e.Plan(req)
	if err != nil {
		return Result{
			Path:    req.Path,
			Outcome: Outcome{Message: requestMessage(err), Err: err},
		}
	}

	return Result{
		Path:             req.Path,
		OriginalFilename: filepath.Base(req.Path),
		NewFilename:      name,
		Outcome:          e.rename(req.Path, name, dryRun, string(req.Type)),
	}
}

// Batch applies requests one after another. A failed item never stops the
// rest of the batch.
func (e *Executor) Batch(reqs []Request, dryRun bool) BatchResult {
	out := BatchResult{
		Results: make([]Result, 0, len(reqs)),
		DryRun:  dryRun,
	}

	for _, req := range reqs {
		r := e.Apply(req, dryRun)
		if r.Success {
			out.SuccessCount++
		}
		out.Results = append(out.Results, r)
	}

	out.Total = len(out.Results)
	e.log.Info("batch rename finished", "total", out.Total, "succeeded", out.SuccessCount, "dry_run", dryRun)
	return out
}

// requestMessage turns a Plan error into a user-facing message.
func requestMessage(err error) string {
	if errors.Is(err, ErrSourceNotFound) {
		return "File not found"
	}
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 && errors.Is(err, ErrInvalidInput) {
		return msg[i+2:]
	}
	return msg
}

// blank reports whether s leaves nothing once sanitized, so "???" counts as
// missing.
func blank(s string) bool {
	return strings.TrimSpace(SanitizeFilename(s)) == ""
}
