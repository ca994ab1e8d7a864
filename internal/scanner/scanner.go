// Package scanner lists a single media directory and guesses what each file is.
package scanner

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vmunix/renamarr/internal/media"
	"github.com/vmunix/renamarr/pkg/release"
)

// Scanner applies classification, TV detection and name cleaning to the
// files of one directory.
type Scanner struct {
	cleaner *release.Cleaner
	log     *slog.Logger
}

// New creates a scanner. A nil cleaner uses the default vocabulary and a nil
// logger discards output.
func New(cleaner *release.Cleaner, log *slog.Logger) *Scanner {
	if cleaner == nil {
		cleaner = release.DefaultCleaner()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{cleaner: cleaner, log: log}
}

// Scan returns the media files directly inside dir, ordered by filename.
// Subdirectories and other non-regular entries are skipped; symlinks to
// regular files are followed. A directory that does not exist yields an
// empty result.
func (s *Scanner) Scan(dir string, mode media.Mode) []media.File {
	if mode == "" {
		mode = media.ModeAuto
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("scan failed", "dir", dir, "error", err)
		}
		return []media.File{}
	}

	files := make([]media.File, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		if f, ok := s.inspect(entry.Name(), path, mode); ok {
			files = append(files, f)
		}
	}

	s.log.Debug("scanned directory", "dir", dir, "mode", mode, "found", len(files))
	return files
}

// Detect guesses what a bare filename is without touching the filesystem.
// It reports false when the mode excludes the file.
func (s *Scanner) Detect(filename string, mode media.Mode) (media.File, bool) {
	if mode == "" {
		mode = media.ModeAuto
	}
	return s.inspect(filename, filename, mode)
}

// inspect builds the record for one regular file, or reports false when the
// mode excludes it.
func (s *Scanner) inspect(name, path string, mode media.Mode) (media.File, bool) {
	f := media.File{
		Filename:  name,
		Path:      path,
		Extension: media.Extension(name),
		MediaType: media.Classify(name),
	}

	switch f.MediaType {
	case media.TypeVideo:
		if mode.AllowsTV() {
			if tv, ok := release.DetectTV(name); ok {
				tv.ShowName = s.cleaner.CleanShowName(tv.ShowName)
				f.Kind, f.Detection = release.KindTV, tv
				return f, true
			}
		}
		if mode.AllowsMovies() {
			f.Kind, f.Detection = release.KindMovie, s.cleaner.CleanMovieName(name)
			return f, true
		}

	case media.TypeAudio:
		if mode.AllowsMusic() {
			f.Kind, f.Detection = release.KindMusic, s.cleaner.CleanMusicName(name)
			return f, true
		}
	}

	return f, false
}

var defaultScanner = New(nil, nil)

// Scan scans dir with the default vocabulary.
func Scan(dir string, mode media.Mode) []media.File {
	return defaultScanner.Scan(dir, mode)
}
