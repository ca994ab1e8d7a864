package media

import (
	"fmt"
	"strings"
)

// Mode restricts what a scan is allowed to detect.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeMovies Mode = "movies"
	ModeTV     Mode = "tv"
	ModeMusic  Mode = "music"
)

// ParseMode parses a scan mode. The empty string means auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeMovies, ModeTV, ModeMusic:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be one of auto, movies, tv, music", s)
	}
}

// AllowsTV reports whether video files may be detected as episodes.
func (m Mode) AllowsTV() bool {
	return m == ModeAuto || m == ModeTV
}

// AllowsMovies reports whether video files may fall back to movies.
func (m Mode) AllowsMovies() bool {
	return m == ModeAuto || m == ModeMovies
}

// AllowsMusic reports whether audio files are included.
func (m Mode) AllowsMusic() bool {
	return m == ModeAuto || m == ModeMusic
}

func (m Mode) String() string {
	return string(m)
}
