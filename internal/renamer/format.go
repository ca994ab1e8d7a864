// internal/renamer/format.go
package renamer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Default naming templates.
const (
	DefaultMovieTemplate         = "{title} ({year}).{ext}"
	DefaultEpisodeTemplate       = "{show} - S{season:02}E{episode:02}.{ext}"
	DefaultTitledEpisodeTemplate = "{show} - S{season:02}E{episode:02} - {episode_title}.{ext}"
	DefaultTrackTemplate         = "{artist} - {title}.{ext}"
)

// Movie is confirmed movie metadata.
type Movie struct {
	Title string
	Year  string
}

// Episode is confirmed episode metadata. EpisodeTitle is optional.
type Episode struct {
	Show         string
	Season       int
	Episode      int
	EpisodeTitle string
}

// Track is confirmed music metadata.
type Track struct {
	Artist string
	Title  string
}

// Templates holds the naming templates used by a Formatter.
type Templates struct {
	Movie         string `toml:"movie"`
	Episode       string `toml:"episode"`
	TitledEpisode string `toml:"episode_titled"`
	Track         string `toml:"track"`
}

// DefaultTemplates returns the built-in naming templates.
func DefaultTemplates() Templates {
	return Templates{
		Movie:         DefaultMovieTemplate,
		Episode:       DefaultEpisodeTemplate,
		TitledEpisode: DefaultTitledEpisodeTemplate,
		Track:         DefaultTrackTemplate,
	}
}

// Formatter builds canonical filenames from confirmed metadata.
type Formatter struct {
	templates Templates
}

// NewFormatter creates a Formatter. Empty templates use the defaults.
func NewFormatter(t Templates) *Formatter {
	d := DefaultTemplates()
	if t.Movie == "" {
		t.Movie = d.Movie
	}
	if t.Episode == "" {
		t.Episode = d.Episode
	}
	if t.TitledEpisode == "" {
		t.TitledEpisode = d.TitledEpisode
	}
	if t.Track == "" {
		t.Track = d.Track
	}
	return &Formatter{templates: t}
}

// MovieName returns "Title (Year).ext".
func (f *Formatter) MovieName(m Movie, ext string) string {
	return applyTemplate(f.templates.Movie, map[string]any{
		"title": SanitizeFilename(m.Title),
		"year":  SanitizeFilename(m.Year),
		"ext":   ext,
	})
}

// EpisodeName returns "Show - S01E02.ext", or "Show - S01E02 - Title.ext"
// when the episode title is not blank.
func (f *Formatter) EpisodeName(e Episode, ext string) string {
	vars := map[string]any{
		"show":    SanitizeFilename(e.Show),
		"season":  e.Season,
		"episode": e.Episode,
		"ext":     ext,
	}

	template := f.templates.Episode
	if title := strings.TrimSpace(e.EpisodeTitle); title != "" {
		vars["episode_title"] = SanitizeFilename(title)
		template = f.templates.TitledEpisode
	}
	return applyTemplate(template, vars)
}

// TrackName returns "Artist - Title.ext".
func (f *Formatter) TrackName(t Track, ext string) string {
	return applyTemplate(f.templates.Track, map[string]any{
		"artist": SanitizeFilename(t.Artist),
		"title":  SanitizeFilename(t.Title),
		"ext":    ext,
	})
}

var defaultFormatter = NewFormatter(Templates{})

// FormatMovieName formats a movie filename with the default template.
func FormatMovieName(title, year, ext string) string {
	return defaultFormatter.MovieName(Movie{Title: title, Year: year}, ext)
}

// FormatTVName formats an episode filename with the default templates.
// Pass "" for episodeTitle when there is none.
func FormatTVName(show string, season, episode int, episodeTitle, ext string) string {
	return defaultFormatter.EpisodeName(Episode{
		Show:         show,
		Season:       season,
		Episode:      episode,
		EpisodeTitle: episodeTitle,
	}, ext)
}

// FormatMusicName formats a track filename with the default template.
func FormatMusicName(artist, title, ext string) string {
	return defaultFormatter.TrackName(Track{Artist: artist, Title: title}, ext)
}

// formatPattern matches {name} or {name:02} style placeholders.
var formatPattern = regexp.MustCompile(`\{(\w+)(?::(\d+))?\}`)

// applyTemplate substitutes variables into a template string.
// {name:02} zero-pads integers to a minimum width; wider values are kept whole.
// Unknown placeholders are left as written.
func applyTemplate(template string, vars map[string]any) string {
	return formatPattern.ReplaceAllStringFunc(template, func(match string) string {
		parts := formatPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		val, ok := vars[parts[1]]
		if !ok {
			return match
		}

		if len(parts) >= 3 && parts[2] != "" {
			if width, err := strconv.Atoi(parts[2]); err == nil {
				switch v := val.(type) {
				case int:
					return fmt.Sprintf("%0*d", width, v)
				case int64:
					return fmt.Sprintf("%0*d", width, v)
				}
			}
		}

		return fmt.Sprintf("%v", val)
	})
}
