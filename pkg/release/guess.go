// Package release infers what a media file is from its filename.
//
// It recognises TV episode markers, strips release noise (resolution, codec,
// release group, track numbers) into search-friendly queries, and scores
// candidate titles returned by metadata providers.
package release

import "strings"

// Kind identifies which variant a Guess holds.
type Kind string

const (
	KindTV    Kind = "tv"
	KindMovie Kind = "movie"
	KindMusic Kind = "music"
)

// Guess is the structured result of inspecting a filename.
// It is implemented by TVGuess, MovieGuess and MusicGuess only.
type Guess interface {
	Kind() Kind
	guess()
}

// TVGuess is a show, season and episode recovered from a filename.
type TVGuess struct {
	ShowName string `json:"show_name"`
	Season   int    `json:"season"`
	Episode  int    `json:"episode"`
}

// MovieGuess is a search name and optional year recovered from a filename.
type MovieGuess struct {
	Name string `json:"name"`
	Year string `json:"year,omitempty"` // "" when no year was found
}

// MusicGuess is a free-text search query recovered from a track filename.
type MusicGuess struct {
	Query string `json:"query"`
}

func (TVGuess) Kind() Kind    { return KindTV }
func (MovieGuess) Kind() Kind { return KindMovie }
func (MusicGuess) Kind() Kind { return KindMusic }

func (TVGuess) guess()    {}
func (MovieGuess) guess() {}
func (MusicGuess) guess() {}

// HasYear reports whether a year was found.
func (g MovieGuess) HasYear() bool {
	return g.Year != ""
}

// stripExtension removes the final ".ext" from a filename.
// Names whose only dot is the leading one (".hidden") are left alone.
func stripExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		return filename[:idx]
	}
	return filename
}
