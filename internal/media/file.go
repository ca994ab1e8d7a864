package media

import (
	"github.com/vmunix/renamarr/pkg/release"
)

// File is one scanned directory entry and what it was guessed to be.
type File struct {
	Filename  string        `json:"filename"`
	Path      string        `json:"filepath"`
	Extension string        `json:"extension"`
	MediaType MediaType     `json:"media_type"`
	Kind      release.Kind  `json:"type"`
	Detection release.Guess `json:"detected_info"`
}

// TV returns the detection as a TV guess.
func (f File) TV() (release.TVGuess, bool) {
	g, ok := f.Detection.(release.TVGuess)
	return g, ok
}

// Movie returns the detection as a movie guess.
func (f File) Movie() (release.MovieGuess, bool) {
	g, ok := f.Detection.(release.MovieGuess)
	return g, ok
}

// Music returns the detection as a music guess.
func (f File) Music() (release.MusicGuess, bool) {
	g, ok := f.Detection.(release.MusicGuess)
	return g, ok
}
