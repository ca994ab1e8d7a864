package release

import (
	"regexp"
	"slices"
	"strings"
)

var (
	yearPattern   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	parenYear     = regexp.MustCompile(`\([0-9]{4}\)`)
	bracketYear   = regexp.MustCompile(`\[[0-9]{4}\]`)
	trackNumber   = regexp.MustCompile(`^\d{1,3}[.\-\s]+`)
	bracketSpan   = regexp.MustCompile(`\[[^\]]*\]`)
	parenSpan     = regexp.MustCompile(`\([^)]*\)`)
	emptyBrackets = regexp.MustCompile(`\(\s*\)|\[\s*\]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Cleaner turns raw filenames into search queries.
// A Cleaner is immutable after construction and safe for concurrent use.
type Cleaner struct {
	vocab Vocabulary

	movieNoise []*regexp.Regexp
	sceneGroup *regexp.Regexp
	showNoise  []*regexp.Regexp
	showGroup  *regexp.Regexp
	musicNoise *regexp.Regexp
}

// NewCleaner compiles the vocabulary into a Cleaner.
func NewCleaner(v Vocabulary) *Cleaner {
	c := &Cleaner{vocab: v}

	// Order matches the substitution order of each pipeline.
	c.movieNoise = compact(
		wordPattern(v.Quality),
		wordPattern(v.Source),
		wordPattern(v.Codec),
		wordPattern(v.Audio),
		wordPattern(slices.Concat(v.Revision, v.Edition)),
		wordPattern(v.ReleaseGroups),
	)
	// "x264-GROUP": a hyphenated suffix glued to a noise token is a release
	// group; "Spider-Man" is not.
	if alt := tokenAlternation(slices.Concat(v.Quality, v.Source, v.Codec, v.Audio, v.Revision, v.Edition)); alt != "" {
		c.sceneGroup = regexp.MustCompile(`(?i)(\b(?:` + alt + `))-[a-z0-9]+$`)
	}
	c.showNoise = compact(
		wordPattern(v.Quality),
		wordPattern(v.Source),
		wordPattern(v.Codec),
		wordPattern(slices.Concat(v.Audio, v.Revision)),
	)
	if alt := tokenAlternation(v.ShowGroups); alt != "" {
		c.showGroup = regexp.MustCompile(`(?i)\s+(` + alt + `)\b.*$`)
	}
	c.musicNoise = wordPattern(v.MusicTags)

	return c
}

func compact(patterns ...*regexp.Regexp) []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, p := range patterns {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Vocabulary returns the token lists the Cleaner was built from.
func (c *Cleaner) Vocabulary() Vocabulary {
	return c.vocab
}

// CleanMovieName extracts a search name and year from a movie filename.
func (c *Cleaner) CleanMovieName(filename string) MovieGuess {
	name := stripExtension(filename)
	if c.sceneGroup != nil {
		name = c.sceneGroup.ReplaceAllString(name, "${1}")
	}
	name = separatorRun.ReplaceAllString(name, " ")

	year := yearPattern.FindString(name)

	for _, p := range c.movieNoise {
		name = p.ReplaceAllString(name, "")
	}

	if year != "" {
		name = regexp.MustCompile(`\b` + year + `\b`).ReplaceAllString(name, "")
		name = emptyBrackets.ReplaceAllString(name, "")
	}

	return MovieGuess{Name: collapse(name), Year: year}
}

// CleanShowName strips noise from a show name found by DetectTV.
func (c *Cleaner) CleanShowName(name string) string {
	name = separatorRun.ReplaceAllString(name, " ")

	name = parenYear.ReplaceAllString(name, "")
	name = bracketYear.ReplaceAllString(name, "")

	for _, p := range c.showNoise {
		name = p.ReplaceAllString(name, "")
	}

	// A trailing release group takes everything after it with it.
	if c.showGroup != nil {
		name = c.showGroup.ReplaceAllString(name, "")
	}

	return collapse(name)
}

// CleanMusicName builds a search query from a track filename.
func (c *Cleaner) CleanMusicName(filename string) MusicGuess {
	name := stripExtension(filename)
	name = separatorRun.ReplaceAllString(name, " ")

	name = trackNumber.ReplaceAllString(name, "")

	if c.musicNoise != nil {
		name = c.musicNoise.ReplaceAllString(name, "")
	}

	name = bracketSpan.ReplaceAllString(name, "")
	name = parenSpan.ReplaceAllString(name, "")

	return MusicGuess{Query: collapse(name)}
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

var defaultCleaner = NewCleaner(DefaultVocabulary())

// DefaultCleaner returns the Cleaner built from DefaultVocabulary.
func DefaultCleaner() *Cleaner {
	return defaultCleaner
}

// CleanMovieName cleans a movie filename with the default vocabulary.
func CleanMovieName(filename string) MovieGuess {
	return defaultCleaner.CleanMovieName(filename)
}

// CleanShowName cleans a show name with the default vocabulary.
func CleanShowName(name string) string {
	return defaultCleaner.CleanShowName(name)
}

// CleanMusicName cleans a track filename with the default vocabulary.
func CleanMusicName(filename string) MusicGuess {
	return defaultCleaner.CleanMusicName(filename)
}
