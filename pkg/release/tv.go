package release

import (
	"regexp"
	"strconv"
	"strings"
)

// separatorRun matches runs of the separators used in scene names.
var separatorRun = regexp.MustCompile(`[._-]+`)

var seasonWord = regexp.MustCompile(`(?i)season`)

// episodeMatcher pairs a season/episode pattern with the rule that decides
// where the show name ends. Patterns capture season then episode.
type episodeMatcher struct {
	pattern *regexp.Regexp
	showEnd func(name string, loc []int) int
}

// endAtMatch cuts the show name where the episode token starts.
func endAtMatch(_ string, loc []int) int {
	return loc[0]
}

// endAtSeasonWord cuts the show name at the first "season", wherever it is.
func endAtSeasonWord(name string, loc []int) int {
	if idx := seasonWord.FindStringIndex(name); idx != nil {
		return idx[0]
	}
	return loc[0]
}

// episodeMatchers are tried in order; the first match wins. SxxEyy must stay
// ahead of NxM so "Show.S01E02.1x99" reads as season 1 episode 2.
var episodeMatchers = []episodeMatcher{
	{
		pattern: regexp.MustCompile(`[Ss](\d{1,2})[Ee](\d{1,2})`),
		showEnd: endAtMatch,
	},
	{
		pattern: regexp.MustCompile(`(\d{1,2})x(\d{1,2})`),
		showEnd: endAtMatch,
	},
	{
		pattern: regexp.MustCompile(`[Ss]eason[._\s-]?(\d{1,2})[._\s-]?[Ee]pisode[._\s-]?(\d{1,2})`),
		showEnd: endAtSeasonWord,
	},
}

// DetectTV looks for an episode marker in filename.
// The extension is ignored. The returned show name is raw: separators are
// turned into spaces but no noise is stripped (see CleanShowName).
func DetectTV(filename string) (TVGuess, bool) {
	name := stripExtension(filename)

	for _, m := range episodeMatchers {
		loc := m.pattern.FindStringSubmatchIndex(name)
		if loc == nil {
			continue
		}
		season, err := strconv.Atoi(name[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		episode, err := strconv.Atoi(name[loc[4]:loc[5]])
		if err != nil {
			continue
		}

		show := name[:m.showEnd(name, loc)]
		show = strings.TrimSpace(separatorRun.ReplaceAllString(show, " "))

		return TVGuess{ShowName: show, Season: season, Episode: episode}, true
	}

	return TVGuess{}, false
}
