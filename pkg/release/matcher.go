package release

import (
	"regexp"
	"slices"

	"github.com/hbollon/go-edlib"
)

// numberRegex extracts sequence numbers from titles (e.g., "2", "3")
var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// MatchConfidence represents the confidence level of a title match.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // Score < 0.70
	ConfidenceLow                           // Score >= 0.70
	ConfidenceMedium                        // Score >= 0.85
	ConfidenceHigh                          // Score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// ConfidenceFor maps a similarity score onto a confidence level.
func ConfidenceFor(score float64) MatchConfidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Similarity scores how well a candidate title matches a cleaned query,
// from 0 to 1. Both sides go through CleanTitle, then Jaro-Winkler is
// adjusted for agreement on sequence numbers ("Alien 3" vs "Alien").
func Similarity(query, candidate string) float64 {
	q := CleanTitle(query)
	c := CleanTitle(candidate)
	if q == "" || c == "" {
		return 0
	}

	score := float64(edlib.JaroWinklerSimilarity(q, c))
	return adjustScoreForNumbers(score, extractNumbers(q), extractNumbers(c))
}

// extractNumbers returns all numeric sequences from a normalized title.
func extractNumbers(title string) []string {
	return numberRegex.FindAllString(title, -1)
}

// adjustScoreForNumbers rewards candidates sharing a sequence number with the
// query and penalises ones that lack or contradict it.
func adjustScoreForNumbers(score float64, queryNums, candidateNums []string) float64 {
	if len(queryNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}

	for _, n := range queryNums {
		if slices.Contains(candidateNums, n) {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
