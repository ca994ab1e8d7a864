package release

import (
	"regexp"
	"slices"
	"strings"
)

// Vocabulary holds the noise tokens stripped while cleaning names.
// Tokens match case-insensitively on word boundaries. A space inside a token
// matches any run of whitespace (including none), so "directors cut" also
// removes "DirectorsCut". A '.', '_' or '-' inside a token matches any run of
// separators, so "web-dl" removes "WEB DL" and "WEB.DL" alike.
type Vocabulary struct {
	Quality       []string `toml:"quality" json:"quality"`
	Source        []string `toml:"source" json:"source"`
	Codec         []string `toml:"codec" json:"codec"`
	Audio         []string `toml:"audio" json:"audio"`
	Revision      []string `toml:"revision" json:"revision"`
	Edition       []string `toml:"edition" json:"edition"`
	ReleaseGroups []string `toml:"release_groups" json:"release_groups"`
	ShowGroups    []string `toml:"show_groups" json:"show_groups"`
	MusicTags     []string `toml:"music_tags" json:"music_tags"`
}

// DefaultVocabulary returns the built-in token lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Quality:  []string{"720p", "1080p", "2160p", "4k", "uhd", "hdr"},
		Source:   []string{"bluray", "brrip", "bdrip", "dvdrip", "webrip", "web-dl", "webdl", "hdtv"},
		Codec:    []string{"xvid", "divx", "x264", "x265", "h264", "h265", "hevc"},
		Audio:    []string{"aac", "ac3", "dts", "dd5.1", "ddp5.1", "5.1", "7.1"},
		Revision: []string{"proper", "repack"},
		Edition:  []string{"extended", "unrated", "directors cut", "theatrical", "remastered"},
		ReleaseGroups: []string{
			"yify", "yts", "rarbg", "eztv", "ettv", "sparks", "axxo", "fgt",
			"ctrlhd", "ntb", "mtb", "publichd",
		},
		ShowGroups: []string{
			"yify", "yts", "rarbg", "eztv", "ettv", "sparks", "axxo", "fgt",
			"ctrlhd", "ntb", "mtb", "publichd", "lol", "dimension", "fleet",
			"killers", "fov", "bamboozle",
		},
		MusicTags: []string{
			"320kbps", "256kbps", "192kbps", "128kbps", "flac", "mp3", "wav",
			"aac", "ogg", "lossless", "cd", "vinyl", "remaster", "remastered",
		},
	}
}

// Extend returns a copy of v with the tokens of extra appended.
// Duplicates (compared case-insensitively) are dropped.
func (v Vocabulary) Extend(extra Vocabulary) Vocabulary {
	return Vocabulary{
		Quality:       mergeTokens(v.Quality, extra.Quality),
		Source:        mergeTokens(v.Source, extra.Source),
		Codec:         mergeTokens(v.Codec, extra.Codec),
		Audio:         mergeTokens(v.Audio, extra.Audio),
		Revision:      mergeTokens(v.Revision, extra.Revision),
		Edition:       mergeTokens(v.Edition, extra.Edition),
		ReleaseGroups: mergeTokens(v.ReleaseGroups, extra.ReleaseGroups),
		ShowGroups:    mergeTokens(v.ShowGroups, extra.ShowGroups),
		MusicTags:     mergeTokens(v.MusicTags, extra.MusicTags),
	}
}

func mergeTokens(base, extra []string) []string {
	out := slices.Clone(base)
	seen := make(map[string]bool, len(base)+len(extra))
	for _, t := range base {
		seen[strings.ToLower(t)] = true
	}
	for _, t := range extra {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// tokenAlternation builds "a|b|c" from tokens, escaping regex syntax.
func tokenAlternation(tokens []string) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		fields := strings.Fields(t)
		if len(fields) == 0 {
			continue
		}
		for i, f := range fields {
			fields[i] = quoteToken(f)
		}
		parts = append(parts, strings.Join(fields, `\s*`))
	}
	return strings.Join(parts, "|")
}

// tokenSeparator splits a token where scene names use separators.
var tokenSeparator = regexp.MustCompile(`[._-]+`)

// quoteToken escapes one word of a token. Separators inside it match one or
// more separator characters, since cleaning may already have turned them
// into spaces.
func quoteToken(word string) string {
	var parts []string
	for _, p := range tokenSeparator.Split(word, -1) {
		if p != "" {
			parts = append(parts, regexp.QuoteMeta(p))
		}
	}
	return strings.Join(parts, `[\s._-]+`)
}

// wordPattern compiles tokens into a case-insensitive, word-bounded pattern.
// Returns nil for an empty list.
func wordPattern(tokens []string) *regexp.Regexp {
	alt := tokenAlternation(tokens)
	if alt == "" {
		return nil
	}
	return regexp.MustCompile(`(?i)\b(` + alt + `)\b`)
}
