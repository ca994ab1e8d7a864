// Package lookup searches metadata providers and ranks the hits against the
// name guessed from a filename.
package lookup

//go:generate mockgen -destination=mocks/providers.go -package=mocks . VideoProvider,MusicProvider

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/vmunix/renamarr/internal/tmdb"
	"github.com/vmunix/renamarr/pkg/musicbrainz"
	"github.com/vmunix/renamarr/pkg/release"
)

const (
	// MaxCandidates is the number of candidates returned per query.
	MaxCandidates = 5

	maxOverview = 150
)

var (
	// ErrNotConfigured is returned when the needed provider is not set up,
	// typically because no TMDB API key was given.
	ErrNotConfigured = errors.New("metadata provider not configured")

	// ErrEmptyQuery is returned for a blank search query.
	ErrEmptyQuery = errors.New("query is required")

	// ErrInvalidEpisode is returned for a non-positive show ID, season or episode.
	ErrInvalidEpisode = errors.New("show_id, season, and episode are required")
)

// VideoProvider looks up movies and TV series.
type VideoProvider interface {
	SearchMovie(ctx context.Context, query, year string) (*tmdb.SearchResult[tmdb.Movie], error)
	SearchTV(ctx context.Context, query string) (*tmdb.SearchResult[tmdb.Show], error)
	EpisodeTitle(ctx context.Context, showID int64, season, episode int) (string, error)
}

// MusicProvider looks up music recordings.
type MusicProvider interface {
	SearchRecording(ctx context.Context, query string, limit int) (*musicbrainz.RecordingSearch, error)
}

// Candidate is one ranked search hit.
type Candidate struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist,omitempty"`
	Album    string  `json:"album,omitempty"`
	Year     string  `json:"year"`
	Overview string  `json:"overview,omitempty"`
	Score    float64 `json:"score"` // provider rating
	Match    float64 `json:"match"` // similarity to the query, 0-1

	Confidence string `json:"confidence"` // high, medium, low or none
}

// Results is a ranked page of candidates.
type Results struct {
	Query   string      `json:"query"`
	Results []Candidate `json:"results"`
	Total   int         `json:"total"`
}

// Service ranks provider results. The video provider may be swapped at
// runtime when the API key changes.
type Service struct {
	mu    sync.RWMutex
	video VideoProvider
	music MusicProvider
	log   *slog.Logger
}

// NewService creates a lookup service. Either provider may be nil.
func NewService(video VideoProvider, music MusicProvider, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{video: video, music: music, log: log}
}

// SetVideoProvider replaces the video provider. Pass nil to disable it.
func (s *Service) SetVideoProvider(v VideoProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.video = v
}

// VideoConfigured reports whether movie and TV lookups are available.
func (s *Service) VideoConfigured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.video != nil
}

func (s *Service) videoProvider() (VideoProvider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.video == nil {
		return nil, fmt.Errorf("%w: TMDB API key not set", ErrNotConfigured)
	}
	return s.video, nil
}

// SearchMovie searches movies. Year may be "".
func (s *Service) SearchMovie(ctx context.Context, query, year string) (*Results, error) {
	query = release.NormalizeSearchQuery(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	video, err := s.videoProvider()
	if err != nil {
		return nil, err
	}

	res, err := video.SearchMovie(ctx, query, year)
	if err != nil {
		return nil, err
	}

	hits := res.Results[:min(len(res.Results), MaxCandidates)]
	candidates := make([]Candidate, 0, len(hits))
	for _, m := range hits {
		candidates = append(candidates, Candidate{
			ID:       strconv.FormatInt(m.ID, 10),
			Title:    m.Title,
			Year:     m.Year(),
			Overview: truncate(m.Overview, maxOverview),
			Score:    m.VoteAverage,
			Match:    release.Similarity(query, m.Title),
		})
	}

	s.log.Debug("movie search", "query", query, "year", year, "hits", len(candidates), "total", res.TotalResults)
	return ranked(query, candidates, res.TotalResults), nil
}

// SearchTV searches TV series.
func (s *Service) SearchTV(ctx context.Context, query string) (*Results, error) {
	query = release.NormalizeSearchQuery(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	video, err := s.videoProvider()
	if err != nil {
		return nil, err
	}

	res, err := video.SearchTV(ctx, query)
	if err != nil {
		return nil, err
	}

	hits := res.Results[:min(len(res.Results), MaxCandidates)]
	candidates := make([]Candidate, 0, len(hits))
	for _, show := range hits {
		candidates = append(candidates, Candidate{
			ID:       strconv.FormatInt(show.ID, 10),
			Title:    show.Name,
			Year:     show.Year(),
			Overview: truncate(show.Overview, maxOverview),
			Score:    show.VoteAverage,
			Match:    release.Similarity(query, show.Name),
		})
	}

	s.log.Debug("tv search", "query", query, "hits", len(candidates), "total", res.TotalResults)
	return ranked(query, candidates, res.TotalResults), nil
}

// EpisodeTitle returns the title of one episode, or "" when the provider
// has none.
func (s *Service) EpisodeTitle(ctx context.Context, showID int64, season, episode int) (string, error) {
	if showID <= 0 || season <= 0 || episode <= 0 {
		return "", ErrInvalidEpisode
	}
	video, err := s.videoProvider()
	if err != nil {
		return "", err
	}
	return video.EpisodeTitle(ctx, showID, season, episode)
}

// SearchMusic searches recordings.
func (s *Service) SearchMusic(ctx context.Context, query string) (*Results, error) {
	query = release.NormalizeSearchQuery(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if s.music == nil {
		return nil, fmt.Errorf("%w: music", ErrNotConfigured)
	}

	res, err := s.music.SearchRecording(ctx, query, MaxCandidates)
	if err != nil {
		return nil, err
	}

	hits := res.Recordings[:min(len(res.Recordings), MaxCandidates)]
	candidates := make([]Candidate, 0, len(hits))
	for _, rec := range hits {
		artist := rec.Artist()
		candidates = append(candidates, Candidate{
			ID:     rec.ID,
			Title:  rec.Title,
			Artist: artist,
			Album:  rec.Album(),
			Year:   rec.Year(),
			Score:  float64(rec.Score),
			Match:  release.Similarity(query, artist+" "+rec.Title),
		})
	}

	s.log.Debug("music search", "query", query, "hits", len(candidates), "total", res.Count)
	return ranked(query, candidates, res.Count), nil
}

// ranked orders candidates by match, best first. Equal matches keep the
// provider's order.
func ranked(query string, candidates []Candidate, total int) *Results {
	for i := range candidates {
		candidates[i].Confidence = release.ConfidenceFor(candidates[i].Match).String()
	}
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Match, a.Match)
	})
	return &Results{Query: query, Results: candidates, Total: total}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
