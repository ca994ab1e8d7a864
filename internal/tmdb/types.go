// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

// Movie is a movie search hit.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"` // "2024-03-01"
	VoteAverage float64 `json:"vote_average"`
}

// Year returns the four-digit release year, or "" when unknown.
func (m Movie) Year() string {
	return yearOf(m.ReleaseDate)
}

// Show is a TV series search hit.
type Show struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// Year returns the four-digit year of the first air date, or "" when unknown.
func (s Show) Year() string {
	return yearOf(s.FirstAirDate)
}

// SearchResult is one page of search results.
type SearchResult[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalResults int `json:"total_results"`
	TotalPages   int `json:"total_pages"`
}

// Episode holds the fields of an episode lookup that renaming needs.
type Episode struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	SeasonNumber  int    `json:"season_number"`
	EpisodeNumber int    `json:"episode_number"`
	AirDate       string `json:"air_date"`
}

func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	if _, err := strconv.Atoi(date[:4]); err != nil {
		return ""
	}
	return date[:4]
}
