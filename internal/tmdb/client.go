package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org"
	defaultLanguage = "en-US"
)

var (
	// ErrNotFound is returned when the requested resource doesn't exist in TMDB.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when TMDB rejects the API key.
	ErrUnauthorized = errors.New("invalid TMDB API key")
)

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLanguage sets the response language, e.g. "en-US".
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.language = lang
		}
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		language: defaultLanguage,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchMovie searches movies by title. A year of "" searches all years.
func (c *Client) SearchMovie(ctx context.Context, query, year string) (*SearchResult[Movie], error) {
	params := c.searchParams(query)
	if year != "" {
		params.Set("year", year)
	}

	var result SearchResult[Movie]
	if err := c.get(ctx, "/3/search/movie", params, &result); err != nil {
		return nil, fmt.Errorf("search movie %q: %w", query, err)
	}
	return &result, nil
}

// SearchTV searches TV series by name.
func (c *Client) SearchTV(ctx context.Context, query string) (*SearchResult[Show], error) {
	var result SearchResult[Show]
	if err := c.get(ctx, "/3/search/tv", c.searchParams(query), &result); err != nil {
		return nil, fmt.Errorf("search tv %q: %w", query, err)
	}
	return &result, nil
}

// EpisodeTitle returns the name of one episode. Any non-200 answer yields ""
// without an error; only transport and decode failures are errors.
func (c *Client) EpisodeTitle(ctx context.Context, showID int64, season, episode int) (string, error) {
	path := fmt.Sprintf("/3/tv/%d/season/%d/episode/%d", showID, season, episode)

	var ep Episode
	err := c.get(ctx, path, c.baseParams(), &ep)
	switch {
	case err == nil:
		return ep.Name, nil
	case errors.Is(err, errStatus):
		return "", nil
	default:
		return "", fmt.Errorf("episode %d S%02dE%02d: %w", showID, season, episode, err)
	}
}

func (c *Client) baseParams() url.Values {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)
	return params
}

func (c *Client) searchParams(query string) url.Values {
	params := c.baseParams()
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("include_adult", "false")
	return params
}

// errStatus marks any unexpected HTTP status.
var errStatus = errors.New("TMDB API error")

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", errStatus, ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", errStatus, ErrNotFound)
	default:
		return fmt.Errorf("%w: %s", errStatus, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
