// internal/api/v1/types.go
package v1

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/vmunix/renamarr/internal/media"
	"github.com/vmunix/renamarr/internal/renamer"
)

// configResponse is the response for GET /config. The API key is never echoed.
type configResponse struct {
	TMDBAPIKey bool   `json:"tmdb_api_key"`
	MediaDir   string `json:"media_dir"`
}

// configRequest is the body for POST /config. Absent fields are left alone.
type configRequest struct {
	TMDBAPIKey *string `json:"tmdb_api_key"`
	MediaDir   *string `json:"media_dir"`
}

type scanRequest struct {
	Directory string `json:"directory"`
	Mode      string `json:"mode"`
}

type scanResponse struct {
	Directory string       `json:"directory"`
	Mode      media.Mode   `json:"mode"`
	Files     []media.File `json:"files"`
	Count     int          `json:"count"`
}

type searchRequest struct {
	Query string   `json:"query"`
	Year  yearText `json:"year"`
}

type episodeRequest struct {
	ShowID  int64 `json:"show_id"`
	Season  int   `json:"season"`
	Episode int   `json:"episode"`
}

type episodeResponse struct {
	ShowID  int64  `json:"show_id"`
	Season  int    `json:"season"`
	Episode int    `json:"episode"`
	Title   string `json:"title"`
}

type renameRequest struct {
	renamer.Request
	DryRun bool `json:"dry_run"`
}

type batchRequest struct {
	Files  []renamer.Request `json:"files"`
	DryRun bool              `json:"dry_run"`
}

type historyResponse struct {
	Items []*renamer.HistoryEntry `json:"items"`
	Total int                     `json:"total"`
}

type statusResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	MediaDir       string `json:"media_dir"`
	TMDBConfigured bool   `json:"tmdb_configured"`
	HistoryEnabled bool   `json:"history_enabled"`
}

// yearText accepts a year as a JSON string or number.
type yearText string

func (y *yearText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*y = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = yearText(s)
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*y = yearText(strconv.Itoa(n))
	return nil
}
