// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/vmunix/renamarr/internal/lookup"
	"github.com/vmunix/renamarr/internal/media"
	"github.com/vmunix/renamarr/internal/renamer"
	"github.com/vmunix/renamarr/internal/scanner"
)

// Config holds API server configuration.
type Config struct {
	MediaRoot  string
	TMDBAPIKey string
	Version    string
}

// Server is the v1 API server.
type Server struct {
	deps    ServerDeps
	log     *slog.Logger
	version string

	// Runtime settings, changeable through POST /config.
	mu         sync.RWMutex
	mediaRoot  string
	tmdbAPIKey string
}

// New creates a new v1 API server.
func New(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		deps:       deps,
		log:        log.With("component", "api"),
		version:    cfg.Version,
		mediaRoot:  cfg.MediaRoot,
		tmdbAPIKey: cfg.TMDBAPIKey,
	}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Settings
	mux.HandleFunc("GET /api/v1/config", s.getConfig)
	mux.HandleFunc("POST /api/v1/config", s.setConfig)

	// Files
	mux.HandleFunc("POST /api/v1/scan", s.scan)
	mux.HandleFunc("GET /api/v1/browse", s.browse)

	// Metadata lookup
	mux.HandleFunc("POST /api/v1/search/movie", s.searchMovie)
	mux.HandleFunc("POST /api/v1/search/tv", s.searchTV)
	mux.HandleFunc("POST /api/v1/search/tv/episode", s.searchEpisode)
	mux.HandleFunc("POST /api/v1/search/music", s.searchMusic)

	// Renaming
	mux.HandleFunc("POST /api/v1/preview", s.preview)
	mux.HandleFunc("POST /api/v1/rename", s.rename)
	mux.HandleFunc("POST /api/v1/batch/rename", s.batchRename)

	// System
	mux.HandleFunc("GET /api/v1/history", s.requireHistory(s.listHistory))
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes the request body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func (s *Server) settings() (mediaRoot, apiKey string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mediaRoot, s.tmdbAPIKey
}

func (s *Server) getConfig(w http.ResponseWriter, r *http.Request) {
	root, key := s.settings()
	writeJSON(w, http.StatusOK, configResponse{TMDBAPIKey: key != "", MediaDir: root})
}

func (s *Server) setConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	if req.MediaDir != nil && !isDir(*req.MediaDir) {
		writeError(w, http.StatusBadRequest, "DIR_NOT_FOUND", fmt.Sprintf("Directory not found: %s", *req.MediaDir))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.MediaDir != nil {
		s.mediaRoot = *req.MediaDir
		s.log.Info("media directory changed", "dir", s.mediaRoot)
	}
	if req.TMDBAPIKey != nil {
		s.tmdbAPIKey = *req.TMDBAPIKey
		if s.tmdbAPIKey == "" || s.deps.NewVideo == nil {
			s.deps.Lookup.SetVideoProvider(nil)
		} else {
			s.deps.Lookup.SetVideoProvider(s.deps.NewVideo(s.tmdbAPIKey))
		}
		s.log.Info("tmdb api key changed", "configured", s.tmdbAPIKey != "")
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	dir := req.Directory
	if dir == "" {
		dir, _ = s.settings()
	}
	if !isDir(dir) {
		writeError(w, http.StatusBadRequest, "DIR_NOT_FOUND", fmt.Sprintf("Directory not found: %s", dir))
		return
	}

	mode, err := media.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_MODE", err.Error())
		return
	}

	files := s.deps.Scanner.Scan(dir, mode)
	writeJSON(w, http.StatusOK, scanResponse{
		Directory: dir,
		Mode:      mode,
		Files:     files,
		Count:     len(files),
	})
}

func (s *Server) browse(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}

	listing, err := scanner.Browse(path)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, listing)
	case errors.Is(err, scanner.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Path not found")
	case errors.Is(err, scanner.ErrPermission):
		writeError(w, http.StatusForbidden, "PERMISSION_DENIED", "Permission denied")
	default:
		writeError(w, http.StatusInternalServerError, "FS_ERROR", err.Error())
	}
}

func (s *Server) searchMovie(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	res, err := s.deps.Lookup.SearchMovie(r.Context(), req.Query, string(req.Year))
	if err != nil {
		s.writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) searchTV(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	res, err := s.deps.Lookup.SearchTV(r.Context(), req.Query)
	if err != nil {
		s.writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) searchEpisode(w http.ResponseWriter, r *http.Request) {
	var req episodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	title, err := s.deps.Lookup.EpisodeTitle(r.Context(), req.ShowID, req.Season, req.Episode)
	if err != nil {
		s.writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, episodeResponse{
		ShowID:  req.ShowID,
		Season:  req.Season,
		Episode: req.Episode,
		Title:   title,
	})
}

func (s *Server) searchMusic(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	res, err := s.deps.Lookup.SearchMusic(r.Context(), req.Query)
	if err != nil {
		s.writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lookup.ErrNotConfigured):
		writeError(w, http.StatusBadRequest, "NOT_CONFIGURED", "TMDB API key not configured")
	case errors.Is(err, lookup.ErrEmptyQuery):
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", "Query is required")
	case errors.Is(err, lookup.ErrInvalidEpisode):
		writeError(w, http.StatusBadRequest, "INVALID_EPISODE", err.Error())
	default:
		s.log.Error("lookup failed", "error", err)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
	}
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	var req renamer.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	p, err := s.deps.Executor.Preview(req)
	if err != nil {
		writeRenameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) rename(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	// Bad requests are rejected before touching the filesystem.
	if _, err := s.deps.Executor.Plan(req.Request); err != nil {
		writeRenameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.deps.Executor.Apply(req.Request, req.DryRun))
}

func (s *Server) batchRename(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.deps.Executor.Batch(req.Files, req.DryRun))
}

func writeRenameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, renamer.ErrSourceNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "File not found")
	case errors.Is(err, renamer.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "FS_ERROR", err.Error())
	}
}

func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.deps.History.List(renamer.HistoryFilter{
		Limit: queryInt(r, "limit", 50),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	if entries == nil {
		entries = []*renamer.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, historyResponse{Items: entries, Total: len(entries)})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	root, _ := s.settings()
	writeJSON(w, http.StatusOK, statusResponse{
		Status:         "ok",
		Version:        s.version,
		MediaDir:       root,
		TMDBConfigured: s.deps.Lookup.VideoConfigured(),
		HistoryEnabled: s.deps.History != nil,
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
