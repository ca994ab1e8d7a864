package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	v1 "github.com/vmunix/renamarr/internal/api/v1"
	"github.com/vmunix/renamarr/internal/config"
	"github.com/vmunix/renamarr/internal/lookup"
	"github.com/vmunix/renamarr/internal/renamer"
	"github.com/vmunix/renamarr/internal/scanner"
	"github.com/vmunix/renamarr/internal/server"
	"github.com/vmunix/renamarr/internal/tmdb"
	"github.com/vmunix/renamarr/pkg/musicbrainz"
	"github.com/vmunix/renamarr/pkg/release"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig loads the config at path, or the discovered one when path is
// empty. With nothing to discover the defaults are used.
func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func runServer(configPath string) error {
	cfg, path, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	if path == "" {
		logger.Warn("no config file found, using defaults")
	}
	for _, w := range cfg.Warnings() {
		logger.Warn("config", "warning", w)
	}

	// === Journal (optional) ===
	var history *renamer.HistoryStore
	if cfg.History.Path != "" {
		var db *sql.DB
		history, db, err = renamer.OpenHistory(cfg.History.Path)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
	}

	// === Services ===
	execOpts := []renamer.Option{
		renamer.WithFormatter(renamer.NewFormatter(templates(cfg.Naming))),
		renamer.WithLogger(logger.With("component", "renamer")),
	}
	if history != nil {
		execOpts = append(execOpts, renamer.WithHistory(history))
	}
	executor := renamer.NewExecutor(execOpts...)

	cleaner := release.NewCleaner(cfg.Vocabulary.Build())
	scan := scanner.New(cleaner, logger.With("component", "scanner"))

	newVideo := func(apiKey string) lookup.VideoProvider {
		return tmdb.NewClient(apiKey, tmdb.WithLanguage(cfg.TMDB.Language))
	}
	var video lookup.VideoProvider
	if cfg.TMDB.APIKey != "" {
		video = newVideo(cfg.TMDB.APIKey)
	}
	music := musicbrainz.NewClient(
		musicbrainz.WithUserAgent(cfg.MusicBrainz.UserAgent),
		musicbrainz.WithRateLimit(cfg.MusicBrainz.RequestsPerSecond),
		musicbrainz.WithLogger(logger.With("component", "musicbrainz")),
	)
	lookups := lookup.NewService(video, music, logger.With("component", "lookup"))

	// === HTTP Setup ===
	apiV1, err := v1.New(v1.ServerDeps{
		Executor: executor,
		Scanner:  scan,
		Lookup:   lookups,
		History:  history,
		NewVideo: newVideo,
		Logger:   logger,
	}, v1.Config{
		MediaRoot:  cfg.Media.Root,
		TMDBAPIKey: cfg.TMDB.APIKey,
		Version:    version,
	})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	apiV1.RegisterRoutes(mux)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	logger.Info("server starting",
		"addr", addr,
		"config", path,
		"media_root", cfg.Media.Root,
		"tmdb", video != nil,
		"history", cfg.History.Path,
		"log_level", cfg.Server.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(
		v1.WithRequestID(v1.LogRequests(mux, logger)),
		server.Config{Addr: addr},
		logger.With("component", "server"),
	)
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func templates(n config.NamingConfig) renamer.Templates {
	return renamer.Templates{
		Movie:         n.Movie,
		Episode:       n.Episode,
		TitledEpisode: n.TitledEpisode,
		Track:         n.Track,
	}
}
