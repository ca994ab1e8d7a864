package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/renamarr/internal/config"
	"github.com/vmunix/renamarr/internal/lookup"
	"github.com/vmunix/renamarr/internal/renamer"
	"github.com/vmunix/renamarr/internal/scanner"
	"github.com/vmunix/renamarr/internal/tmdb"
	"github.com/vmunix/renamarr/pkg/musicbrainz"
	"github.com/vmunix/renamarr/pkg/release"
)

var version = "dev"

// cli holds the persistent flags shared by every command.
type cli struct {
	configPath string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "renamarr",
		Short: "Rename media files to canonical names",
		Long: `renamarr - rename movies, TV episodes and music to canonical names

Scan a directory to see what each file looks like, look the titles up on
TMDB or MusicBrainz, then rename files in place. Existing files are never
overwritten.

Run 'renamarrd' to start the web server.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to config file (default: discovered)")
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Output as JSON")

	root.Version = version
	root.SetVersionTemplate("renamarr {{.Version}}\n")

	root.AddCommand(
		c.scanCmd(),
		c.parseCmd(),
		c.formatCmd(),
		c.renameCmd(),
		c.batchCmd(),
		c.searchCmd(),
		c.historyCmd(),
		c.configCmd(),
		versionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "renamarr %s\n", version)
		},
	}
}

// loadConfig loads the --config file, or the discovered one. Local commands
// fall back to the defaults when there is nothing to discover.
func (c *cli) loadConfig() (*config.Config, error) {
	path := c.configPath
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), nil
		}
		if err != nil {
			return nil, err
		}
		path = found
	}
	cfg, err := config.LoadWithoutValidation(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// logger writes component logs to stderr so they never mix with output.
func logger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if strings.EqualFold(cfg.Server.LogLevel, "debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newScanner(cfg *config.Config) *scanner.Scanner {
	cleaner := release.NewCleaner(cfg.Vocabulary.Build())
	return scanner.New(cleaner, logger(cfg).With("component", "scanner"))
}

// newExecutor builds the rename executor. When a journal is configured the
// returned close function must be called.
func newExecutor(cfg *config.Config) (*renamer.Executor, *renamer.HistoryStore, func(), error) {
	opts := []renamer.Option{
		renamer.WithFormatter(newFormatter(cfg)),
		renamer.WithLogger(logger(cfg).With("component", "renamer")),
	}

	closeFn := func() {}
	var history *renamer.HistoryStore
	if cfg.History.Path != "" {
		var db *sql.DB
		var err error
		history, db, err = renamer.OpenHistory(cfg.History.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, renamer.WithHistory(history))
		closeFn = func() { _ = db.Close() }
	}

	return renamer.NewExecutor(opts...), history, closeFn, nil
}

func newFormatter(cfg *config.Config) *renamer.Formatter {
	return renamer.NewFormatter(renamer.Templates{
		Movie:         cfg.Naming.Movie,
		Episode:       cfg.Naming.Episode,
		TitledEpisode: cfg.Naming.TitledEpisode,
		Track:         cfg.Naming.Track,
	})
}

func newLookup(cfg *config.Config) *lookup.Service {
	log := logger(cfg)

	var video lookup.VideoProvider
	if cfg.TMDB.APIKey != "" {
		video = tmdb.NewClient(cfg.TMDB.APIKey, tmdb.WithLanguage(cfg.TMDB.Language))
	}
	music := musicbrainz.NewClient(
		musicbrainz.WithUserAgent(cfg.MusicBrainz.UserAgent),
		musicbrainz.WithRateLimit(cfg.MusicBrainz.RequestsPerSecond),
		musicbrainz.WithLogger(log.With("component", "musicbrainz")),
	)
	return lookup.NewService(video, music, log.With("component", "lookup"))
}
