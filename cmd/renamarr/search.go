package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/renamarr/internal/lookup"
)

type episodeOutput struct {
	ShowID  int64  `json:"show_id"`
	Season  int    `json:"season"`
	Episode int    `json:"episode"`
	Title   string `json:"title"`
}

func (c *cli) searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Look up titles on TMDB or MusicBrainz",
		Long: `Search metadata providers and show the best candidates first.

Movie and TV lookups need a TMDB API key (tmdb.api_key or TMDB_API_KEY).

Examples:
  renamarr search movie "The Matrix" --year 1999
  renamarr search tv "Breaking Bad"
  renamarr search episode 1396 1 2
  renamarr search music "Daft Punk One More Time"`,
	}

	movie := &cobra.Command{
		Use:   "movie <query>",
		Short: "Search movies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, _ := cmd.Flags().GetString("year")
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			res, err := newLookup(cfg).SearchMovie(cmd.Context(), strings.Join(args, " "), year)
			if err != nil {
				return lookupError(err)
			}
			return c.printResults(cmd, res)
		},
	}
	movie.Flags().String("year", "", "Release year")

	tv := &cobra.Command{
		Use:   "tv <query>",
		Short: "Search TV series",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			res, err := newLookup(cfg).SearchTV(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return lookupError(err)
			}
			return c.printResults(cmd, res)
		},
	}

	music := &cobra.Command{
		Use:   "music <query>",
		Short: "Search music recordings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			res, err := newLookup(cfg).SearchMusic(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return lookupError(err)
			}
			return c.printResults(cmd, res)
		},
	}

	episode := &cobra.Command{
		Use:   "episode <show-id> <season> <episode>",
		Short: "Fetch an episode title",
		Args:  cobra.ExactArgs(3),
		RunE:  c.runSearchEpisode,
	}

	cmd.AddCommand(movie, tv, music, episode)
	return cmd
}

func (c *cli) runSearchEpisode(cmd *cobra.Command, args []string) error {
	showID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid show id %q", args[0])
	}
	season, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid season %q", args[1])
	}
	episode, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid episode %q", args[2])
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	title, err := newLookup(cfg).EpisodeTitle(cmd.Context(), showID, season, episode)
	if err != nil {
		return lookupError(err)
	}

	out := episodeOutput{ShowID: showID, Season: season, Episode: episode, Title: title}
	return c.output(cmd, out, func(w io.Writer) {
		fmt.Fprintf(w, "S%02dE%02d  %s\n", season, episode, valueOrEmpty(title))
	})
}

func (c *cli) printResults(cmd *cobra.Command, res *lookup.Results) error {
	return c.output(cmd, res, func(w io.Writer) {
		if len(res.Results) == 0 {
			fmt.Fprintf(w, "No results for %q\n", res.Query)
			return
		}
		fmt.Fprintf(w, "Results for %q (%d total):\n\n", res.Query, res.Total)
		for i, r := range res.Results {
			name := r.Title
			if r.Artist != "" {
				name = r.Artist + " - " + r.Title
			}
			if r.Year != "" {
				name += " (" + r.Year + ")"
			}
			fmt.Fprintf(w, "%d. %-50s match %.2f (%s)  id %s\n", i+1, name, r.Match, r.Confidence, r.ID)
			if r.Album != "" {
				fmt.Fprintf(w, "   Album: %s\n", r.Album)
			}
			if r.Overview != "" {
				fmt.Fprintf(w, "   %s\n", r.Overview)
			}
		}
	})
}

// lookupError rewords the errors a user can fix.
func lookupError(err error) error {
	switch {
	case errors.Is(err, lookup.ErrNotConfigured):
		return errors.New("TMDB API key not configured (set tmdb.api_key or TMDB_API_KEY)")
	case errors.Is(err, lookup.ErrEmptyQuery):
		return errors.New("query is required")
	default:
		return err
	}
}
