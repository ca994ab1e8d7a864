package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/renamarr/internal/renamer"
)

type formatOutput struct {
	Filename string `json:"filename"`
}

func (c *cli) formatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Print the canonical filename for given metadata",
		Long: `Build a canonical filename from metadata using the configured templates.

Examples:
  renamarr format movie --title "The Matrix" --year 1999 --ext mkv
  renamarr format tv --show "The Office" --season 2 --episode 3 --episode-title "Office Olympics" --ext mkv
  renamarr format music --artist "Daft Punk" --title "One More Time" --ext flac`,
	}

	movie := &cobra.Command{
		Use:   "movie",
		Short: "Format a movie filename",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, _ := cmd.Flags().GetString("title")
			year, _ := cmd.Flags().GetString("year")
			return c.printFormatted(cmd, func(f *renamer.Formatter, ext string) string {
				return f.MovieName(renamer.Movie{Title: title, Year: year}, ext)
			})
		},
	}
	movie.Flags().String("title", "", "Movie title")
	movie.Flags().String("year", "", "Release year")
	_ = movie.MarkFlagRequired("title")
	_ = movie.MarkFlagRequired("year")

	tv := &cobra.Command{
		Use:   "tv",
		Short: "Format a TV episode filename",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			show, _ := cmd.Flags().GetString("show")
			season, _ := cmd.Flags().GetInt("season")
			episode, _ := cmd.Flags().GetInt("episode")
			title, _ := cmd.Flags().GetString("episode-title")
			if season <= 0 || episode <= 0 {
				return fmt.Errorf("season and episode must be positive")
			}
			return c.printFormatted(cmd, func(f *renamer.Formatter, ext string) string {
				return f.EpisodeName(renamer.Episode{
					Show:         show,
					Season:       season,
					Episode:      episode,
					EpisodeTitle: title,
				}, ext)
			})
		},
	}
	tv.Flags().String("show", "", "Show name")
	tv.Flags().Int("season", 0, "Season number")
	tv.Flags().Int("episode", 0, "Episode number")
	tv.Flags().String("episode-title", "", "Episode title (optional)")
	_ = tv.MarkFlagRequired("show")
	_ = tv.MarkFlagRequired("season")
	_ = tv.MarkFlagRequired("episode")

	music := &cobra.Command{
		Use:   "music",
		Short: "Format a music track filename",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			artist, _ := cmd.Flags().GetString("artist")
			title, _ := cmd.Flags().GetString("title")
			return c.printFormatted(cmd, func(f *renamer.Formatter, ext string) string {
				return f.TrackName(renamer.Track{Artist: artist, Title: title}, ext)
			})
		},
	}
	music.Flags().String("artist", "", "Artist name")
	music.Flags().String("title", "", "Track title")
	_ = music.MarkFlagRequired("artist")
	_ = music.MarkFlagRequired("title")

	for _, sub := range []*cobra.Command{movie, tv, music} {
		sub.Flags().String("ext", "", "File extension without the dot")
		_ = sub.MarkFlagRequired("ext")
		cmd.AddCommand(sub)
	}
	return cmd
}

func (c *cli) printFormatted(cmd *cobra.Command, build func(f *renamer.Formatter, ext string) string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	ext, _ := cmd.Flags().GetString("ext")
	name := build(newFormatter(cfg), strings.TrimPrefix(ext, "."))

	return c.output(cmd, formatOutput{Filename: name}, func(w io.Writer) {
		fmt.Fprintln(w, name)
	})
}
