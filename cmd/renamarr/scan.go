package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/renamarr/internal/media"
	"github.com/vmunix/renamarr/pkg/release"
)

type scanOutput struct {
	Directory string       `json:"directory"`
	Mode      media.Mode   `json:"mode"`
	Files     []media.File `json:"files"`
	Count     int          `json:"count"`
}

func (c *cli) scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "List media files in a directory and what they look like",
		Long: `Scan one directory (not recursive) and guess what each media file is.

Without a directory the configured media root is scanned.

Examples:
  renamarr scan ~/Downloads
  renamarr scan --mode tv /media/incoming
  renamarr scan --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.runScan,
	}
	cmd.Flags().String("mode", "", "Restrict detection: auto, movies, tv, music (default from config)")
	return cmd
}

func (c *cli) runScan(cmd *cobra.Command, args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	dir := cfg.Media.Root
	if len(args) > 0 {
		dir = args[0]
	}

	modeFlag, _ := cmd.Flags().GetString("mode")
	if modeFlag == "" {
		modeFlag = cfg.Media.Mode
	}
	mode, err := media.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	files := newScanner(cfg).Scan(dir, mode)
	out := scanOutput{Directory: dir, Mode: mode, Files: files, Count: len(files)}

	return c.output(cmd, out, func(w io.Writer) {
		if len(files) == 0 {
			fmt.Fprintf(w, "No media files in %s\n", dir)
			return
		}
		for _, f := range files {
			fmt.Fprintf(w, "%-6s %-40s %s\n", f.Kind, describe(f.Detection), f.Filename)
		}
		fmt.Fprintf(w, "\n%d file(s)\n", len(files))
	})
}

// describe renders a guess on one line.
func describe(g release.Guess) string {
	switch g := g.(type) {
	case release.TVGuess:
		return fmt.Sprintf("%s S%02dE%02d", valueOrEmpty(g.ShowName), g.Season, g.Episode)
	case release.MovieGuess:
		if g.HasYear() {
			return fmt.Sprintf("%s (%s)", valueOrEmpty(g.Name), g.Year)
		}
		return valueOrEmpty(g.Name)
	case release.MusicGuess:
		return valueOrEmpty(g.Query)
	default:
		return ""
	}
}
