package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/renamarr/internal/media"
	"github.com/vmunix/renamarr/pkg/release"
)

// parseResult is what a filename was guessed to be.
type parseResult struct {
	Filename  string          `json:"filename"`
	MediaType media.MediaType `json:"media_type"`
	Type      string          `json:"type,omitempty"`
	Detection release.Guess   `json:"detected_info,omitempty"`
}

func (c *cli) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <filename>...",
		Short: "Guess what a filename is (local, no filesystem access)",
		Long: `Parse filenames to show the title, season/episode or search query
that would be guessed for them.

Examples:
  renamarr parse "Breaking.Bad.S01E02.720p.HDTV.x264-LOL.mkv"
  renamarr parse --mode movies "Inception.2010.1080p.BluRay.mkv"
  renamarr parse --file names.txt --json`,
		RunE: c.runParse,
	}
	cmd.Flags().String("mode", "auto", "Restrict detection: auto, movies, tv, music")
	cmd.Flags().StringP("file", "f", "", "Read filenames from file (one per line)")
	return cmd
}

func (c *cli) runParse(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")
	modeFlag, _ := cmd.Flags().GetString("mode")

	mode, err := media.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	names := args
	if inputFile != "" {
		fromFile, err := readNameFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		names = append(names, fromFile...)
	}
	if len(names) == 0 {
		return fmt.Errorf("usage: renamarr parse <filename> or renamarr parse --file <filename>")
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	s := newScanner(cfg)

	results := make([]parseResult, 0, len(names))
	for _, name := range names {
		f, ok := s.Detect(name, mode)
		r := parseResult{Filename: name, MediaType: f.MediaType}
		if ok {
			r.Type = string(f.Kind)
			r.Detection = f.Detection
		}
		results = append(results, r)
	}

	// For single result, output object; for multiple, output array
	var v any = results
	if len(results) == 1 {
		v = results[0]
	}

	return c.output(cmd, v, func(w io.Writer) {
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "Filename:  %s\n", r.Filename)
			fmt.Fprintf(w, "Media:     %s\n", r.MediaType)
			if r.Type == "" {
				fmt.Fprintf(w, "Type:      (excluded)\n")
				continue
			}
			fmt.Fprintf(w, "Type:      %s\n", r.Type)
			fmt.Fprintf(w, "Detected:  %s\n", describe(r.Detection))
		}
	})
}

// readNameFile reads filenames from a file, one per line. Blank lines and
// lines starting with # are skipped.
func readNameFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}
