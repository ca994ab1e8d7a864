package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vmunix/renamarr/internal/renamer"
)

func (c *cli) renameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [flags] <file> <new-name>",
		Short: "Rename one file within its directory",
		Long: `Rename a file to a new bare filename in the same directory.

An existing destination is never overwritten.

Examples:
  renamarr rename "inception.2010.1080p.mkv" "Inception (2010).mkv"
  renamarr rename --dry-run old.mkv "New Name.mkv"`,
		Args: cobra.ExactArgs(2),
		RunE: c.runRename,
	}
	cmd.Flags().Bool("dry-run", false, "Report what would happen without renaming")
	return cmd
}

func (c *cli) runRename(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	exec, _, closeFn, err := newExecutor(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	outcome := exec.Rename(args[0], args[1], dryRun)

	if err := c.output(cmd, outcome, func(w io.Writer) {
		fmt.Fprintf(w, "%s\n", outcome.Message)
		if outcome.NewPath != "" {
			fmt.Fprintf(w, "  %s -> %s\n", filepath.Base(args[0]), outcome.NewPath)
		}
	}); err != nil {
		return err
	}

	if !outcome.Success {
		return outcome.Err
	}
	return nil
}

func (c *cli) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [flags] <requests.json>",
		Short: "Rename many files from a JSON file of requests",
		Long: `Apply rename requests read from a JSON file ("-" reads stdin). The file
holds an array of requests, or an object with a "files" array:

  [
    {"type": "movie", "filepath": "/media/a.mkv", "title": "Heat", "year": "1995"},
    {"type": "tv", "filepath": "/media/b.mkv", "show_name": "Lost", "season": 1, "episode": 4},
    {"type": "music", "filepath": "/media/c.mp3", "artist": "Ivy", "title": "Edge"}
  ]

A failed item never stops the rest of the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: c.runBatch,
	}
	cmd.Flags().Bool("dry-run", false, "Report what would happen without renaming")
	return cmd
}

func (c *cli) runBatch(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	reqs, err := readRequests(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	exec, _, closeFn, err := newExecutor(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	res := exec.Batch(reqs, dryRun)

	if err := c.output(cmd, res, func(w io.Writer) {
		for _, r := range res.Results {
			status := "ok  "
			if !r.Success {
				status = "FAIL"
			}
			name := r.NewFilename
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(w, "%s  %s -> %s  (%s)\n", status, r.Path, name, r.Message)
		}
		fmt.Fprintf(w, "\n%d of %d succeeded", res.SuccessCount, res.Total)
		if res.DryRun {
			fmt.Fprint(w, " (dry run)")
		}
		fmt.Fprintln(w)
	}); err != nil {
		return err
	}

	if failed := res.Total - res.SuccessCount; failed > 0 {
		return fmt.Errorf("%d of %d renames failed", failed, res.Total)
	}
	return nil
}

// readRequests decodes rename requests from path, or stdin for "-".
func readRequests(stdin io.Reader, path string) ([]renamer.Request, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading requests: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("reading requests: empty input")
	}

	var reqs []renamer.Request
	if data[0] == '[' {
		err = json.Unmarshal(data, &reqs)
	} else {
		var wrapped struct {
			Files []renamer.Request `json:"files"`
		}
		err = json.Unmarshal(data, &wrapped)
		reqs = wrapped.Files
	}
	if err != nil {
		return nil, fmt.Errorf("parsing requests: %w", err)
	}
	return reqs, nil
}
