package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/renamarr/internal/renamer"
)

type historyOutput struct {
	Items []*renamer.HistoryEntry `json:"items"`
	Total int                     `json:"total"`
}

func (c *cli) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently applied renames",
		Long:  "Lists renames recorded in the journal (history.path), most recent first.",
		Args:  cobra.NoArgs,
		RunE:  c.runHistory,
	}
	cmd.Flags().Int("limit", 20, "Maximum number of entries")
	cmd.Flags().String("type", "", "Only show one type: movie, tv, music")
	return cmd
}

func (c *cli) runHistory(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	kind, _ := cmd.Flags().GetString("type")

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	_, history, closeFn, err := newExecutor(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	if history == nil {
		return errors.New("history not configured (set history.path)")
	}

	filter := renamer.HistoryFilter{Limit: limit}
	if kind != "" {
		filter.Kind = &kind
	}
	entries, err := history.List(filter)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*renamer.HistoryEntry{}
	}

	out := historyOutput{Items: entries, Total: len(entries)}
	return c.output(cmd, out, func(w io.Writer) {
		if len(entries) == 0 {
			fmt.Fprintln(w, "No renames recorded")
			return
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%s  %-5s  %s -> %s\n",
				e.CreatedAt.Local().Format("2006-01-02 15:04"), valueOrEmpty(e.Kind), e.OldPath, e.NewPath)
		}
	})
}
