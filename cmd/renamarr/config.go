package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/renamarr/internal/config"
)

func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	test := &cobra.Command{
		Use:   "test [path]",
		Short: "Validate configuration file",
		Long:  "Validates config.toml syntax, settings, and environment variable substitution without starting the server.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.runConfigTest,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example configuration file",
		Long:  "Writes the example config to path (default: " + config.DefaultPath() + ").",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")

	cmd.AddCommand(test, initCmd)
	return cmd
}

func (c *cli) runConfigTest(cmd *cobra.Command, args []string) error {
	path := c.configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(w, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(w, cfg)
	if warns := cfg.Warnings(); len(warns) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warn := range warns {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}
	fmt.Fprintln(w, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:      %s:%d (log: %s)\n", cfg.Server.Host, cfg.Server.Port, cfg.Server.LogLevel)
	fmt.Fprintf(w, "  Media:       %s (mode: %s)\n", cfg.Media.Root, cfg.Media.Mode)
	fmt.Fprintf(w, "  History:     %s\n", valueOrEmpty(cfg.History.Path))

	tmdb := "disabled"
	if cfg.TMDB.APIKey != "" {
		tmdb = "enabled (" + cfg.TMDB.Language + ")"
	}
	fmt.Fprintf(w, "  TMDB:        %s\n", tmdb)
	fmt.Fprintf(w, "  MusicBrainz: %.2f req/s\n", cfg.MusicBrainz.RequestsPerSecond)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	if err := config.WriteDefault(path, force); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%s already exists. Use --force to overwrite", path)
		}
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
