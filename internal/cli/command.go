package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/cachesweep/internal/cachesweep"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments and standard streams.
func (c CLI) Execute(ctx context.Context) error {
	return c.command(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// command builds the root command bound to the given streams.
//
//nolint:funlen // Flag registration
func (c CLI) command(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	options := cachesweep.Defaults()

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "cachesweep [flags] [directory...]",
		Short: "Analyze cache directories and clean up entries that are no longer used",
		Long: heredoc.Doc(`
			cachesweep analyzes cache directories and removes entries that have not been accessed recently.

			For each directory it prints the total size, a tree of its contents annotated with
			size and last access time, and the immediate children that have not been accessed
			within the configured number of months (marked [OLD]). It then asks whether to delete
			all of them, to choose one by one, or to leave everything in place.

			Positional Arguments:
			  directory              Directories to analyze. Defaults to the platform cache
			                         directories (or 'directories' from the config file).

			Months are fixed 30-day periods. Deletions are permanent.

			Configuration is read from --config, or config.yaml in $XDG_CONFIG_HOME/cachesweep
			or ~/.config/cachesweep. Every flag can also be set as CACHESWEEP_<FLAG>, e.g.
			CACHESWEEP_MIN_SIZE=10MB.
		`),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Version {
				//nolint:forbidigo // Version output to console
				fmt.Fprintln(stdout, c.version)

				return nil
			}

			if err := loadConfig(cmd.Flags(), &options, args); err != nil {
				return err
			}

			if options.Init {
				return printScaffold(options, stdout)
			}

			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if options.MaxDepth < 0 {
				return errors.New("depth cannot be negative")
			}

			if options.StaleMonths <= 0 {
				return errors.New("months must be positive")
			}

			if options.PrintConfig {
				return printConfig(options, stdout)
			}

			logger, closeLog, err := newLogger(options, stderr)
			if err != nil {
				return err
			}
			defer closeLog() //nolint:errcheck // best-effort cleanup

			return logic(cmd.Context(), options, stdin, stdout, stderr, logger)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.IntVarP(&options.MaxDepth, "depth", "d", cachesweep.DefaultMaxDepth, "Maximum depth of the tree report")
	flags.IntVarP(
		&options.StaleMonths,
		"months",
		"m",
		cachesweep.DefaultStaleMonths,
		"Entries not accessed for this many 30-day months are old",
	)
	flags.String("min-size", "0B", "Minimum size of old entries to offer for deletion (e.g., 10MB)")
	flags.BoolVarP(&options.DryRun, "dry-run", "n", false, "Report old entries without prompting or deleting")
	flags.StringVarP(&options.Output, "output", "o", "table", "Dry-run output format: json or table")
	flags.StringVarP(&options.ConfigFile, "config", "c", "", "Path to a configuration file")
	flags.StringVar(&options.LogFile, "log-file", "", "Write logs to this file (rotated) instead of stderr")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
	flags.BoolVarP(&options.Init, "init", "i", false, "Output a starter configuration file")
	flags.BoolVar(&options.PrintConfig, "print-config", false, "Output the effective configuration and exit")

	return cmd
}
