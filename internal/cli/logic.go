package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/idelchi/cachesweep/internal/cachesweep"
)

func logic(
	ctx context.Context,
	options cachesweep.Options,
	stdin io.Reader,
	stdout, stderr io.Writer,
	logger *slog.Logger,
) error {
	logger.Debug("resolved configuration",
		"directories", options.Directories,
		"depth", options.MaxDepth,
		"months", options.StaleMonths,
		"min_size", options.MinSize)

	if options.DryRun {
		return dryRun(ctx, options, stdout, stderr, logger)
	}

	if !isTerminal(stdin) {
		logger.Warn("standard input is not a terminal, reading choices from it")
	}

	analyzer := cachesweep.NewAnalyzer(stdout, options, logger)
	prompter := cachesweep.NewLinePrompter(stdin, stdout)
	controller := cachesweep.NewController(analyzer, cachesweep.OSDeleter{}, prompter, stdout, options.StaleMonths, logger)

	summary, err := controller.Run(ctx, options.Directories)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return err
		}

		// Input ended before a decision: nothing more is deleted.
		logger.Warn("operator input ended", "error", err)
		fmt.Fprintln(stdout, "\nInput ended, stopping cleanup.") //nolint:errcheck,forbidigo // best-effort output
	}

	logger.Debug("run summary",
		"found", summary.Found,
		"deleted", summary.Deleted,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"freed_bytes", summary.FreedBytes)

	//nolint:forbidigo // Completion message to console
	fmt.Fprintln(stdout, "\nCache analysis and cleanup completed.")

	return nil
}

// dryRun analyzes the directories and lists their old entries without
// prompting. In JSON mode the tree report goes to stderr so stdout stays
// machine readable.
func dryRun(ctx context.Context, options cachesweep.Options, stdout, stderr io.Writer, logger *slog.Logger) error {
	reportOut := stdout
	if options.Output == "json" {
		reportOut = stderr
	}

	analyzer := cachesweep.NewAnalyzer(reportOut, options, logger)
	controller := cachesweep.NewController(analyzer, nil, nil, reportOut, options.StaleMonths, logger)

	entries := controller.Collect(ctx, options.Directories)
	if err := ctx.Err(); err != nil {
		return err
	}

	report := Report{
		Directories: options.Directories,
		StaleMonths: options.StaleMonths,
		Entries:     entries,
		TotalBytes:  cachesweep.TotalSize(entries),
	}

	if report.Entries == nil {
		report.Entries = []cachesweep.StaleEntry{}
	}

	switch options.Output {
	case "json":
		return PrintJSON(report, stdout)
	default:
		return PrintTable(report, stdout)
	}
}
