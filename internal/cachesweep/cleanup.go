package cachesweep

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	choicePrompt = "\nOptions:\n" +
		"1. Delete all old caches\n" +
		"2. Select individual caches to delete\n" +
		"3. Exit without deleting\n" +
		"Your choice (1-3): "
	confirmPrompt = "   Delete? (y/n): "
)

// DirectoryAnalyzer analyzes one directory and returns its old entries.
type DirectoryAnalyzer interface {
	Analyze(ctx context.Context, dir string) []StaleEntry
}

// Deleter removes filesystem entries.
type Deleter interface {
	IsDir(path string) bool
	RemoveAll(path string) error
	Remove(path string) error
}

// OSDeleter deletes from the host filesystem.
type OSDeleter struct{}

// IsDir reports whether path is currently a directory.
func (OSDeleter) IsDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

// RemoveAll removes path and everything beneath it.
func (OSDeleter) RemoveAll(path string) error { return os.RemoveAll(path) }

// Remove removes a single file.
func (OSDeleter) Remove(path string) error { return os.Remove(path) }

// Controller runs the analysis of several directories followed by the
// interactive cleanup of their old entries.
type Controller struct {
	analyzer DirectoryAnalyzer
	deleter  Deleter
	prompter Prompter
	out      reporter
	months   int
	log      *slog.Logger
}

// NewController creates a Controller. months only affects report wording.
func NewController(
	analyzer DirectoryAnalyzer,
	deleter Deleter,
	prompter Prompter,
	out io.Writer,
	months int,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		analyzer: analyzer,
		deleter:  deleter,
		prompter: prompter,
		out:      reporter{w: out},
		months:   months,
		log:      orDiscard(logger),
	}
}

// Collect analyzes every directory in order and concatenates the old entries.
func (c *Controller) Collect(ctx context.Context, dirs []string) []StaleEntry {
	var all []StaleEntry

	for _, dir := range dirs {
		if ctx.Err() != nil {
			break
		}

		entries := c.analyzer.Analyze(ctx, dir)
		c.log.Debug("analyzed directory", "path", dir, "old_entries", len(entries))
		all = append(all, entries...)
	}

	return all
}

// Run analyzes dirs and, if old entries were found, asks the operator how to
// clean them up. Per-entry deletion failures are reported and skipped; an
// error is only returned when operator input ends or ctx is cancelled.
func (c *Controller) Run(ctx context.Context, dirs []string) (Summary, error) {
	entries := c.Collect(ctx, dirs)
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Found: len(entries)}

	if len(entries) == 0 {
		c.out.printf("")
		c.out.printf("No old caches found to clean up.")

		return summary, nil
	}

	c.out.printf("")
	c.out.ruler()
	c.out.printf("INTERACTIVE CLEANUP")
	c.out.ruler()
	c.out.printf("Found %d items that haven't been accessed in %d+ months.", len(entries), c.months)

	decision, err := c.awaitChoice(ctx)
	if err != nil {
		return summary, err
	}

	summary.Decision = decision

	switch decision {
	case DecisionBulk:
		c.bulkDelete(entries, &summary)
	case DecisionSelective:
		err = c.selectiveDelete(ctx, entries, &summary)
	case DecisionAbort, DecisionNone:
		c.out.printf("Exiting without cleanup.")
	}

	c.log.Info("cleanup finished",
		"decision", string(summary.Decision),
		"deleted", summary.Deleted,
		"failed", summary.Failed,
		"freed_bytes", summary.FreedBytes)

	return summary, err
}

// awaitChoice prompts until one of the recognized options is entered.
func (c *Controller) awaitChoice(ctx context.Context) (Decision, error) {
	for {
		answer, err := c.prompter.Prompt(ctx, choicePrompt)
		if err != nil {
			return DecisionNone, fmt.Errorf("%w: %w", ErrNoChoice, err)
		}

		switch strings.TrimSpace(answer) {
		case "1":
			return DecisionBulk, nil
		case "2":
			return DecisionSelective, nil
		case "3":
			return DecisionAbort, nil
		default:
			c.out.printf("Invalid option. Please enter 1, 2, or 3.")
		}
	}
}

// bulkDelete removes every entry and reports the space freed by successes.
func (c *Controller) bulkDelete(entries []StaleEntry, summary *Summary) {
	for _, e := range entries {
		if err := c.delete(e.Path); err != nil {
			c.out.printf("Error deleting %s: %v", e.Path, err)
			summary.Failed++

			continue
		}

		c.out.printf("Deleted: %s", e.Path)
		summary.Deleted++
		summary.FreedBytes += e.Size
	}

	c.out.printf("")
	c.out.printf("Cleanup complete. Freed approximately %s of space.", FormatSize(summary.FreedBytes))
}

// selectiveDelete asks for each entry and removes those confirmed with "y".
func (c *Controller) selectiveDelete(ctx context.Context, entries []StaleEntry, summary *Summary) error {
	for i, e := range entries {
		c.out.printf("%d. %s (%s, Last access: %s)",
			i+1, e.Path, FormatSize(e.Size), formatAccess(e.LastAccess, dateLayout))

		answer, err := c.prompter.Prompt(ctx, confirmPrompt)
		if err != nil {
			return fmt.Errorf("reading confirmation for %q: %w", e.Path, err)
		}

		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			summary.Skipped++

			continue
		}

		if err := c.delete(e.Path); err != nil {
			c.out.printf("   Error deleting %s: %v", e.Path, err)
			summary.Failed++

			continue
		}

		c.out.printf("   Deleted: %s", e.Path)
		summary.Deleted++
		summary.FreedBytes += e.Size
	}

	c.out.printf("")
	c.out.printf("Selective cleanup complete.")

	return nil
}

// delete removes path, checking its type at deletion time.
func (c *Controller) delete(path string) error {
	var err error
	if c.deleter.IsDir(path) {
		err = c.deleter.RemoveAll(path)
	} else {
		err = c.deleter.Remove(path)
	}

	if err != nil {
		if IsTolerated(err) {
			c.log.Warn("deleting entry", "path", path, "error", err)
		} else {
			c.log.Error("deleting entry", "path", path, "error", err)
		}
	}

	return err
}
