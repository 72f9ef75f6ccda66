package cachesweep

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Analyzer reports on a single cache directory and collects its old entries.
type Analyzer struct {
	out        reporter
	sizer      *Sizer
	classifier *Classifier
	tree       *TreeRenderer
	minSize    int64
	log        *slog.Logger
}

// NewAnalyzer creates an Analyzer writing its report to out.
func NewAnalyzer(out io.Writer, opt Options, logger *slog.Logger) *Analyzer {
	logger = orDiscard(logger)
	sizer := NewSizer(logger)
	classifier := NewClassifier(opt.StaleMonths)

	return &Analyzer{
		out:        reporter{w: out},
		sizer:      sizer,
		classifier: classifier,
		tree:       NewTreeRenderer(out, sizer, classifier, opt.MaxDepth, logger),
		minSize:    opt.MinSize,
		log:        logger,
	}
}

// Analyze writes the report for dir and returns its old immediate children.
//
// A missing directory yields a single diagnostic line and no entries. Failing
// to list the children keeps whatever was collected before the failure.
func (a *Analyzer) Analyze(ctx context.Context, dir string) []StaleEntry {
	if _, err := os.Stat(dir); err != nil {
		a.log.Debug("skipping directory", "path", dir, "error", err)
		a.out.printf("Directory does not exist: %s", dir)

		return nil
	}

	a.out.printf("")
	a.out.ruler()
	a.out.printf("CACHE ANALYSIS: %s", dir)
	a.out.ruler()

	total, err := a.sizer.DirSize(ctx, dir)
	if err != nil {
		a.log.Warn("measuring directory", "path", dir, "error", err)
		a.out.printf("Total size: unavailable (%v)", err)
	} else {
		a.out.printf("Total size: %s", FormatSize(total))
	}

	a.out.printf("")
	a.out.printf("Directory structure:")
	a.tree.Render(ctx, dir)

	stale := a.collect(ctx, dir)

	if len(stale) > 0 {
		a.out.printf("")
		a.out.printf("Old caches (not accessed in %d+ months):", a.classifier.Months)

		for _, e := range stale {
			a.out.printf("- %s: %s, Last access: %s",
				filepath.Base(e.Path), FormatSize(e.Size), formatAccess(e.LastAccess, dateLayout))
		}
	}

	return stale
}

// collect classifies the immediate children of dir.
func (a *Analyzer) collect(ctx context.Context, dir string) []StaleEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		a.log.Debug("listing directory", "path", dir, "error", err)
		a.out.printf("Permission denied or directory not found when scanning for old caches")
	}

	var stale []StaleEntry

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		path := filepath.Join(dir, entry.Name())

		lastAccess, known := a.classifier.AccessTime(path)
		if !a.classifier.staleAt(lastAccess, known) {
			continue
		}

		size, err := a.entrySize(ctx, path, entry)
		if err != nil {
			a.log.Debug("measuring old entry", "path", path, "error", err)
		}

		if size < a.minSize {
			a.log.Debug("old entry below minimum size", "path", path, "size", size, "min_size", a.minSize)

			continue
		}

		stale = append(stale, StaleEntry{Path: path, Size: size, LastAccess: lastAccess})
	}

	return stale
}

// entrySize measures directories recursively and files by their own length.
func (a *Analyzer) entrySize(ctx context.Context, path string, entry os.DirEntry) (int64, error) {
	if entry.IsDir() {
		return a.sizer.DirSize(ctx, path)
	}

	info, err := entry.Info()
	if err != nil {
		return 0, err
	}

	return info.Size(), nil
}
