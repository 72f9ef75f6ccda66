package cachesweep

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// sizeUnits are the binary units used by FormatSize.
//
//nolint:gochecknoglobals // Config constant
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Sizer computes recursive directory sizes.
type Sizer struct {
	log *slog.Logger
}

// NewSizer creates a Sizer. A nil logger discards debug output.
func NewSizer(logger *slog.Logger) *Sizer {
	return &Sizer{log: orDiscard(logger)}
}

// DirSize returns the cumulative size of all regular files beneath path.
//
// A path that is not a directory (or cannot be stat'ed) has size 0. Symbolic
// links, special files and entries that fail or vanish during the walk are
// skipped. Only a failure to list path itself is returned.
func (s *Sizer) DirSize(ctx context.Context, path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return 0, nil
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	root := filepath.Clean(path)

	// Serial traversal, symlinks are not followed.
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}

	var total atomic.Int64

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}

			s.log.Debug("skipping entry", "path", path, "error", err)

			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			s.log.Debug("skipping file", "path", path, "error", err)

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		total.Add(fileInfo.Size())

		return nil
	})
	if walkErr != nil {
		return 0, fmt.Errorf("measuring %q: %w", path, walkErr)
	}

	return total.Load(), nil
}

// FormatSize formats a byte count with binary units and two decimals,
// e.g. "500.00 B" or "1.00 KB". Values past TB stay in TB.
func FormatSize(size int64) string {
	value := float64(size)

	for i, unit := range sizeUnits {
		if value < 1024 || i == len(sizeUnits)-1 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}

		value /= 1024
	}

	return ""
}
