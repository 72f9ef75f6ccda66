package cachesweep

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	connectorLast  = "└── "
	connectorInner = "├── "
	extensionLast  = "    "
	extensionInner = "│   "
)

// TreeRenderer writes a depth-bounded directory tree annotated with size,
// last access time and an [OLD] marker.
type TreeRenderer struct {
	out        reporter
	sizer      *Sizer
	classifier *Classifier
	maxDepth   int
	readDir    func(name string) ([]os.DirEntry, error)
	log        *slog.Logger
}

// NewTreeRenderer creates a TreeRenderer writing to out.
func NewTreeRenderer(out io.Writer, sizer *Sizer, classifier *Classifier, maxDepth int, logger *slog.Logger) *TreeRenderer {
	return &TreeRenderer{
		out:        reporter{w: out},
		sizer:      sizer,
		classifier: classifier,
		maxDepth:   maxDepth,
		readDir:    os.ReadDir,
		log:        orDiscard(logger),
	}
}

// Render writes the tree rooted at path.
func (t *TreeRenderer) Render(ctx context.Context, path string) {
	t.render(ctx, path, "", true, 0)
}

//nolint:revive // isLast is a control flag by nature
func (t *TreeRenderer) render(ctx context.Context, path, prefix string, isLast bool, depth int) {
	if depth > t.maxDepth || ctx.Err() != nil {
		return
	}

	name := filepath.Base(path)

	info, err := os.Lstat(path)
	if err != nil {
		t.log.Debug("reading metadata", "path", path, "error", err)
		t.out.printf("%s%s[Error accessing %s]", prefix, connectorLast, name)

		return
	}

	size := info.Size()
	if info.IsDir() {
		size, err = t.sizer.DirSize(ctx, path)
		if err != nil {
			t.log.Debug("measuring directory", "path", path, "error", err)
			t.out.printf("%s%s[Error accessing %s]", prefix, connectorLast, name)

			return
		}
	}

	lastAccess, known := t.classifier.AccessTime(path)

	marker := ""
	if t.classifier.staleAt(lastAccess, known) {
		marker = " [OLD]"
	}

	connector, extension := connectorInner, extensionInner
	if isLast {
		connector, extension = connectorLast, extensionLast
	}

	t.out.printf("%s%s%s (%s, Last access: %s)%s",
		prefix, connector, name, FormatSize(size), formatAccess(lastAccess, accessLayout), marker)

	if !info.IsDir() {
		return
	}

	entries, err := t.readDir(path)
	if err != nil {
		t.log.Debug("listing directory", "path", path, "error", err)
		t.out.printf("%s%s%s[Permission denied or not found]", prefix, extension, connectorLast)

		return
	}

	for i, entry := range entries {
		t.render(ctx, filepath.Join(path, entry.Name()), prefix+extension, i == len(entries)-1, depth+1)
	}
}
