package cachesweep

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	entries map[string][]StaleEntry
	calls   []string
}

func (s *stubAnalyzer) Analyze(_ context.Context, dir string) []StaleEntry {
	s.calls = append(s.calls, dir)

	return s.entries[dir]
}

type recordingDeleter struct {
	dirs       map[string]bool
	failures   map[string]error
	removedAll []string
	removed    []string
}

func (d *recordingDeleter) IsDir(path string) bool { return d.dirs[path] }

func (d *recordingDeleter) RemoveAll(path string) error {
	d.removedAll = append(d.removedAll, path)

	return d.failures[path]
}

func (d *recordingDeleter) Remove(path string) error {
	d.removed = append(d.removed, path)

	return d.failures[path]
}

// scriptedPrompter answers prompts from a fixed script, then returns io.EOF.
type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptedPrompter) Prompt(_ context.Context, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)

	if len(p.answers) == 0 {
		return "", io.EOF
	}

	answer := p.answers[0]
	p.answers = p.answers[1:]

	return answer, nil
}

const (
	oldDir  = "/path/to/old_dir"
	oldFile = "/path/to/old_file.txt"
)

func oldEntries() map[string][]StaleEntry {
	lastAccess := time.Date(2022, 1, 1, 0, 0, 0, 0, time.Local)

	return map[string][]StaleEntry{
		"/some/dir": {
			{Path: oldDir, Size: 1024, LastAccess: lastAccess},
			{Path: oldFile, Size: 2048, LastAccess: lastAccess},
		},
	}
}

func newTestController(answers ...string) (*Controller, *recordingDeleter, *scriptedPrompter, *bytes.Buffer) {
	deleter := &recordingDeleter{dirs: map[string]bool{oldDir: true}, failures: map[string]error{}}
	prompter := &scriptedPrompter{answers: answers}
	out := &bytes.Buffer{}

	controller := NewController(&stubAnalyzer{entries: oldEntries()}, deleter, prompter, out, DefaultStaleMonths, nil)

	return controller, deleter, prompter, out
}

func TestRun_NoOldCaches(t *testing.T) {
	prompter := &scriptedPrompter{}
	deleter := &recordingDeleter{}

	var out bytes.Buffer

	controller := NewController(&stubAnalyzer{}, deleter, prompter, &out, DefaultStaleMonths, nil)

	summary, err := controller.Run(context.Background(), []string{"/some/dir"})
	require.NoError(t, err)

	assert.Empty(t, prompter.prompts)
	assert.Empty(t, deleter.removed)
	assert.Empty(t, deleter.removedAll)
	assert.Zero(t, summary.Found)
	assert.Contains(t, out.String(), "No old caches found to clean up.")
}

func TestRun_NonexistentDirectoryNeverPrompts(t *testing.T) {
	prompter := &scriptedPrompter{}

	var out bytes.Buffer

	missing := filepath.Join(t.TempDir(), "missing")
	controller := NewController(NewAnalyzer(&out, Defaults(), nil), &recordingDeleter{}, prompter, &out, DefaultStaleMonths, nil)

	_, err := controller.Run(context.Background(), []string{missing})
	require.NoError(t, err)

	assert.Empty(t, prompter.prompts)
	assert.Contains(t, out.String(), "Directory does not exist: "+missing)
}

func TestRun_BulkDelete(t *testing.T) {
	controller, deleter, _, out := newTestController("1")

	summary, err := controller.Run(context.Background(), []string{"/some/dir"})
	require.NoError(t, err)

	assert.Equal(t, []string{oldDir}, deleter.removedAll)
	assert.Equal(t, []string{oldFile}, deleter.removed)
	assert.Equal(t, DecisionBulk, summary.Decision)
	assert.Equal(t, 2, summary.Deleted)
	assert.Equal(t, int64(3072), summary.FreedBytes)
	assert.Contains(t, out.String(), "Found 2 items that haven't been accessed in 12+ months.")
	assert.Contains(t, out.String(), "Deleted: "+oldDir)
	assert.Contains(t, out.String(), "Cleanup complete. Freed approximately 3.00 KB of space.")
}

func TestRun_BulkDeleteContinuesAfterFailure(t *testing.T) {
	controller, deleter, _, out := newTestController("1")
	deleter.failures[oldDir] = &fs.PathError{Op: "unlinkat", Path: oldDir, Err: fs.ErrPermission}

	summary, err := controller.Run(context.Background(), []string{"/some/dir"})
	require.NoError(t, err)

	assert.Equal(t, []string{oldDir}, deleter.removedAll)
	assert.Equal(t, []string{oldFile}, deleter.removed)
	assert.Equal(t, 1, summary.Deleted)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, int64(2048), summary.FreedBytes)
	assert.Contains(t, out.String(), "Error deleting "+oldDir)
	assert.Contains(t, out.String(), "Freed approximately 2.00 KB of space.")
}

func TestRun_SelectiveDelete(t *testing.T) {
	controller, deleter, prompter, out := newTestController("2", "y", "n")

	summary, err := controller.Run(context.Background(), []string{"/some/dir"})
	require.NoError(t, err)

	assert.Equal(t, []string{oldDir}, deleter.removedAll)
	assert.Empty(t, deleter.removed)
	assert.Equal(t, DecisionSelective, summary.Decision)
	assert.Equal(t, 1, summary.Deleted)
	assert.Equal(t, 1, summary.Skipped)
	assert.Len(t, prompter.prompts, 3)
	assert.Equal(t, confirmPrompt, prompter.prompts[1])
	assert.Contains(t, out.String(), "1. "+oldDir+" (1.00 KB, Last access: 2022-01-01)")
	assert.Contains(t, out.String(), "2. "+oldFile+" (2.00 KB, Last access: 2022-01-01)")
	assert.Contains(t, out.String(), "Selective cleanup complete.")
}

func TestRun_SelectiveDeleteCaseInsensitive(t *testing.T) {
	controller, deleter, _, _ := newTestController("2", "N", "Y")

	_, err := controller.Run(context.Background(), []string{"/some/dir"})
	require.NoError(t, err)

	assert.Empty(t, deleter.removedAll)
	assert.Equal(t, []string{oldFile}, deleter.removed)
}

func TestRun_SelectiveDeleteOnlyLiteralYes(t *testing.T) {
	controller, deleter, _, _ := newTestController("2", "yes", "")

	summary, err := controller.Run(context.Background(), []string{"/some/dir"})
	require.NoError(t, err)

	assert.Empty(t, deleter.removedAll)
	assert.Empty(t, deleter.removed)
	assert.Equal(t, 2, summary.Skipped)
}

func TestRun_Exit(t *testing.T) {
	controller, deleter, _, out := newTestController("3")

	summary, err := controller.Run(context.Background(), []string{"/some/dir"})
	require.NoError(t, err)

	assert.Empty(t, deleter.removedAll)
	assert.Empty(t, deleter.removed)
	assert.Equal(t, DecisionAbort, summary.Decision)
	assert.Contains(t, out.String(), "Exiting without cleanup.")
}

func TestRun_InvalidOption(t *testing.T) {
	controller, deleter, prompter, out := newTestController("invalid", "", "3")

	_, err := controller.Run(context.Background(), []string{"/some/dir"})
	require.NoError(t, err)

	assert.Len(t, prompter.prompts, 3)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid option. Please enter 1, 2, or 3."))
	assert.Empty(t, deleter.removedAll)
	assert.Empty(t, deleter.removed)
}

func TestRun_InputEndsBeforeChoice(t *testing.T) {
	controller, deleter, _, _ := newTestController("invalid")

	summary, err := controller.Run(context.Background(), []string{"/some/dir"})
	require.ErrorIs(t, err, ErrNoChoice)
	require.ErrorIs(t, err, io.EOF)

	assert.Equal(t, DecisionNone, summary.Decision)
	assert.Empty(t, deleter.removedAll)
	assert.Empty(t, deleter.removed)
}

func TestCollect_ConcatenatesInOrder(t *testing.T) {
	a := StaleEntry{Path: "/a/x", Size: 1}
	b := StaleEntry{Path: "/b/y", Size: 2}
	c := StaleEntry{Path: "/b/z", Size: 3}

	analyzer := &stubAnalyzer{entries: map[string][]StaleEntry{"/a": {a}, "/b": {b, c}}}
	controller := NewController(analyzer, nil, nil, io.Discard, DefaultStaleMonths, nil)

	entries := controller.Collect(context.Background(), []string{"/a", "/missing", "/b"})

	assert.Equal(t, []string{"/a", "/missing", "/b"}, analyzer.calls)
	assert.Equal(t, []StaleEntry{a, b, c}, entries)
	assert.Equal(t, int64(6), TotalSize(entries))
}

func TestRun_ChecksTypeAtDeleteTime(t *testing.T) {
	root := t.TempDir()

	// Scanned as a directory, replaced by a file since.
	replaced := filepath.Join(root, "replaced")
	writeSized(t, replaced, 10)

	vanished := filepath.Join(root, "vanished")

	dir := filepath.Join(root, "dir")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	writeSized(t, filepath.Join(dir, "nested", "blob"), 10)

	analyzer := &stubAnalyzer{entries: map[string][]StaleEntry{root: {
		{Path: replaced, Size: 100},
		{Path: vanished, Size: 200},
		{Path: dir, Size: 10},
	}}}

	var out bytes.Buffer

	controller := NewController(analyzer, OSDeleter{}, &scriptedPrompter{answers: []string{"1"}}, &out, DefaultStaleMonths, nil)

	summary, err := controller.Run(context.Background(), []string{root})
	require.NoError(t, err)

	assert.NoFileExists(t, replaced)
	assert.NoDirExists(t, dir)
	assert.Equal(t, 2, summary.Deleted)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, int64(110), summary.FreedBytes)
	assert.Contains(t, out.String(), "Error deleting "+vanished)
}
