package cachesweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newFixture creates the tree
//
//	root/file1.txt            1024 bytes
//	root/dir1/file2.txt       2048 bytes
//	root/dir1/subdir1/file3.txt 4096 bytes
//	root/dir2/file4.txt       8192 bytes
//
// and returns root.
func newFixture(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir1", "subdir1"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir2"), 0o755))

	writeSized(t, filepath.Join(root, "file1.txt"), 1024)
	writeSized(t, filepath.Join(root, "dir1", "file2.txt"), 2048)
	writeSized(t, filepath.Join(root, "dir1", "subdir1", "file3.txt"), 4096)
	writeSized(t, filepath.Join(root, "dir2", "file4.txt"), 8192)

	return root
}

func writeSized(t *testing.T, path string, size int) {
	t.Helper()

	data := make([]byte, size)
	for i := range data {
		data[i] = '0'
	}

	require.NoError(t, os.WriteFile(path, data, 0o644))
}
