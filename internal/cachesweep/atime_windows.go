//go:build windows

package cachesweep

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

// accessTime reads the last access time from the file attribute data.
func accessTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}

	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, fmt.Errorf("stat %q: no file attribute data", path)
	}

	return time.Unix(0, attrs.LastAccessTime.Nanoseconds()), nil
}
