//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cachesweep

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// accessTime reads atime from the stat structure.
func accessTime(path string) (time.Time, error) {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return time.Time{}, fmt.Errorf("stat %q: %w", path, err)
	}

	sec, nsec := stat.Atim.Unix()

	return time.Unix(sec, nsec), nil
}
