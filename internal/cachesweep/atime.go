package cachesweep

import "time"

// LastAccessTime returns the filesystem-reported last access time of path.
// The second result is false when the time cannot be read, for example
// because path does not exist or is not accessible.
func LastAccessTime(path string) (time.Time, bool) {
	t, err := accessTime(path)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// formatAccess formats t with layout, or "Unknown" for the zero time.
func formatAccess(t time.Time, layout string) string {
	if t.IsZero() {
		return "Unknown"
	}

	return t.Format(layout)
}
