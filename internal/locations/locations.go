// Package locations supplies the platform default cache directories.
package locations

import (
	"os"
	"path/filepath"
	"runtime"
)

// Defaults returns the candidate cache directories for the current platform.
func Defaults() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	return candidates(runtime.GOOS, home, os.Getenv)
}

// candidates builds the list for goos. Entries depending on an unknown home
// directory or an unset variable are left out.
func candidates(goos, home string, getenv func(string) string) []string {
	var dirs []string

	switch goos {
	case "darwin":
		dirs = append(dirs, "/Library/Caches", "/System/Library/Caches")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Caches"))
		}
	case "windows":
		if local := getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Temp"))
		}

		if tmp := getenv("TEMP"); tmp != "" && !contains(dirs, tmp) {
			dirs = append(dirs, tmp)
		}
	default:
		if xdg := getenv("XDG_CACHE_HOME"); xdg != "" {
			dirs = append(dirs, xdg)
		} else if home != "" {
			dirs = append(dirs, filepath.Join(home, ".cache"))
		}

		dirs = append(dirs, "/var/cache")
	}

	return dirs
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if filepath.Clean(v) == filepath.Clean(s) {
			return true
		}
	}

	return false
}
