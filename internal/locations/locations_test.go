package locations

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestCandidates_Darwin(t *testing.T) {
	got := candidates("darwin", "/Users/me", env(nil))

	assert.Equal(t, []string{
		"/Library/Caches",
		"/System/Library/Caches",
		filepath.Join("/Users/me", "Library", "Caches"),
	}, got)
}

func TestCandidates_DarwinWithoutHome(t *testing.T) {
	assert.Equal(t, []string{"/Library/Caches", "/System/Library/Caches"}, candidates("darwin", "", env(nil)))
}

func TestCandidates_LinuxXDG(t *testing.T) {
	got := candidates("linux", "/home/me", env(map[string]string{"XDG_CACHE_HOME": "/data/cache"}))

	assert.Equal(t, []string{"/data/cache", "/var/cache"}, got)
}

func TestCandidates_LinuxHome(t *testing.T) {
	got := candidates("linux", "/home/me", env(nil))

	assert.Equal(t, []string{filepath.Join("/home/me", ".cache"), "/var/cache"}, got)
}

func TestCandidates_WindowsDeduplicates(t *testing.T) {
	local := filepath.Join("C:", "Users", "me", "AppData", "Local")
	temp := filepath.Join(local, "Temp")

	got := candidates("windows", "", env(map[string]string{"LOCALAPPDATA": local, "TEMP": temp}))

	assert.Equal(t, []string{temp}, got)
}

func TestDefaults_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, Defaults())
}
