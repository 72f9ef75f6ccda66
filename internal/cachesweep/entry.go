package cachesweep

import "time"

// StaleEntry is an immediate child of a cache directory that has not been
// accessed within the configured threshold.
type StaleEntry struct {
	// Path is the path of the file or directory.
	Path string `json:"path"`
	// Size is the size in bytes (recursive for directories).
	Size int64 `json:"size"`
	// LastAccess is the last access time. The zero value means unknown.
	LastAccess time.Time `json:"last_access"`
}

// Decision is the operator's choice in the cleanup workflow.
type Decision string

const (
	// DecisionNone means no choice was made (nothing to clean, or input ended).
	DecisionNone Decision = ""
	// DecisionBulk deletes every old entry.
	DecisionBulk Decision = "bulk"
	// DecisionSelective asks for each old entry.
	DecisionSelective Decision = "selective"
	// DecisionAbort leaves everything in place.
	DecisionAbort Decision = "abort"
)

// Summary holds the outcome of a cleanup run.
type Summary struct {
	// Found is the number of old entries discovered.
	Found int `json:"found"`
	// Deleted is the number of entries removed successfully.
	Deleted int `json:"deleted"`
	// Failed is the number of entries whose removal failed.
	Failed int `json:"failed"`
	// Skipped is the number of entries declined during selective cleanup.
	Skipped int `json:"skipped"`
	// FreedBytes is the cumulative size of successfully removed entries.
	FreedBytes int64 `json:"freed_bytes"`
	// Decision is the operator's choice.
	Decision Decision `json:"decision"`
}

// TotalSize returns the cumulative size of entries.
func TotalSize(entries []StaleEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Size
	}

	return total
}
