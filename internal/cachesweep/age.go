package cachesweep

import (
	"math"
	"time"
)

const (
	// daysPerMonth is the fixed month length used for the cutoff.
	daysPerMonth = 30
	// maxCutoffMonths bounds the calendar arithmetic. Larger thresholds reach
	// back before any representable access time.
	maxCutoffMonths = math.MaxInt32 / daysPerMonth
)

// Classifier decides whether paths are old based on their last access time.
type Classifier struct {
	// Months is the age threshold in 30-day months.
	Months int
	// Now returns the current time.
	Now func() time.Time
	// AccessTime looks up the last access time of a path.
	AccessTime func(path string) (time.Time, bool)
}

// NewClassifier creates a Classifier using the wall clock and the filesystem.
func NewClassifier(months int) *Classifier {
	return &Classifier{
		Months:     months,
		Now:        time.Now,
		AccessTime: LastAccessTime,
	}
}

// Cutoff returns now minus Months×30 days, or the zero time when the
// threshold lies beyond the calendar.
func (c *Classifier) Cutoff() time.Time {
	if c.Months > maxCutoffMonths {
		return time.Time{}
	}

	now := c.Now()

	return now.UTC().AddDate(0, 0, -c.Months*daysPerMonth).In(now.Location())
}

// IsStale reports whether path was last accessed before the cutoff.
// Paths with an unknown access time are never stale.
func (c *Classifier) IsStale(path string) bool {
	return c.staleAt(c.AccessTime(path))
}

// staleAt classifies an already resolved access time.
func (c *Classifier) staleAt(lastAccess time.Time, known bool) bool {
	if !known {
		return false
	}

	return lastAccess.Before(c.Cutoff())
}
