package cachesweep

import (
	"errors"
	"io/fs"
)

// ErrNoChoice is returned when operator input ends before a valid choice was read.
var ErrNoChoice = errors.New("no cleanup option chosen")

// IsTolerated reports whether err is a permission or not-found failure.
// Such failures are reported and the affected item is skipped.
func IsTolerated(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist)
}
