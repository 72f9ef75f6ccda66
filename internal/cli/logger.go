package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/idelchi/cachesweep/internal/cachesweep"
)

const (
	// logMaxSizeMB is the size at which the log file is rotated.
	logMaxSizeMB = 10
	// logMaxBackups is the number of rotated log files kept.
	logMaxBackups = 3
	// logMaxAgeDays is the retention of rotated log files.
	logMaxAgeDays = 28
)

// isTerminal reports whether stream is an interactive terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newLogger builds the logger for a run and a function releasing its output.
//
// Logs go to a rotated file when options.LogFile is set. Otherwise they go to
// stderr, as text on a terminal and as JSON when redirected.
func newLogger(options cachesweep.Options, stderr io.Writer) (*slog.Logger, func() error, error) {
	level := slog.LevelWarn
	if options.Debug {
		level = slog.LevelDebug
	}

	handlerOptions := &slog.HandlerOptions{Level: level}

	if options.LogFile != "" {
		if !options.Debug {
			handlerOptions.Level = slog.LevelInfo
		}

		rotator := &lumberjack.Logger{
			Filename:   options.LogFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}

		return slog.New(slog.NewJSONHandler(rotator, handlerOptions)), rotator.Close, nil
	}

	noop := func() error { return nil }

	if isTerminal(stderr) {
		return slog.New(slog.NewTextHandler(stderr, handlerOptions)), noop, nil
	}

	return slog.New(slog.NewJSONHandler(stderr, handlerOptions)), noop, nil
}
