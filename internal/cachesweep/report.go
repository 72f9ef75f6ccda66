package cachesweep

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	// rulerWidth is the width of section separators in the report.
	rulerWidth = 80

	accessLayout = "2006-01-02 15:04:05"
	dateLayout   = "2006-01-02"
)

// reporter writes human-readable report lines to a sink.
type reporter struct {
	w io.Writer
}

// printf writes one formatted line.
func (r reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...) //nolint:errcheck // best-effort report output
}

// ruler writes a section separator.
func (r reporter) ruler() {
	r.printf("%s", strings.Repeat("=", rulerWidth))
}

// orDiscard returns logger, or a logger that drops everything when nil.
func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return logger
}
