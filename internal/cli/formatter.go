package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/cachesweep/internal/cachesweep"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// Report is the dry-run result across all analyzed directories.
type Report struct {
	// Directories are the analyzed directories.
	Directories []string `json:"directories"`
	// StaleMonths is the age threshold in 30-day months.
	StaleMonths int `json:"stale_months"`
	// Entries are the old entries in discovery order.
	Entries []cachesweep.StaleEntry `json:"entries"`
	// TotalBytes is the cumulative size of all old entries.
	TotalBytes int64 `json:"total_bytes"`
}

// PrintJSON outputs the report in JSON format.
func PrintJSON(report Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(report Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "\nOld entries (not accessed in %d+ months):\t\t\n", report.StaleMonths)

	if len(report.Entries) == 0 {
		fmt.Fprintln(w, "  none\t\t")
	}

	for i, e := range report.Entries {
		fmt.Fprintf(w, "  %d) '%s'\t%s\t%s\n",
			i+1, e.Path, cachesweep.FormatSize(e.Size), lastAccessDate(e))
	}

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Directories:\t%d\n", len(report.Directories))
	fmt.Fprintf(w, "Old entries:\t%d\n", len(report.Entries))
	fmt.Fprintf(w, "Reclaimable:\t%s (%s bytes)\n",
		cachesweep.FormatSize(report.TotalBytes), humanize.Comma(report.TotalBytes))

	return w.Flush()
}

func lastAccessDate(e cachesweep.StaleEntry) string {
	if e.LastAccess.IsZero() {
		return "Unknown"
	}

	return fmt.Sprintf("%s (%s)", e.LastAccess.Format("2006-01-02"), humanize.Time(e.LastAccess))
}
